package domain

import "context"

// CatalogRepository defines the snapshot store the engine reads from.
// Replace must swap the whole catalog atomically; readers that already hold a
// snapshot keep it unchanged.
type CatalogRepository interface {
	Replace(records []ProductRecord)
	Snapshot() []ProductRecord
	Len() int
	Populated() bool
}

// ReplyClient defines the interface for delivering engine output to the chat
// platform.
type ReplyClient interface {
	Reply(ctx context.Context, replyToken, text string) error
	Push(ctx context.Context, to, text string) error
}
