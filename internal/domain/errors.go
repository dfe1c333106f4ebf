package domain

import "errors"

var (
	// ErrEmptyCatalog is returned when no catalog snapshot has been uploaded yet
	ErrEmptyCatalog = errors.New("catalog has not been populated")

	// ErrItemNotFound is returned when an item-detail lookup matches no item code
	ErrItemNotFound = errors.New("item code not found in catalog")

	// ErrNoMatches is returned when a keyword or PLU search matches nothing
	ErrNoMatches = errors.New("no products match the keyword")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrLineAPIFailure is returned when a LINE Messaging API request fails
	ErrLineAPIFailure = errors.New("LINE API request failed")

	// ErrBadSignature is returned when a webhook body fails signature validation
	ErrBadSignature = errors.New("webhook signature mismatch")
)
