package catalog

import (
	"sync"
	"time"

	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
)

// Store holds the current product snapshot. The catalog is replaced wholesale
// on each upload, never merged: Replace swaps the slice reference under the
// lock, and readers that already took a snapshot keep working against it.
// Records are immutable once published, so no per-record locking exists.
type Store struct {
	mu         sync.RWMutex
	records    []domain.ProductRecord
	populated  bool
	replacedAt time.Time
}

// NewStore creates an empty, unpopulated catalog store
func NewStore() *Store {
	return &Store{}
}

// Replace atomically swaps in a new snapshot. An empty slice still counts as
// a populated catalog; only a store that has never seen an upload is empty.
func (s *Store) Replace(records []domain.ProductRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.populated = true
	s.replacedAt = time.Now()
}

// Snapshot returns the current snapshot reference. Callers must treat the
// returned slice as read-only.
func (s *Store) Snapshot() []domain.ProductRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Len returns the number of products in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Populated reports whether a snapshot has ever been uploaded.
func (s *Store) Populated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.populated
}

// ReplacedAt returns when the current snapshot was installed (zero before the
// first upload). Used by the health endpoint.
func (s *Store) ReplacedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replacedAt
}
