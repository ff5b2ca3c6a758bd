package artifacts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates an artifact was not found or has expired.
var ErrNotFound = errors.New("artifact not found")

// Artifact is a generated file held in memory for download. Artifacts are
// request-scoped: each generation produces its own entry and entries expire
// independently, so concurrent users never interfere.
type Artifact struct {
	ID        string
	FileName  string
	MimeType  string
	Data      []byte
	CreatedAt time.Time
}

// Store keeps artifacts in memory with a bounded lifetime. Safe for
// concurrent use.
type Store struct {
	mu   sync.RWMutex
	byID map[string]Artifact

	ttl time.Duration
	now func() time.Time
}

// NewStore constructs a Store whose artifacts expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		byID: make(map[string]Artifact),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Put stores PDF bytes and returns the new artifact. The download filename
// carries a time-based identifier, matching the shape resume_<unix>.pdf.
func (s *Store) Put(data []byte) Artifact {
	now := s.now().UTC()
	a := Artifact{
		ID:        uuid.NewString(),
		FileName:  fmt.Sprintf("resume_%d.pdf", now.Unix()),
		MimeType:  "application/pdf",
		Data:      data,
		CreatedAt: now,
	}
	s.mu.Lock()
	s.byID[a.ID] = a
	s.mu.Unlock()
	return a
}

// Get returns the artifact by ID. Expired artifacts behave as missing.
func (s *Store) Get(id string) (Artifact, error) {
	s.mu.RLock()
	a, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok || s.expired(a) {
		return Artifact{}, ErrNotFound
	}
	return a, nil
}

// Sweep deletes expired artifacts and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, a := range s.byID {
		if s.expired(a) {
			delete(s.byID, id)
			removed++
		}
	}
	return removed
}

// Janitor sweeps on the given interval until ctx is done.
func (s *Store) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) expired(a Artifact) bool {
	return s.now().UTC().Sub(a.CreatedAt) > s.ttl
}
