// Package memory is an in-process Store adapter with the same
// whole-document semantics as the file backend. Used by tests and when no
// data file is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hamed0406/keepalive/internal/domain"
)

type Store struct {
	mu  sync.Mutex
	doc *domain.Document
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return domain.NewDocument(), nil
	}
	return s.doc.Clone(), nil
}

func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc.Stats.LastUpdate = time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}
