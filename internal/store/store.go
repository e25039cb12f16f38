// Package store defines the durability port for the registry document.
// Adapters live in subpackages; swap in another backend later.
package store

import (
	"context"

	"github.com/hamed0406/keepalive/internal/domain"
)

// Store persists the whole registry document. Load never fails on a missing
// or unreadable document: that is a recoverable condition and yields a fresh
// empty document instead. Save stamps stats.lastUpdate before writing and
// reports write failures to the caller without retrying.
type Store interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}
