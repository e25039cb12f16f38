// Package file persists the registry document as a single JSON file.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hamed0406/keepalive/internal/domain"
)

type Store struct {
	Path string
}

func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads the document from disk. A missing file or one that fails to
// parse yields a fresh empty document rather than an error.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewDocument(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Corrupt document: start over rather than refuse to boot.
		return domain.NewDocument(), nil
	}
	if doc.Links == nil {
		doc.Links = []domain.Endpoint{}
	}
	return &doc, nil
}

// Save writes the document atomically (temp file + rename) and stamps
// stats.lastUpdate.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc.Stats.LastUpdate = time.Now().UTC()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".links-*.json")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", s.Path, err)
	}
	return nil
}
