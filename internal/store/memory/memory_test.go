package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hamed0406/keepalive/internal/domain"
)

func TestLoad_EmptyStoreReturnsFreshDocument(t *testing.T) {
	s := New()
	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Links) != 0 || doc.Stats.TotalLinks != 0 {
		t.Fatalf("want fresh document, got %+v", doc)
	}
}

func TestSaveLoad_CopiesDocument(t *testing.T) {
	ctx := context.Background()
	s := New()

	doc := domain.NewDocument()
	doc.Links = append(doc.Links, domain.Endpoint{
		Code:    "AAA111",
		URL:     "https://example.test",
		Status:  domain.StatusOnline,
		AddedAt: time.Now().UTC(),
	})
	doc.Recompute()
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	doc.Links[0].Code = "MUTATED"

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Links[0].Code != "AAA111" {
		t.Fatalf("store shares memory with caller: %+v", got.Links[0])
	}

	// Same the other way: mutating a loaded copy must not change the store.
	got.Links[0].URL = "https://other.test"
	again, _ := s.Load(ctx)
	if again.Links[0].URL != "https://example.test" {
		t.Fatalf("loaded copy shares memory with store")
	}
}

func TestSave_StampsLastUpdate(t *testing.T) {
	s := New()
	doc := domain.NewDocument()
	doc.Stats.LastUpdate = time.Time{}

	before := time.Now().UTC()
	if err := s.Save(context.Background(), doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if doc.Stats.LastUpdate.Before(before) {
		t.Fatalf("lastUpdate not stamped: %v", doc.Stats.LastUpdate)
	}
}
