package domain

import (
	"testing"
	"time"
)

func sampleDoc() *Document {
	now := time.Now().UTC()
	return &Document{
		Links: []Endpoint{
			{Code: "AAA111", URL: "https://one.test", Status: StatusOnline, AddedAt: now},
			{Code: "BBB222", URL: "https://two.test", Status: StatusOffline, AddedAt: now},
			{Code: "CCC333", URL: "https://three.test", Status: StatusOnline, AddedAt: now},
		},
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	d := sampleDoc()
	if e := d.Find("bbb222"); e == nil || e.URL != "https://two.test" {
		t.Fatalf("lowercase lookup failed: %+v", e)
	}
	if e := d.Find("ZZZ999"); e != nil {
		t.Fatalf("expected nil for unknown code, got %+v", e)
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	d := sampleDoc()
	removed := d.Remove("BBB222")
	if removed == nil || removed.URL != "https://two.test" {
		t.Fatalf("unexpected removed entry: %+v", removed)
	}
	if len(d.Links) != 2 || d.Links[0].Code != "AAA111" || d.Links[1].Code != "CCC333" {
		t.Fatalf("order broken after remove: %+v", d.Links)
	}
	if d.Remove("BBB222") != nil {
		t.Fatalf("second remove of same code should be nil")
	}
}

func TestRecompute_CountsOnline(t *testing.T) {
	d := sampleDoc()
	d.Recompute()
	if d.Stats.TotalLinks != 3 || d.Stats.ActiveLinks != 2 {
		t.Fatalf("stats wrong: %+v", d.Stats)
	}

	d.Remove("AAA111")
	d.Recompute()
	if d.Stats.TotalLinks != 2 || d.Stats.ActiveLinks != 1 {
		t.Fatalf("stats wrong after remove: %+v", d.Stats)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	d := sampleDoc()
	ts := time.Now().UTC()
	d.Links[0].LastSuccess = &ts

	cp := d.Clone()
	cp.Links[0].Code = "MUTATED"
	*cp.Links[0].LastSuccess = cp.Links[0].LastSuccess.Add(time.Hour)

	if d.Links[0].Code != "AAA111" {
		t.Fatalf("clone shares backing slice")
	}
	if !d.Links[0].LastSuccess.Equal(ts) {
		t.Fatalf("clone shares lastSuccess pointer")
	}
}
