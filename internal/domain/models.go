package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Endpoint is one monitored URL plus its accumulated health state.
// Code and URL are immutable after creation; everything else is owned by
// the probe-outcome mutation rule in the registry.
type Endpoint struct {
	Code         string     `json:"code"`
	URL          string     `json:"url"`
	Status       Status     `json:"status"`
	LastCheck    time.Time  `json:"lastCheck"`
	LastSuccess  *time.Time `json:"lastSuccess,omitempty"`
	LastError    string     `json:"lastError,omitempty"`
	ResponseTime float64    `json:"responseTime"` // milliseconds, last probe
	StatusCode   int        `json:"statusCode"`   // 0 when no response was received
	FailCount    int        `json:"failCount"`    // consecutive failures
	TotalChecks  int        `json:"totalChecks"`
	AddedAt      time.Time  `json:"addedAt"`
}

type Stats struct {
	TotalLinks  int       `json:"totalLinks"`
	ActiveLinks int       `json:"activeLinks"`
	LastUpdate  time.Time `json:"lastUpdate"`
}

// Document is the whole persisted registry: the ordered endpoint list and
// its derived aggregate stats.
type Document struct {
	Links []Endpoint `json:"links"`
	Stats Stats      `json:"stats"`
}

func NewDocument() *Document {
	return &Document{
		Links: []Endpoint{},
		Stats: Stats{LastUpdate: time.Now().UTC()},
	}
}

// Find returns a pointer into Links for the endpoint with the given code.
// Lookup is case-insensitive.
func (d *Document) Find(code string) *Endpoint {
	for i := range d.Links {
		if strings.EqualFold(d.Links[i].Code, code) {
			return &d.Links[i]
		}
	}
	return nil
}

// FindURL returns the endpoint already monitoring url, if any.
func (d *Document) FindURL(url string) *Endpoint {
	for i := range d.Links {
		if d.Links[i].URL == url {
			return &d.Links[i]
		}
	}
	return nil
}

// Remove deletes the endpoint with the given code, preserving order, and
// returns the removed entry. Nil when the code is unknown.
func (d *Document) Remove(code string) *Endpoint {
	for i := range d.Links {
		if strings.EqualFold(d.Links[i].Code, code) {
			removed := d.Links[i]
			d.Links = append(d.Links[:i], d.Links[i+1:]...)
			return &removed
		}
	}
	return nil
}

// Recompute refreshes the derived counters. Callers must invoke it after
// every mutation that will be persisted.
func (d *Document) Recompute() {
	active := 0
	for i := range d.Links {
		if d.Links[i].Status == StatusOnline {
			active++
		}
	}
	d.Stats.TotalLinks = len(d.Links)
	d.Stats.ActiveLinks = active
}

// Clone deep-copies the document so callers can hand it out without sharing
// the backing slice.
func (d *Document) Clone() *Document {
	cp := *d
	cp.Links = make([]Endpoint, len(d.Links))
	copy(cp.Links, d.Links)
	for i := range cp.Links {
		if ts := cp.Links[i].LastSuccess; ts != nil {
			v := *ts
			cp.Links[i].LastSuccess = &v
		}
	}
	return &cp
}
