// Package report formats registry state into the externally visible
// summaries. Timestamps stay raw RFC3339; locale rendering is the frontend's
// problem.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/hamed0406/keepalive/internal/domain"
)

// NeverChecked is the sentinel rendered while an endpoint has no recorded
// success.
const NeverChecked = "Never"

type LinkSummary struct {
	Code         string  `json:"code"`
	URL          string  `json:"url"`
	Status       string  `json:"status"`
	ResponseTime float64 `json:"responseTime"`
	StatusCode   int     `json:"statusCode"`
	LastCheck    string  `json:"lastCheck"`
	LastSuccess  string  `json:"lastSuccess"`
	AddedAt      string  `json:"addedAt"`
	Uptime       string  `json:"uptime"`
	FailCount    int     `json:"failCount"`
	TotalChecks  int     `json:"totalChecks"`
	SuccessRate  int     `json:"successRate"`
}

type OverviewStats struct {
	TotalLinks   int    `json:"totalLinks"`
	ActiveLinks  int    `json:"activeLinks"`
	OfflineLinks int    `json:"offlineLinks"`
	LastUpdate   string `json:"lastUpdate"`
}

type Overview struct {
	Stats OverviewStats `json:"stats"`
	Links []LinkSummary `json:"links"`
}

// Summary renders one endpoint relative to now.
func Summary(e *domain.Endpoint, now time.Time) LinkSummary {
	lastSuccess := NeverChecked
	if e.LastSuccess != nil {
		lastSuccess = e.LastSuccess.Format(time.RFC3339)
	}
	lastCheck := ""
	if !e.LastCheck.IsZero() {
		lastCheck = e.LastCheck.Format(time.RFC3339)
	}
	return LinkSummary{
		Code:         e.Code,
		URL:          e.URL,
		Status:       string(e.Status),
		ResponseTime: e.ResponseTime,
		StatusCode:   e.StatusCode,
		LastCheck:    lastCheck,
		LastSuccess:  lastSuccess,
		AddedAt:      e.AddedAt.Format(time.RFC3339),
		Uptime:       UptimeString(e.AddedAt, now),
		FailCount:    e.FailCount,
		TotalChecks:  e.TotalChecks,
		SuccessRate:  SuccessRate(e.TotalChecks, e.FailCount),
	}
}

// Build renders the whole registry document.
func Build(doc *domain.Document, now time.Time) Overview {
	links := make([]LinkSummary, 0, len(doc.Links))
	for i := range doc.Links {
		links = append(links, Summary(&doc.Links[i], now))
	}
	return Overview{
		Stats: OverviewStats{
			TotalLinks:   doc.Stats.TotalLinks,
			ActiveLinks:  doc.Stats.ActiveLinks,
			OfflineLinks: doc.Stats.TotalLinks - doc.Stats.ActiveLinks,
			LastUpdate:   doc.Stats.LastUpdate.Format(time.RFC3339),
		},
		Links: links,
	}
}

// SuccessRate is the integer percentage of probes that did not fail,
// guarding the zero-checks case.
func SuccessRate(totalChecks, failCount int) int {
	if totalChecks < 1 {
		totalChecks = 1
	}
	return int(math.Round(float64(totalChecks-failCount) / float64(totalChecks) * 100))
}

// UptimeString renders the elapsed time since addedAt as "Nd Nh Nm".
func UptimeString(addedAt, now time.Time) string {
	elapsed := now.Sub(addedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
