package repository

import (
	"time"

	"Commento/internal/pkg/consts"
)

// ReviewFilter is the conjunction every review-scoped operation (listing,
// stats, analysis input) applies, so aggregates always describe the same
// subset the user is looking at. DateTo is expected to be end-of-day
// normalized by the caller.
type ReviewFilter struct {
	ServiceID string
	Sources   []string
	DateFrom  *time.Time
	DateTo    *time.Time
	Sentiment string
}

// SentimentActive reports whether the sentiment field participates in the
// predicate ("all" and empty mean no restriction).
func (f *ReviewFilter) SentimentActive() bool {
	return f.Sentiment != "" && f.Sentiment != consts.SentimentAll
}

// ReviewStats summarizes one filtered subset.
type ReviewStats struct {
	Total         int64   `json:"total"`
	Positive      int64   `json:"positive"`
	Negative      int64   `json:"negative"`
	AverageRating float64 `json:"average_rating"`
}
