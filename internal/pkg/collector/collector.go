package collector

import (
	"Commento/internal/api/config"
	"Commento/internal/model"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Request scopes one collection run. DateFrom/DateTo bound the review
// publication date; nil means unbounded on that side. Count caps how many
// reviews one channel returns; 0 keeps the channel's default.
type Request struct {
	Service  *model.ServiceProfile
	DateFrom *time.Time
	DateTo   *time.Time
	Count    int
}

// Collector pulls reviews from one channel. Implementations return the rows
// they could parse; deduplication happens at the repository layer.
type Collector interface {
	Source() string
	Collect(ctx context.Context, req *Request) ([]*model.Review, error)
}

func newHTTPClient() *resty.Client {
	timeout := time.Duration(config.Cfg.Collector.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", config.Cfg.Collector.UserAgent)
}

// fetchLimit resolves the requested target count, falling back to the
// channel default. def 0 means unlimited.
func fetchLimit(req *Request, def int) int {
	if req.Count > 0 {
		return req.Count
	}
	return def
}

func inRange(t time.Time, req *Request) bool {
	if req.DateFrom != nil && t.Before(*req.DateFrom) {
		return false
	}
	if req.DateTo != nil && t.After(*req.DateTo) {
		return false
	}
	return true
}
