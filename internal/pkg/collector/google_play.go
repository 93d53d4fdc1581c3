package collector

import (
	"Commento/internal/api/config"
	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// googlePlayReview is one row from the review gateway.
type googlePlayReview struct {
	UserName string `json:"userName"`
	Content  string `json:"content"`
	Score    int    `json:"score"`
	At       string `json:"at"`
}

// GooglePlayCollector reads reviews from a configured gateway endpoint that
// exposes Play Store reviews as JSON, keyed by the service's package name.
type GooglePlayCollector struct {
	baseURL string
}

func NewGooglePlayCollector() *GooglePlayCollector {
	return &GooglePlayCollector{baseURL: config.Cfg.Collector.GooglePlayURL}
}

func (c *GooglePlayCollector) Source() string {
	return consts.SourceGooglePlay
}

func (c *GooglePlayCollector) Collect(ctx context.Context, req *Request) ([]*model.Review, error) {
	appID := req.Service.GooglePlayID
	if appID == "" {
		return nil, nil
	}

	limit := fetchLimit(req, 200)
	resp, err := newHTTPClient().R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"appId": appID,
			"lang":  "ko",
			"count": strconv.Itoa(limit),
		}).
		Get(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "google play gateway request failed")
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("google play gateway status %d", resp.StatusCode())
	}

	var body struct {
		Reviews []*googlePlayReview `json:"reviews"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Wrap(err, "google play gateway body parse failed")
	}

	serviceID := req.Service.Name
	var out []*model.Review
	for _, raw := range body.Reviews {
		if len(out) >= limit {
			break
		}
		content := strings.TrimSpace(raw.Content)
		if content == "" {
			continue
		}

		createdAt := parseReviewDate(raw.At)
		if !inRange(createdAt, req) {
			continue
		}

		userID := raw.UserName
		if userID == "" {
			userID = "익명"
		}
		rating := raw.Score
		if rating < 1 || rating > 5 {
			rating = 3
		}

		out = append(out, &model.Review{
			UserID:    userID,
			Source:    consts.SourceGooglePlay,
			ServiceID: &serviceID,
			Rating:    rating,
			Content:   content,
			CreatedAt: createdAt,
		})
	}

	log.InfoContext(ctx, "google play collected", "app_id", appID, "count", len(out))
	return out, nil
}

func parseReviewDate(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	if t, err := util.ParseDate(s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Now()
}
