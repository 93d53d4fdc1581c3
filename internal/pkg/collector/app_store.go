package collector

import (
	"Commento/internal/api/config"
	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"context"
	"encoding/xml"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"
)

// appStoreFeed mirrors the customer-review Atom feed. The first entry is the
// app's own metadata, not a review.
type appStoreFeed struct {
	Entries []appStoreEntry `xml:"entry"`
}

type appStoreEntry struct {
	Author struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Title    string            `xml:"title"`
	Contents []appStoreContent `xml:"content"`
	Rating   string            `xml:"rating"`
	Updated  string            `xml:"updated"`
}

type appStoreContent struct {
	Type string `xml:"type,attr"`
	Body string `xml:",chardata"`
}

// AppStoreCollector pulls the Korean storefront customer-review RSS feed.
type AppStoreCollector struct {
	baseURL string
}

func NewAppStoreCollector() *AppStoreCollector {
	return &AppStoreCollector{baseURL: config.Cfg.Collector.AppStoreURL}
}

func (c *AppStoreCollector) Source() string {
	return consts.SourceAppStore
}

func (c *AppStoreCollector) Collect(ctx context.Context, req *Request) ([]*model.Review, error) {
	appID := req.Service.AppleStoreID
	if appID == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/kr/rss/customerreviews/id=%s/sortBy=mostRecent/xml", strings.TrimRight(c.baseURL, "/"), appID)
	resp, err := newHTTPClient().R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("app store rss status %d", resp.StatusCode())
	}

	var feed appStoreFeed
	if err = xml.Unmarshal(resp.Body(), &feed); err != nil {
		return nil, err
	}
	if len(feed.Entries) <= 1 {
		return nil, nil
	}

	serviceID := req.Service.Name
	limit := fetchLimit(req, 0)
	var out []*model.Review
	for _, entry := range feed.Entries[1:] {
		if limit > 0 && len(out) >= limit {
			break
		}
		content := entryText(entry)
		if content == "" {
			continue
		}

		createdAt := time.Now()
		if t, err := time.Parse(time.RFC3339, entry.Updated); err == nil {
			createdAt = t
		}
		if !inRange(createdAt, req) {
			continue
		}

		author := strings.TrimSpace(entry.Author.Name)
		if author == "" {
			author = "익명"
		}
		rating := 3
		if n, err := strconv.Atoi(strings.TrimSpace(entry.Rating)); err == nil && n >= 1 && n <= 5 {
			rating = n
		}

		out = append(out, &model.Review{
			UserID:    author,
			Source:    consts.SourceAppStore,
			ServiceID: &serviceID,
			Rating:    rating,
			Content:   content,
			CreatedAt: createdAt,
		})
	}

	log.InfoContext(ctx, "app store collected", "app_id", appID, "count", len(out))
	return out, nil
}

// entryText prefers the plain-text content block and falls back to the
// review title when the body is empty.
func entryText(entry appStoreEntry) string {
	for _, c := range entry.Contents {
		if c.Type == "text" {
			if body := strings.TrimSpace(c.Body); body != "" {
				return body
			}
		}
	}
	return strings.TrimSpace(entry.Title)
}
