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
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
)

// reviewSignals mark posts that read like actual usage reviews rather than
// promotions or news. A post must carry at least one.
var reviewSignals = []string{
	"후기", "리뷰", "사용기", "써보", "써봤", "사용해", "이용해",
	"장점", "단점", "추천", "비추", "솔직",
}

type naverItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PostDate    string `json:"postdate"`
	BloggerName string `json:"bloggername"`
	CafeName    string `json:"cafename"`
}

// NaverCollector queries the Naver open search API for blog or cafe posts
// mentioning the service. One instance serves one channel.
type NaverCollector struct {
	source   string
	endpoint string
}

func NewNaverBlogCollector() *NaverCollector {
	return &NaverCollector{source: consts.SourceNaverBlog, endpoint: config.Cfg.Naver.BlogURL}
}

func NewNaverCafeCollector() *NaverCollector {
	return &NaverCollector{source: consts.SourceNaverCafe, endpoint: config.Cfg.Naver.CafeURL}
}

func (c *NaverCollector) Source() string {
	return c.source
}

func (c *NaverCollector) Collect(ctx context.Context, req *Request) ([]*model.Review, error) {
	keywords := req.Service.Keywords
	if len(keywords) == 0 {
		keywords = []string{req.Service.Name}
	}

	serviceID := req.Service.Name
	limit := fetchLimit(req, 100)
	display := limit
	if display > 100 {
		display = 100 // API maximum per query
	}

	seen := make(map[string]bool)
	var out []*model.Review

	for _, keyword := range keywords {
		if len(out) >= limit {
			break
		}
		items, err := c.search(ctx, keyword, display)
		if err != nil {
			log.WarnContext(ctx, "naver search failed", "source", c.source, "keyword", keyword, "err", err)
			continue
		}

		for _, item := range items {
			if len(out) >= limit {
				break
			}
			content := stripHTML(item.Title + " " + item.Description)
			if content == "" || seen[item.Link] {
				continue
			}
			if !looksLikeReview(content, keywords) {
				continue
			}

			createdAt := postDate(item.PostDate)
			if !inRange(createdAt, req) {
				continue
			}
			seen[item.Link] = true

			author := item.BloggerName
			if author == "" {
				author = item.CafeName
			}
			if author == "" {
				author = "익명"
			}

			link := item.Link
			out = append(out, &model.Review{
				UserID:    author,
				Source:    c.source,
				ServiceID: &serviceID,
				Rating:    3,
				Content:   content,
				Link:      &link,
				CreatedAt: createdAt,
			})
		}
	}

	log.InfoContext(ctx, "naver collected", "source", c.source, "count", len(out))
	return out, nil
}

func (c *NaverCollector) search(ctx context.Context, keyword string, display int) ([]*naverItem, error) {
	resp, err := newHTTPClient().R().
		SetContext(ctx).
		SetHeader("X-Naver-Client-Id", config.Cfg.Naver.ClientID).
		SetHeader("X-Naver-Client-Secret", config.Cfg.Naver.ClientSecret).
		SetQueryParams(map[string]string{
			"query":   fmt.Sprintf("\"%s\" 후기", keyword),
			"display": strconv.Itoa(display),
			"sort":    "date",
		}).
		Get(c.endpoint)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("naver api status %d", resp.StatusCode())
	}

	var body struct {
		Items []*naverItem `json:"items"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

// looksLikeReview keeps posts that mention the service, are long enough to
// carry an opinion, and contain at least one review signal word.
func looksLikeReview(content string, keywords []string) bool {
	if utf8.RuneCountInString(content) < 30 {
		return false
	}

	mentioned := false
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return false
	}

	for _, signal := range reviewSignals {
		if strings.Contains(content, signal) {
			return true
		}
	}
	return false
}

// stripHTML flattens the API's markup (search hits come back with <b> tags
// and entities) to plain text.
func stripHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

func postDate(s string) time.Time {
	if t, err := time.Parse("20060102", s); err == nil {
		return t
	}
	if t, err := util.ParseDate(s); err == nil {
		return t
	}
	return time.Now()
}
