package llm

import (
	"context"
	"errors"
	log "log/slog"

	"github.com/goccy/go-json"
)

// FacetRequest carries one HEART facet plus sampled review texts.
type FacetRequest struct {
	Facet           string   `json:"facet"`
	Definition      string   `json:"definition"`
	PositiveSamples []string `json:"positive_samples"`
	NegativeSamples []string `json:"negative_samples"`
}

// InsightPayload is the structured result the model is asked to emit.
type InsightPayload struct {
	Category       string     `json:"category"`
	Title          string     `json:"title"`
	ProblemSummary string     `json:"problem_summary"`
	UXSuggestions  StringList `json:"ux_suggestions"`
	Priority       string     `json:"priority"`
	MentionCount   int        `json:"mention_count"`
	Trend          string     `json:"trend"`
}

// FacetInsight generates structured findings for one facet.
func (s *Client) FacetInsight(ctx context.Context, req *FacetRequest) ([]*InsightPayload, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.fetchModel(ctx, s.insightPrompt, string(payload), 0.3)
	if err != nil {
		log.ErrorContext(ctx, "insight generation call failed", "facet", req.Facet, "err", err)
		return nil, err
	}

	insights, err := NormalizeInsights(resp)
	if err != nil {
		log.ErrorContext(ctx, "insight response parse failed", "facet", req.Facet, "resp", resp, "err", err)
		return nil, err
	}
	if len(insights) == 0 {
		return nil, errors.New("insight response was empty")
	}
	return insights, nil
}
