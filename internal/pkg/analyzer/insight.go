package analyzer

import (
	"context"
	log "log/slog"
	"sort"
	"strings"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/llm"
	"Commento/internal/pkg/sentiment"
)

// InsightAggregator derives at most five ranked UX findings, one per HEART
// facet where the corpus supports it.
type InsightAggregator struct {
	capability llm.Capability
}

func NewInsightAggregator(capability llm.Capability) *InsightAggregator {
	return &InsightAggregator{capability: capability}
}

// Generate runs facet-scoped model calls over a labeled review set. Empty
// input returns empty output without touching the model; a run where every
// facet call failed degrades to the fixed templates.
func (a *InsightAggregator) Generate(ctx context.Context, serviceID string, reviews []*model.Review) []*model.Insight {
	if len(reviews) == 0 {
		return nil
	}

	var insights []*model.Insight
	attempted := 0

	for _, facet := range facets {
		matched := matchFacet(facet, reviews)
		if len(matched) == 0 {
			continue
		}
		attempted++

		pos, neg := sampleByPolarity(matched, consts.FacetSampleLimit)
		payloads, err := a.capability.FacetInsight(ctx, &llm.FacetRequest{
			Facet:           facet.Name,
			Definition:      facet.Definition,
			PositiveSamples: pos,
			NegativeSamples: neg,
		})
		if err != nil {
			log.WarnContext(ctx, "facet insight degraded", "facet", facet.Name, "err", err)
			continue
		}

		insights = append(insights, buildInsight(serviceID, facet, matched, payloads[0]))
	}

	if attempted > 0 && len(insights) == 0 {
		log.WarnContext(ctx, "all facet calls failed, emitting template insights", "service_id", serviceID)
		insights = templateInsights(serviceID, len(reviews))
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return consts.PriorityRank[insights[i].Priority] < consts.PriorityRank[insights[j].Priority]
	})
	if len(insights) > consts.MaxInsights {
		insights = insights[:consts.MaxInsights]
	}
	return insights
}

func matchFacet(facet Facet, reviews []*model.Review) []*model.Review {
	var matched []*model.Review
	for _, r := range reviews {
		content := sentiment.NormalizeKey(r.Content)
		for _, kw := range facet.Keywords {
			if strings.Contains(content, kw) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// sampleByPolarity caps the review texts handed to the model per polarity so
// prompt size stays bounded.
func sampleByPolarity(reviews []*model.Review, limit int) (pos []string, neg []string) {
	for _, r := range reviews {
		switch r.Sentiment {
		case consts.SentimentPositive:
			if len(pos) < limit {
				pos = append(pos, r.Content)
			}
		case consts.SentimentNegative:
			if len(neg) < limit {
				neg = append(neg, r.Content)
			}
		}
	}
	return pos, neg
}

func buildInsight(serviceID string, facet Facet, matched []*model.Review, p *llm.InsightPayload) *model.Insight {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "HEART: " + facet.Name
	}

	desc := strings.TrimSpace(p.ProblemSummary)
	if len(p.UXSuggestions) > 0 {
		var b strings.Builder
		b.WriteString(desc)
		for _, s := range p.UXSuggestions {
			b.WriteString("\n- ")
			b.WriteString(s)
		}
		desc = b.String()
	}

	priority := p.Priority
	if _, ok := consts.PriorityRank[priority]; !ok {
		priority = heuristicPriority(matched)
	}

	mentions := p.MentionCount
	if mentions <= 0 {
		mentions = len(matched)
	}

	trend := p.Trend
	switch trend {
	case consts.TrendIncreasing, consts.TrendStable, consts.TrendDecreasing:
	default:
		trend = ""
	}

	return &model.Insight{
		ServiceID:    serviceID,
		Category:     facet.Name,
		Title:        title,
		Description:  desc,
		Priority:     priority,
		MentionCount: mentions,
		Trend:        trend,
	}
}

// heuristicPriority applies the volume/severity rule the model is also
// instructed with, so both paths stay consistent.
func heuristicPriority(matched []*model.Review) string {
	failures, frictions := 0, 0
	for _, r := range matched {
		if r.Sentiment != consts.SentimentNegative {
			continue
		}
		content := sentiment.NormalizeKey(r.Content)
		hit := false
		for _, kw := range coreFailure {
			if strings.Contains(content, kw) {
				failures++
				hit = true
				break
			}
		}
		if hit {
			continue
		}
		for _, kw := range friction {
			if strings.Contains(content, kw) {
				frictions++
				break
			}
		}
	}

	if failures >= 3 {
		return consts.PriorityCritical
	}
	if failures+frictions >= 2 {
		return consts.PriorityMajor
	}
	return consts.PriorityMinor
}
