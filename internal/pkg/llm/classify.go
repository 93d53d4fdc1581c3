package llm

import (
	"fmt"
	log "log/slog"
	"strings"

	"context"

	"Commento/internal/pkg/consts"
)

var validLabels = map[string]bool{
	consts.SentimentPositive: true,
	consts.SentimentNegative: true,
	consts.SentimentNeutral:  true,
}

// ClassifyBatch asks the model for exactly one label per input text. The
// response must contain one of positive/negative/neutral per line, in input
// order; anything else is a parse failure the caller falls back from.
func (s *Client) ClassifyBatch(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var b strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ReplaceAll(t, "\n", " "))
	}

	resp, err := s.fetchModel(ctx, s.classifyPrompt, b.String(), 0)
	if err != nil {
		log.ErrorContext(ctx, "sentiment classification call failed", "batch", len(texts), "err", err)
		return nil, err
	}

	labels, err := parseLabelLines(resp, len(texts))
	if err != nil {
		log.ErrorContext(ctx, "sentiment classification parse failed", "resp", resp, "err", err)
		return nil, err
	}
	return labels, nil
}

func parseLabelLines(resp string, want int) ([]string, error) {
	labels := make([]string, 0, want)
	for _, line := range strings.Split(stripFences(resp), "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		// tolerate "3. negative" style numbering
		if i := strings.IndexAny(line, ".):"); i >= 0 && i < 4 {
			line = strings.TrimSpace(line[i+1:])
		}
		if !validLabels[line] {
			return nil, fmt.Errorf("unexpected label %q", line)
		}
		labels = append(labels, line)
	}
	if len(labels) != want {
		return nil, fmt.Errorf("expected %d labels, got %d", want, len(labels))
	}
	return labels, nil
}
