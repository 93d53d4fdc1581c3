package llm

import (
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

// KeywordPayload is one extracted term with its approximate frequency.
type KeywordPayload struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
	Sentiment string `json:"sentiment"`
}

type keywordRequest struct {
	Sentiment string   `json:"sentiment"`
	Texts     []string `json:"texts"`
}

// ExtractKeywords asks for ranked meaningful terms over one polarity's texts.
func (s *Client) ExtractKeywords(ctx context.Context, sentiment string, texts []string) ([]*KeywordPayload, error) {
	payload, err := json.Marshal(&keywordRequest{Sentiment: sentiment, Texts: texts})
	if err != nil {
		return nil, err
	}

	resp, err := s.fetchModel(ctx, s.keywordPrompt, string(payload), 0)
	if err != nil {
		log.ErrorContext(ctx, "keyword extraction call failed", "sentiment", sentiment, "err", err)
		return nil, err
	}

	keywords, err := NormalizeKeywords(resp)
	if err != nil {
		log.ErrorContext(ctx, "keyword response parse failed", "sentiment", sentiment, "resp", resp, "err", err)
		return nil, err
	}
	return keywords, nil
}
