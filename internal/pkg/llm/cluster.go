package llm

import (
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

// ClusterPayload groups related keywords under a named problem type.
type ClusterPayload struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type clusterRequest struct {
	Keywords []string `json:"keywords"`
}

// ClusterKeywords asks the model to group keywords into usability-centered
// problem clusters with Korean labels.
func (s *Client) ClusterKeywords(ctx context.Context, keywords []string) ([]*ClusterPayload, error) {
	payload, err := json.Marshal(&clusterRequest{Keywords: keywords})
	if err != nil {
		return nil, err
	}

	resp, err := s.fetchModel(ctx, s.clusterPrompt, string(payload), 0.3)
	if err != nil {
		log.ErrorContext(ctx, "keyword clustering call failed", "err", err)
		return nil, err
	}

	clusters, err := NormalizeClusters(resp)
	if err != nil {
		log.ErrorContext(ctx, "cluster response parse failed", "resp", resp, "err", err)
		return nil, err
	}
	return clusters, nil
}
