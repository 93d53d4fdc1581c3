package llm

import (
	"context"
	log "log/slog"
	"time"

	"Commento/internal/api/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Capability is the external-model surface the pipeline depends on. It is an
// interface so the classifier and aggregators can be tested against fakes.
type Capability interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]string, error)
	FacetInsight(ctx context.Context, req *FacetRequest) ([]*InsightPayload, error)
	ExtractKeywords(ctx context.Context, sentiment string, texts []string) ([]*KeywordPayload, error)
	ClusterKeywords(ctx context.Context, keywords []string) ([]*ClusterPayload, error)
}

// Client implements Capability over an openai-compatible endpoint.
type Client struct {
	model     llms.Model
	textModel string
	timeout   time.Duration

	classifyPrompt string
	insightPrompt  string
	keywordPrompt  string
	clusterPrompt  string
}

// NewClient builds the model client and loads the prompt files.
func NewClient() (*Client, error) {
	cfg := config.Cfg.LLM

	model, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("failed to initialize llm client", "err", err)
		return nil, err
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		model:          model,
		textModel:      cfg.Model,
		timeout:        timeout,
		classifyPrompt: readPrompt(cfg.PromptsPath.SentimentClassify),
		insightPrompt:  readPrompt(cfg.PromptsPath.HeartInsight),
		keywordPrompt:  readPrompt(cfg.PromptsPath.KeywordExtract),
		clusterPrompt:  readPrompt(cfg.PromptsPath.KeywordCluster),
	}, nil
}
