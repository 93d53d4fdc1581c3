package sentiment

import (
	"context"
	log "log/slog"

	"Commento/internal/pkg/consts"
)

// Stage classifies one text or abstains. Stages are composed into an ordered
// chain; the first non-abstaining stage wins.
type Stage interface {
	Classify(ctx context.Context, text string) (string, bool)
}

// BatchModel is the external-model slice of llm.Capability the classifier
// needs. Only texts every local stage abstained on reach it.
type BatchModel interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]string, error)
}

type cacheStage struct {
	cache Cache
}

func (s *cacheStage) Classify(ctx context.Context, text string) (string, bool) {
	return s.cache.Get(ctx, NormalizeKey(text))
}

// Classifier implements the layered pipeline: cache, lexical rules, batched
// model calls, keyword heuristic. Only texts the local stages abstain on
// reach the model.
type Classifier struct {
	cache     Cache
	local     []Stage
	model     BatchModel
	fallback  Stage
	batchSize int
}

func NewClassifier(cache Cache, model BatchModel) *Classifier {
	return &Classifier{
		cache:     cache,
		local:     []Stage{&cacheStage{cache: cache}, NewRuleStage()},
		model:     model,
		fallback:  NewHeuristicStage(),
		batchSize: consts.ClassifyBatchSize,
	}
}

// Classify labels a single text. Always returns one of
// positive/negative/neutral.
func (c *Classifier) Classify(ctx context.Context, text string) string {
	return c.ClassifyBatch(ctx, []string{text})[0]
}

// ClassifyBatch labels texts preserving input order and length. Local stages
// are tried first; only the abstained remainder goes to the model, in
// fixed-size batches, and a model failure degrades that batch to the
// heuristic stage instead of propagating.
func (c *Classifier) ClassifyBatch(ctx context.Context, texts []string) []string {
	labels := make([]string, len(texts))
	var pending []int

	for i, text := range texts {
		if label, ok := c.resolveLocal(ctx, text); ok {
			labels[i] = label
			c.cache.Set(ctx, NormalizeKey(text), label)
			continue
		}
		pending = append(pending, i)
	}

	for start := 0; start < len(pending); start += c.batchSize {
		end := start + c.batchSize
		if end > len(pending) {
			end = len(pending)
		}
		c.classifyChunk(ctx, texts, labels, pending[start:end])
	}

	return labels
}

func (c *Classifier) resolveLocal(ctx context.Context, text string) (string, bool) {
	for _, stage := range c.local {
		if label, ok := stage.Classify(ctx, text); ok {
			return label, true
		}
	}
	return "", false
}

func (c *Classifier) classifyChunk(ctx context.Context, texts, labels []string, chunk []int) {
	batch := make([]string, len(chunk))
	for i, idx := range chunk {
		batch[i] = texts[idx]
	}

	resolved, err := c.model.ClassifyBatch(ctx, batch)
	if err != nil || len(resolved) != len(chunk) {
		log.WarnContext(ctx, "model classification degraded to heuristic",
			"batch", len(chunk), "err", err)
		for _, idx := range chunk {
			label, _ := c.fallback.Classify(ctx, texts[idx])
			labels[idx] = label
			c.cache.Set(ctx, NormalizeKey(texts[idx]), label)
		}
		return
	}

	for i, idx := range chunk {
		label := resolved[i]
		if !validModelLabel(label) {
			label, _ = c.fallback.Classify(ctx, texts[idx])
		}
		labels[idx] = label
		c.cache.Set(ctx, NormalizeKey(texts[idx]), label)
	}
}

func validModelLabel(label string) bool {
	switch label {
	case consts.SentimentPositive, consts.SentimentNegative, consts.SentimentNeutral:
		return true
	}
	return false
}
