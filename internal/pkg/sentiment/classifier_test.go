package sentiment

import (
	"context"
	"errors"
	"testing"

	"Commento/internal/pkg/consts"
)

// fakeModel records the texts it receives and answers from a script keyed by
// text.
type fakeModel struct {
	answers map[string]string
	err     error
	calls   int
	batches [][]string
}

func (m *fakeModel) ClassifyBatch(_ context.Context, texts []string) ([]string, error) {
	m.calls++
	m.batches = append(m.batches, texts)
	if m.err != nil {
		return nil, m.err
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = m.answers[t]
	}
	return out, nil
}

func TestClassifyBatchPreservesOrderAndLength(t *testing.T) {
	model := &fakeModel{answers: map[string]string{
		"어제 처음 설치해서 회원가입까지 진행했습니다": consts.SentimentNeutral,
	}}
	c := NewClassifier(NewMemoryCache(), model)

	texts := []string{
		"완전 좋아요 추천합니다",
		"어제 처음 설치해서 회원가입까지 진행했습니다",
		"자꾸 안되서 짜증나요",
	}
	labels := c.ClassifyBatch(context.Background(), texts)

	if len(labels) != len(texts) {
		t.Fatalf("label count: want=%d got=%d", len(texts), len(labels))
	}
	want := []string{consts.SentimentPositive, consts.SentimentNeutral, consts.SentimentNegative}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d]: want=%s got=%s", i, want[i], labels[i])
		}
	}
	if model.calls != 1 {
		t.Fatalf("model calls: want=1 got=%d", model.calls)
	}
	if len(model.batches[0]) != 1 {
		t.Fatalf("only the abstained text should reach the model, got batch %v", model.batches[0])
	}
}

func TestClassifyBatchSkipsModelWhenRulesCoverEverything(t *testing.T) {
	model := &fakeModel{}
	c := NewClassifier(NewMemoryCache(), model)

	c.ClassifyBatch(context.Background(), []string{
		"완전 좋아요 추천합니다",
		"앱이 먹통이에요",
		"그냥 그래요",
	})

	if model.calls != 0 {
		t.Fatalf("model calls: want=0 got=%d", model.calls)
	}
}

func TestClassifyBatchUsesCacheBeforeModel(t *testing.T) {
	cache := NewMemoryCache()
	text := "어제 처음 설치해서 회원가입까지 진행했습니다"
	cache.Set(context.Background(), NormalizeKey(text), consts.SentimentPositive)

	model := &fakeModel{}
	c := NewClassifier(cache, model)

	labels := c.ClassifyBatch(context.Background(), []string{text})
	if labels[0] != consts.SentimentPositive {
		t.Fatalf("cached label: want=positive got=%s", labels[0])
	}
	if model.calls != 0 {
		t.Fatalf("model calls: want=0 got=%d", model.calls)
	}
}

func TestClassifyBatchCachesResolvedLabels(t *testing.T) {
	cache := NewMemoryCache()
	model := &fakeModel{answers: map[string]string{
		"어제 처음 설치해서 회원가입까지 진행했습니다": consts.SentimentNeutral,
	}}
	c := NewClassifier(cache, model)

	texts := []string{"완전 좋아요 추천합니다", "어제 처음 설치해서 회원가입까지 진행했습니다"}
	c.ClassifyBatch(context.Background(), texts)

	for _, text := range texts {
		if _, ok := cache.Get(context.Background(), NormalizeKey(text)); !ok {
			t.Errorf("label for %q was not cached", text)
		}
	}

	// second pass resolves fully from cache
	c.ClassifyBatch(context.Background(), texts)
	if model.calls != 1 {
		t.Fatalf("model calls after warm cache: want=1 got=%d", model.calls)
	}
}

func TestClassifyBatchFallsBackOnModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("model unavailable")}
	c := NewClassifier(NewMemoryCache(), model)

	labels := c.ClassifyBatch(context.Background(), []string{
		"어제 처음 설치해서 회원가입까지 단점만 느꼈습니다",
	})

	if labels[0] != consts.SentimentNegative {
		t.Fatalf("heuristic fallback: want=negative got=%s", labels[0])
	}
}

func TestClassifyBatchFallsBackOnInvalidModelLabel(t *testing.T) {
	text := "어제 처음 설치해서 회원가입까지 진행했습니다 좋은 경험이었어요"
	model := &fakeModel{answers: map[string]string{text: "great"}}
	c := NewClassifier(NewMemoryCache(), model)

	labels := c.ClassifyBatch(context.Background(), []string{text})
	if labels[0] != consts.SentimentPositive {
		t.Fatalf("invalid label fallback: want=positive got=%s", labels[0])
	}
}

func TestClassifyBatchChunksLargeBatches(t *testing.T) {
	base := "어제 처음 설치해서 회원가입까지 진행했습니다 이용자 "
	answers := make(map[string]string)
	var texts []string
	for i := 0; i < consts.ClassifyBatchSize+3; i++ {
		text := base + string(rune('a'+i))
		texts = append(texts, text)
		answers[text] = consts.SentimentNeutral
	}

	model := &fakeModel{answers: answers}
	c := NewClassifier(NewMemoryCache(), model)

	labels := c.ClassifyBatch(context.Background(), texts)
	if len(labels) != len(texts) {
		t.Fatalf("label count: want=%d got=%d", len(texts), len(labels))
	}
	if model.calls != 2 {
		t.Fatalf("chunked model calls: want=2 got=%d", model.calls)
	}
	if len(model.batches[0]) != consts.ClassifyBatchSize || len(model.batches[1]) != 3 {
		t.Fatalf("chunk sizes: want=%d,3 got=%d,%d",
			consts.ClassifyBatchSize, len(model.batches[0]), len(model.batches[1]))
	}
}

func TestClassifySingle(t *testing.T) {
	c := NewClassifier(NewMemoryCache(), &fakeModel{})

	if got := c.Classify(context.Background(), "완전 좋아요 추천합니다"); got != consts.SentimentPositive {
		t.Fatalf("Classify: want=positive got=%s", got)
	}
}
