package analyzer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/llm"
)

func TestKeywordGenerateEmptyInputMakesNoCalls(t *testing.T) {
	cap := &fakeCapability{}
	agg := NewKeywordAggregator(cap)

	keywords := agg.Generate(context.Background(), "toss", nil)
	if len(keywords) != 0 {
		t.Fatalf("keyword count: want=0 got=%d", len(keywords))
	}
	if cap.keywordCalls != 0 {
		t.Fatalf("model calls on empty input: want=0 got=%d", cap.keywordCalls)
	}
}

func TestKeywordGenerateSkipsEmptyPolarity(t *testing.T) {
	cap := &fakeCapability{keywords: []*llm.KeywordPayload{
		{Word: "송금", Frequency: 4, Sentiment: consts.SentimentPositive},
	}}
	agg := NewKeywordAggregator(cap)

	// no negative reviews, so only one extraction call happens
	reviews := []*model.Review{
		review(consts.SentimentPositive, "송금이 빨라서 좋아요"),
		review(consts.SentimentNeutral, "그냥 그래요"),
	}

	keywords := agg.Generate(context.Background(), "toss", reviews)
	if cap.keywordCalls != 1 {
		t.Fatalf("extraction calls: want=1 got=%d", cap.keywordCalls)
	}
	if len(keywords) != 1 || keywords[0].Sentiment != consts.SentimentPositive {
		t.Fatalf("keywords: got=%v", keywords)
	}
}

func TestKeywordGenerateDegradesToEmptyOnError(t *testing.T) {
	cap := &fakeCapability{keywordErr: errors.New("model unavailable")}
	agg := NewKeywordAggregator(cap)

	reviews := []*model.Review{
		review(consts.SentimentPositive, "송금이 빨라서 좋아요"),
		review(consts.SentimentNegative, "오류가 많아요"),
	}

	keywords := agg.Generate(context.Background(), "toss", reviews)
	if len(keywords) != 0 {
		t.Fatalf("keyword count after failure: want=0 got=%d", len(keywords))
	}
}

func TestRankKeywordsFiltersAndTruncates(t *testing.T) {
	payloads := []*llm.KeywordPayload{
		{Word: "그냥", Frequency: 99},   // stopword
		{Word: "app", Frequency: 50},  // not Korean
		{Word: "송", Frequency: 40},    // too short
		{Word: "광고", Frequency: 0},    // zero frequency
		{Word: "쓸모없음", Frequency: -3}, // negative frequency
	}
	for i := 0; i < 12; i++ {
		payloads = append(payloads, &llm.KeywordPayload{
			Word:      fmt.Sprintf("단어%s", string(rune('가'+i))),
			Frequency: i + 1,
		})
	}

	ranked := rankKeywords("toss", consts.SentimentNegative, payloads)
	if len(ranked) != consts.MaxKeywords {
		t.Fatalf("ranked count: want=%d got=%d", consts.MaxKeywords, len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Frequency > ranked[i-1].Frequency {
			t.Fatalf("ranking not descending at %d: %d > %d", i, ranked[i].Frequency, ranked[i-1].Frequency)
		}
	}
	for _, kw := range ranked {
		if kw.Sentiment != consts.SentimentNegative {
			t.Errorf("polarity override: want=negative got=%s", kw.Sentiment)
		}
		if kw.ServiceID != "toss" {
			t.Errorf("service id: want=toss got=%s", kw.ServiceID)
		}
	}
}
