package sentiment

import (
	"context"
	"testing"

	"Commento/internal/pkg/consts"
)

func TestRuleStageResolvesClearSignals(t *testing.T) {
	stage := NewRuleStage()
	cases := []struct {
		text string
		want string
	}{
		{"완전 좋아요 추천합니다", consts.SentimentPositive},
		{"자꾸 안되서 짜증나요", consts.SentimentNegative},
		{"그냥 그래요", consts.SentimentNeutral},
		{"앱이 먹통이에요", consts.SentimentNegative},
		{"오류도 많고 너무 느려요", consts.SentimentNegative},
		{"깔끔하고 편리해서 만족합니다", consts.SentimentPositive},
		{"", consts.SentimentNeutral},
	}

	for _, tc := range cases {
		got, ok := stage.Classify(context.Background(), tc.text)
		if !ok {
			t.Fatalf("Classify(%q): expected a label, stage abstained", tc.text)
		}
		if got != tc.want {
			t.Errorf("Classify(%q): want=%s got=%s", tc.text, tc.want, got)
		}
	}
}

func TestRuleStagePriorityNegativeBeatsPositiveWords(t *testing.T) {
	stage := NewRuleStage()

	got, ok := stage.Classify(context.Background(), "디자인은 최고인데 실행이 안 돼요")
	if !ok {
		t.Fatalf("expected a label, stage abstained")
	}
	if got != consts.SentimentNegative {
		t.Fatalf("priority negative override: want=negative got=%s", got)
	}
}

func TestRuleStageRatingSignal(t *testing.T) {
	stage := NewRuleStage()
	cases := []struct {
		text string
		want string
	}{
		{"이 정도면 4점 주겠습니다", consts.SentimentPositive},
		{"rating: 2 수준이네요 그정도 입니다", consts.SentimentNegative},
		{"딱 3점 짜리 서비스인듯 합니다", consts.SentimentNeutral},
	}

	for _, tc := range cases {
		got, ok := stage.Classify(context.Background(), tc.text)
		if !ok {
			t.Fatalf("Classify(%q): expected a label, stage abstained", tc.text)
		}
		if got != tc.want {
			t.Errorf("Classify(%q): want=%s got=%s", tc.text, tc.want, got)
		}
	}
}

func TestRuleStageMixedSignalPrefersRating(t *testing.T) {
	stage := NewRuleStage()

	// one positive and one negative keyword plus an embedded rating
	got, ok := stage.Classify(context.Background(), "디자인은 깔끔한데 광고가 많아요 2점 드립니다")
	if !ok {
		t.Fatalf("expected a label, stage abstained")
	}
	if got != consts.SentimentNegative {
		t.Fatalf("mixed with rating: want=negative got=%s", got)
	}

	// same mix without a rating lands on neutral
	got, ok = stage.Classify(context.Background(), "디자인은 깔끔한데 광고가 많아요")
	if !ok {
		t.Fatalf("expected a label, stage abstained")
	}
	if got != consts.SentimentNeutral {
		t.Fatalf("mixed without rating: want=neutral got=%s", got)
	}
}

func TestRuleStageShortAndQuestionTextsAreNeutral(t *testing.T) {
	stage := NewRuleStage()

	got, ok := stage.Classify(context.Background(), "음 그럭")
	if !ok || got != consts.SentimentNeutral {
		t.Fatalf("short text: want=neutral,true got=%s,%v", got, ok)
	}

	got, ok = stage.Classify(context.Background(), "혹시 이거 무료인가요?")
	if !ok || got != consts.SentimentNeutral {
		t.Fatalf("question text: want=neutral,true got=%s,%v", got, ok)
	}
}

func TestRuleStageAbstainsWithoutSignal(t *testing.T) {
	stage := NewRuleStage()

	_, ok := stage.Classify(context.Background(), "어제 처음 설치해서 회원가입까지 진행했습니다")
	if ok {
		t.Fatalf("expected abstain for signal-free text")
	}
}

func TestRuleStageIsDeterministic(t *testing.T) {
	stage := NewRuleStage()
	text := "자꾸 안되서 짜증나요"

	first, _ := stage.Classify(context.Background(), text)
	for i := 0; i < 10; i++ {
		got, _ := stage.Classify(context.Background(), text)
		if got != first {
			t.Fatalf("run %d: want=%s got=%s", i, first, got)
		}
	}
}

func TestHeuristicStageNeverAbstains(t *testing.T) {
	stage := NewHeuristicStage()
	texts := []string{
		"",
		"어제 처음 설치해서 회원가입까지 진행했습니다",
		"단점이 너무 많아요",
		"좋다고 생각합니다 추천해요",
		"무난한 편입니다",
	}

	for _, text := range texts {
		if _, ok := stage.Classify(context.Background(), text); !ok {
			t.Errorf("Classify(%q): heuristic stage abstained", text)
		}
	}
}

func TestHeuristicStageLabels(t *testing.T) {
	stage := NewHeuristicStage()
	cases := []struct {
		text string
		want string
	}{
		{"단점이 너무 많아요", consts.SentimentNegative},
		{"불편하고 문제가 많습니다", consts.SentimentNegative},
		{"좋다고 생각합니다 추천해요", consts.SentimentPositive},
		{"짧음", consts.SentimentNeutral},
		{"전반적으로 쓸만하고 괜찮았습니다", consts.SentimentPositive},
	}

	for _, tc := range cases {
		got, _ := stage.Classify(context.Background(), tc.text)
		if got != tc.want {
			t.Errorf("Classify(%q): want=%s got=%s", tc.text, tc.want, got)
		}
	}
}
