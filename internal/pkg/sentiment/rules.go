package sentiment

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"Commento/internal/pkg/consts"
)

// priorityNegative lists negation/failure morphemes that force a negative
// label regardless of any other signal in the text.
var priorityNegative = []string{
	"안되", "안돼", "안됨", "안 되", "안 돼",
	"먹통", "튕김", "튕겨", "작동하지 않", "실행이 안", "되지 않",
}

// strongNegative / strongPositive are the curated high-confidence indicator
// sets; the rule stage only claims texts these resolve unambiguously.
var strongNegative = []string{
	"오류", "버그", "느려", "느림", "끊김", "끊겨", "멈춤", "멈춰",
	"실망", "짜증", "최악", "불편", "복잡", "불만", "렉", "광고",
	"과열", "스트레스", "형편없",
}

var strongPositive = []string{
	"좋아요", "좋네요", "좋음", "좋았", "만족", "편리", "편하",
	"최고", "추천", "완벽", "깔끔", "유용", "감사", "훌륭", "빠르", "간편",
}

// neutralMarkers are explicit so-so expressions.
var neutralMarkers = []string{
	"보통", "그저그래", "그저 그래", "그냥 그래", "무난", "평범", "나쁘지 않", "나쁘진 않",
}

var ratingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([1-5])\s*점`),
	regexp.MustCompile(`(?i)rating[:\s]*([1-5])`),
	regexp.MustCompile(`별점?\s*([1-5])\s*개`),
}

// RuleStage is the deterministic lexical scorer. It abstains whenever the
// signal is not clear-cut, which hands the text to the model stage.
type RuleStage struct{}

func NewRuleStage() *RuleStage {
	return &RuleStage{}
}

func (s *RuleStage) Classify(_ context.Context, text string) (string, bool) {
	t := NormalizeKey(text)

	if t == "" {
		return consts.SentimentNeutral, true
	}

	if containsAny(t, priorityNegative) {
		return consts.SentimentNegative, true
	}

	pos := countMatches(t, strongPositive)
	neg := countMatches(t, strongNegative)

	if pos > 0 || neg > 0 {
		// mixed signal: an embedded rating wins, otherwise neutral
		if pos > 0 && neg > 0 && abs(pos-neg) <= 1 {
			if label, ok := ratingSignal(t); ok {
				return label, true
			}
			return consts.SentimentNeutral, true
		}
		if neg >= 2 && neg > pos {
			return consts.SentimentNegative, true
		}
		if pos >= 2 && pos > neg {
			return consts.SentimentPositive, true
		}
		if neg == 1 && pos == 0 {
			return consts.SentimentNegative, true
		}
		if pos == 1 && neg == 0 {
			return consts.SentimentPositive, true
		}
		return consts.SentimentNeutral, true
	}

	if label, ok := ratingSignal(t); ok {
		return label, true
	}

	if containsAny(t, neutralMarkers) {
		return consts.SentimentNeutral, true
	}

	if utf8.RuneCountInString(t) < 5 {
		return consts.SentimentNeutral, true
	}

	if strings.HasSuffix(t, "?") && strings.Count(t, "?") == 1 {
		return consts.SentimentNeutral, true
	}

	return "", false
}

// ratingSignal maps an embedded star/point rating: >=4 positive, <=2
// negative, exactly 3 neutral.
func ratingSignal(t string) (string, bool) {
	for _, re := range ratingPatterns {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		switch m[1] {
		case "4", "5":
			return consts.SentimentPositive, true
		case "1", "2":
			return consts.SentimentNegative, true
		default:
			return consts.SentimentNeutral, true
		}
	}
	return "", false
}

func containsAny(t string, set []string) bool {
	for _, kw := range set {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func countMatches(t string, set []string) int {
	n := 0
	for _, kw := range set {
		if strings.Contains(t, kw) {
			n++
		}
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
