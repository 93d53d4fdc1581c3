package sentiment

import (
	"context"
	"strings"
	"unicode/utf8"

	"Commento/internal/pkg/consts"
)

// The heuristic stage uses broader, lower-precision keyword lists than the
// rule stage. It backs up the model stage and never abstains, so every text
// leaves the pipeline with a label.
var broadNegative = []string{
	"안되", "안돼", "불편", "문제", "오류", "실패", "느림", "끊어", "멈춤",
	"복잡", "어려", "힘들", "귀찮", "스트레스", "형편없", "구리", "실망",
	"렉", "광고", "강제", "먹통", "뜨거움", "방해", "차단", "과열",
	"거슬림", "못하는", "안하는", "조치", "거절",
}

var broadPositive = []string{
	"좋다", "편하다", "만족", "추천", "최고", "훌륭", "완벽", "빠르다",
	"안정", "깔끔", "유용", "도움", "감사", "고마워", "좋네", "괜찮",
}

var broadNeutral = []string{
	"보통", "그저그래", "나쁘지않", "무난", "평범", "일반적",
}

// explicitComplaint phrases mark a review as negative outright.
var explicitComplaint = []string{
	"단점", "아쉬운 점", "불편한 점", "불만", "싫은 점",
}

type HeuristicStage struct{}

func NewHeuristicStage() *HeuristicStage {
	return &HeuristicStage{}
}

func (s *HeuristicStage) Classify(_ context.Context, text string) (string, bool) {
	t := NormalizeKey(text)

	if containsAny(t, explicitComplaint) {
		return consts.SentimentNegative, true
	}

	neg := countMatches(t, broadNegative)
	pos := countMatches(t, broadPositive)

	if neg >= 2 || (neg > 0 && pos == 0) {
		return consts.SentimentNegative, true
	}
	if pos >= 2 || (pos > 0 && neg == 0) {
		return consts.SentimentPositive, true
	}
	if countMatches(t, broadNeutral) > 0 {
		return consts.SentimentNeutral, true
	}

	if utf8.RuneCountInString(t) < 10 {
		return consts.SentimentNeutral, true
	}
	if strings.Contains(t, "좋") || strings.Contains(t, "괜찮") {
		return consts.SentimentPositive, true
	}
	return consts.SentimentNeutral, true
}
