package llm

import (
	"testing"
)

func TestNormalizeInsightsArrayShape(t *testing.T) {
	raw := `[{"category":"happiness","title":"광고 노출 과다","priority":"major"}]`

	insights, err := NormalizeInsights(raw)
	if err != nil {
		t.Fatalf("NormalizeInsights: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("insight count: want=1 got=%d", len(insights))
	}
	if insights[0].Title != "광고 노출 과다" {
		t.Fatalf("title: got=%s", insights[0].Title)
	}
}

func TestNormalizeInsightsSingleObjectShape(t *testing.T) {
	raw := `{"category":"task_success","title":"결제 실패","problem_summary":"결제 단계에서 오류가 잦다","priority":"critical"}`

	insights, err := NormalizeInsights(raw)
	if err != nil {
		t.Fatalf("NormalizeInsights: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("insight count: want=1 got=%d", len(insights))
	}
	if insights[0].Priority != "critical" {
		t.Fatalf("priority: got=%s", insights[0].Priority)
	}
}

func TestNormalizeInsightsWrapperShape(t *testing.T) {
	raw := `{"insights":[{"category":"retention","title":"재방문 저하"},{"category":"adoption","title":"온보딩 이탈"}]}`

	insights, err := NormalizeInsights(raw)
	if err != nil {
		t.Fatalf("NormalizeInsights: %v", err)
	}
	if len(insights) != 2 {
		t.Fatalf("insight count: want=2 got=%d", len(insights))
	}
}

func TestNormalizeInsightsObjectOfObjectsShape(t *testing.T) {
	raw := `{"1":{"category":"engagement","title":"알림 피로"},"0":{"category":"happiness","title":"만족도 상승"}}`

	insights, err := NormalizeInsights(raw)
	if err != nil {
		t.Fatalf("NormalizeInsights: %v", err)
	}
	if len(insights) != 2 {
		t.Fatalf("insight count: want=2 got=%d", len(insights))
	}
	// keys are sorted, so "0" comes first
	if insights[0].Category != "happiness" {
		t.Fatalf("first category: want=happiness got=%s", insights[0].Category)
	}
}

func TestNormalizeInsightsStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"category\":\"happiness\",\"title\":\"제목\"}]\n```"

	insights, err := NormalizeInsights(raw)
	if err != nil {
		t.Fatalf("NormalizeInsights: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("insight count: want=1 got=%d", len(insights))
	}
}

func TestNormalizeInsightsRejectsGarbage(t *testing.T) {
	if _, err := NormalizeInsights("분석 결과가 없습니다"); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}

func TestStringListAcceptsArrayAndScalar(t *testing.T) {
	var fromArray StringList
	if err := fromArray.UnmarshalJSON([]byte(`["첫 제안","둘째 제안"]`)); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if len(fromArray) != 2 {
		t.Fatalf("array form length: want=2 got=%d", len(fromArray))
	}

	var fromScalar StringList
	if err := fromScalar.UnmarshalJSON([]byte(`"하나의 제안"`)); err != nil {
		t.Fatalf("scalar form: %v", err)
	}
	if len(fromScalar) != 1 || fromScalar[0] != "하나의 제안" {
		t.Fatalf("scalar form: got=%v", fromScalar)
	}
}

func TestNormalizeKeywordsShapes(t *testing.T) {
	arr := `[{"word":"배송","frequency":12,"sentiment":"positive"}]`
	keywords, err := NormalizeKeywords(arr)
	if err != nil {
		t.Fatalf("array shape: %v", err)
	}
	if len(keywords) != 1 || keywords[0].Word != "배송" {
		t.Fatalf("array shape: got=%v", keywords)
	}

	wrapped := `{"keywords":[{"word":"오류","frequency":7,"sentiment":"negative"}]}`
	keywords, err = NormalizeKeywords(wrapped)
	if err != nil {
		t.Fatalf("wrapper shape: %v", err)
	}
	if len(keywords) != 1 || keywords[0].Frequency != 7 {
		t.Fatalf("wrapper shape: got=%v", keywords)
	}
}

func TestParseLabelLines(t *testing.T) {
	resp := "1. positive\n2) negative\nneutral\n"
	labels, err := parseLabelLines(resp, 3)
	if err != nil {
		t.Fatalf("parseLabelLines: %v", err)
	}
	want := []string{"positive", "negative", "neutral"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d]: want=%s got=%s", i, want[i], labels[i])
		}
	}

	if _, err = parseLabelLines("positive\nmaybe", 2); err == nil {
		t.Fatalf("expected error for invalid label")
	}
	if _, err = parseLabelLines("positive", 2); err == nil {
		t.Fatalf("expected error for short response")
	}
}
