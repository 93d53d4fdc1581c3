package analyzer

import (
	"Commento/internal/model"
	"Commento/internal/pkg/consts"
)

// templateInsights is the degraded-but-present result used when every
// facet-level model call failed: generic findings covering the five facets so
// the dashboard is never empty.
func templateInsights(serviceID string, mentionCount int) []*model.Insight {
	tpl := []struct {
		category string
		title    string
		desc     string
		priority string
	}{
		{
			category: consts.FacetHappiness,
			title:    "전반적 만족도 점검 필요",
			desc:     "수집된 리뷰에서 만족도 관련 의견이 확인되었습니다. 부정 리뷰의 주요 불만 사항을 직접 검토해 개선 우선순위를 정하는 것을 권장합니다.",
			priority: consts.PriorityMajor,
		},
		{
			category: consts.FacetEngagement,
			title:    "사용 빈도 및 몰입 요인 분석 필요",
			desc:     "재사용을 유도하는 기능과 이탈을 유발하는 요인을 구분하기 위한 사용 패턴 분석이 필요합니다.",
			priority: consts.PriorityMinor,
		},
		{
			category: consts.FacetAdoption,
			title:    "초기 진입 경험 개선 검토",
			desc:     "신규 사용자 온보딩 과정의 마찰 지점을 점검하고 첫 사용 흐름을 단순화하는 것을 검토하세요.",
			priority: consts.PriorityMajor,
		},
		{
			category: consts.FacetRetention,
			title:    "지속 사용 유도 장치 점검",
			desc:     "알림, 리마인더 등 재방문 유도 장치가 사용자에게 가치를 주는지 검토가 필요합니다.",
			priority: consts.PriorityMinor,
		},
		{
			category: consts.FacetTaskSuccess,
			title:    "핵심 기능 안정성 점검",
			desc:     "오류 및 기능 실패 관련 언급 여부를 확인하고 핵심 과업의 완수율을 측정하는 것을 권장합니다.",
			priority: consts.PriorityMajor,
		},
	}

	out := make([]*model.Insight, 0, len(tpl))
	for _, t := range tpl {
		out = append(out, &model.Insight{
			ServiceID:    serviceID,
			Category:     t.category,
			Title:        t.title,
			Description:  t.desc,
			Priority:     t.priority,
			MentionCount: mentionCount,
			Trend:        consts.TrendStable,
		})
	}
	return out
}
