package analyzer

import (
	"Commento/internal/pkg/consts"
)

// Facet pairs a HEART category with its definition (sent to the model) and
// the lexical markers used to partition reviews into the category.
type Facet struct {
	Name       string
	Definition string
	Keywords   []string
}

var facets = []Facet{
	{
		Name:       consts.FacetHappiness,
		Definition: "사용자가 서비스에 느끼는 전반적 만족감과 호감 (Happiness)",
		Keywords:   []string{"좋아요", "만족", "예쁘다", "좋네요", "훌륭", "완벽", "최고", "감사", "행복", "실망", "짜증", "최악"},
	},
	{
		Name:       consts.FacetEngagement,
		Definition: "사용 빈도와 몰입 수준 (Engagement)",
		Keywords:   []string{"자주", "계속", "매일", "습관", "재미", "흥미", "몰입", "빠져들"},
	},
	{
		Name:       consts.FacetAdoption,
		Definition: "신규 사용자의 진입과 초기 경험 (Adoption)",
		Keywords:   []string{"처음", "시작", "가입", "설치", "온보딩", "첫", "초기", "어려워", "어렵", "복잡"},
	},
	{
		Name:       consts.FacetRetention,
		Definition: "재방문과 지속 사용 (Retention)",
		Keywords:   []string{"다시", "재방문", "돌아", "지속", "유지", "꾸준", "알림", "삭제", "지웠"},
	},
	{
		Name:       consts.FacetTaskSuccess,
		Definition: "핵심 작업의 완수 가능성과 안정성 (Task Success)",
		Keywords:   []string{"완료", "성공", "달성", "해결", "찾기", "기능", "작업", "오류", "버그", "실패", "안되", "먹통", "튕김"},
	},
}

// coreFailure and friction drive the priority heuristic: core-function
// failures mentioned three or more times are critical, usability friction
// mentioned twice is major, anything else is minor.
var coreFailure = []string{"오류", "버그", "튕김", "멈춤", "먹통", "안되", "안돼", "실행", "크래시", "꺼짐"}

var friction = []string{"불편", "복잡", "어려", "헷갈", "귀찮", "번거"}
