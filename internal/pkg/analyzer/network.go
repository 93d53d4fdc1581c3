package analyzer

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/llm"
)

// ErrSparseData is returned when the review set is too small or too uniform
// to build a meaningful keyword network.
var ErrSparseData = errors.New("not enough review data for network analysis")

// NetworkNode is one keyword in the co-occurrence graph. Cluster is -1 when
// the node belongs to no cluster.
type NetworkNode struct {
	ID        string
	Frequency int
	Cluster   int
}

// NetworkEdge links two keywords that appear near each other. Weight is the
// raw co-occurrence count, PMI the pointwise mutual information score.
type NetworkEdge struct {
	Source string
	Target string
	Weight int
	PMI    float64
}

// NetworkCluster is a labeled group of related keywords.
type NetworkCluster struct {
	ID       int
	Name     string
	Keywords []string
}

// Network is the full co-occurrence analysis result.
type Network struct {
	Nodes    []*NetworkNode
	Edges    []*NetworkEdge
	Clusters []*NetworkCluster
}

// networkStopwords drops filler terms that would dominate the graph without
// telling anything about the product.
var networkStopwords = map[string]bool{
	"사용": true, "사용자": true, "아직": true, "이번": true, "조금": true,
	"정말": true, "너무": true, "그냥": true, "다시": true, "하지만": true,
	"그래서": true, "그리고": true, "또한": true, "이것": true, "그것": true,
	"이제": true, "다음": true, "처음": true, "마지막": true, "지금": true,
	"오늘": true, "내일": true, "어제": true, "하루": true, "시간": true,
	"거의": true, "많이": true, "전혀": true, "항상": true, "가끔": true,
	"자주": true, "특히": true, "주로": true, "대부분": true, "일부": true,
	"전부": true, "모든": true, "각각": true, "서로": true, "있다": true,
	"없다": true, "된다": true, "안된다": true, "한다": true, "같다": true,
	"다르다": true, "사람": true,
}

// domainTerms are product-review vocabulary matched as substrings, so terms
// buried inside longer eojeols still surface.
var domainTerms = []string{
	"통화", "연결", "끊김", "음성", "화질", "소리", "볼륨", "진동",
	"로딩", "속도", "느림", "빠름", "반응", "지연", "멈춤", "튕김",
	"인터페이스", "화면", "버튼", "메뉴", "아이콘", "디자인", "레이아웃",
	"기능", "설정", "옵션", "편의", "사용성", "직관", "복잡", "간단",
	"배터리", "발열", "과열", "소모", "충전", "성능", "메모리",
	"업데이트", "버전", "오류", "버그", "문제", "개선", "수정",
	"보안", "안전", "인증", "로그인", "비밀번호", "개인정보",
	"알림", "푸시", "메시지", "경고", "안내", "표시",
	"품질", "안정", "크기", "터치", "정확", "데이터",
	"녹음", "재인증", "번거", "유용", "만족", "어려", "걱정",
	"깔끔", "헷갈", "편리", "강화", "안심", "불편",
	"문제점", "개선점", "장점", "단점", "효과", "결과",
}

var hangulRun = regexp.MustCompile(`[가-힣]{2,6}`)

// verb and politeness endings stripped from candidate words before counting.
var wordEndings = []string{
	"습니다", "했다", "하다", "되다", "이다", "았다", "었다",
	"이에요", "예요", "해요", "세요", "네요", "데요", "군요",
}

var junkWords = map[string]bool{
	"하지": true, "그런": true, "이런": true, "저런": true, "그래": true,
	"이래": true, "저래": true, "아니": true, "맞음": true, "틀림": true,
}

// NetworkAggregator builds keyword co-occurrence graphs over a review set,
// with model-labeled clusters.
type NetworkAggregator struct {
	capability llm.Capability
}

func NewNetworkAggregator(capability llm.Capability) *NetworkAggregator {
	return &NetworkAggregator{capability: capability}
}

// Generate builds the full-corpus keyword network: extract terms, count
// windowed co-occurrence, score edges with PMI, cluster connected components
// and label each cluster. Too little data at any step yields ErrSparseData.
func (a *NetworkAggregator) Generate(ctx context.Context, reviews []*model.Review) (*Network, error) {
	if len(reviews) < consts.NetworkMinReviews {
		return nil, ErrSparseData
	}

	freq := countNetworkTerms(reviews)
	if len(freq) < 3 {
		return nil, ErrSparseData
	}

	cooc, totalWords := windowedCooccurrence(reviews, freq, consts.NetworkWindow)
	top := topByFrequency(freq, consts.NetworkTopKeywords)

	edges := buildEdges(top, freq, cooc, totalWords)
	if len(edges) < 3 {
		return nil, ErrSparseData
	}

	nodes := make([]*NetworkNode, len(top))
	for i, word := range top {
		nodes[i] = &NetworkNode{ID: word, Frequency: freq[word], Cluster: -1}
	}

	clusters := connectedComponents(nodes, edges)
	a.labelClusters(ctx, clusters, freq)

	log.InfoContext(ctx, "keyword network built",
		"keywords", len(freq), "nodes", len(nodes), "edges", len(edges), "clusters", len(clusters))
	return &Network{Nodes: nodes, Edges: edges, Clusters: clusters}, nil
}

// countNetworkTerms extracts candidate terms per review (deduplicated within
// a review) and counts how many reviews mention each.
func countNetworkTerms(reviews []*model.Review) map[string]int {
	freq := make(map[string]int)
	for _, review := range reviews {
		for term := range extractTerms(review.Content) {
			if networkStopwords[term] {
				continue
			}
			n := len([]rune(term))
			if n < 2 || n > 8 {
				continue
			}
			freq[term]++
		}
	}
	return freq
}

// extractTerms combines substring hits on the domain vocabulary with the
// hangul runs found in the text, endings trimmed.
func extractTerms(text string) map[string]bool {
	terms := make(map[string]bool)
	for _, term := range domainTerms {
		if strings.Contains(text, term) {
			terms[term] = true
		}
	}
	for _, word := range hangulRun.FindAllString(text, -1) {
		for _, ending := range wordEndings {
			if trimmed := strings.TrimSuffix(word, ending); trimmed != word {
				word = trimmed
				break
			}
		}
		if len([]rune(word)) >= 2 && !junkWords[word] {
			terms[word] = true
		}
	}
	return terms
}

// windowedCooccurrence counts keyword pairs appearing within window tokens
// of each other. Tokens are whitespace-split eojeols, so only exact matches
// count; the substring-matched domain terms meet through extractTerms.
func windowedCooccurrence(reviews []*model.Review, keywords map[string]int, window int) (map[[2]string]int, int) {
	cooc := make(map[[2]string]int)
	totalWords := 0
	for _, review := range reviews {
		words := strings.Fields(review.Content)
		totalWords += len(words)
		for i, w1 := range words {
			if _, ok := keywords[w1]; !ok {
				continue
			}
			end := i + window + 1
			if end > len(words) {
				end = len(words)
			}
			for j := i + 1; j < end; j++ {
				w2 := words[j]
				if _, ok := keywords[w2]; !ok || w1 == w2 {
					continue
				}
				cooc[pairKey(w1, w2)]++
			}
		}
	}
	return cooc, totalWords
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// pmiScore is max(0, log(P(x,y) / (P(x) P(y)))).
func pmiScore(coocCount, freqX, freqY, total int) float64 {
	if total == 0 || coocCount == 0 || freqX == 0 || freqY == 0 {
		return 0
	}
	pxy := float64(coocCount) / float64(total)
	px := float64(freqX) / float64(total)
	py := float64(freqY) / float64(total)
	pmi := math.Log(pxy / (px * py))
	if pmi < 0 {
		return 0
	}
	return pmi
}

func topByFrequency(freq map[string]int, limit int) []string {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

func buildEdges(top []string, freq map[string]int, cooc map[[2]string]int, totalWords int) []*NetworkEdge {
	topSet := make(map[string]bool, len(top))
	for _, w := range top {
		topSet[w] = true
	}

	var edges []*NetworkEdge
	for pair, count := range cooc {
		if count < 1 || !topSet[pair[0]] || !topSet[pair[1]] {
			continue
		}
		edges = append(edges, &NetworkEdge{
			Source: pair[0],
			Target: pair[1],
			Weight: count,
			PMI:    pmiScore(count, freq[pair[0]], freq[pair[1]], totalWords),
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}

// connectedComponents groups nodes reachable through edges, keeps components
// of at least MinClusterSize members and writes the cluster index back onto
// the nodes.
func connectedComponents(nodes []*NetworkNode, edges []*NetworkEdge) []*NetworkCluster {
	graph := make(map[string][]string)
	for _, e := range edges {
		graph[e.Source] = append(graph[e.Source], e.Target)
		graph[e.Target] = append(graph[e.Target], e.Source)
	}

	visited := make(map[string]bool)
	var clusters []*NetworkCluster
	for _, node := range nodes {
		if visited[node.ID] {
			continue
		}

		var members []string
		stack := []string{node.ID}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			members = append(members, cur)
			stack = append(stack, graph[cur]...)
		}

		if len(members) >= consts.MinClusterSize {
			sort.Strings(members)
			clusters = append(clusters, &NetworkCluster{ID: len(clusters), Keywords: members})
		}
	}

	byWord := make(map[string]int)
	for _, c := range clusters {
		for _, w := range c.Keywords {
			byWord[w] = c.ID
		}
	}
	for _, node := range nodes {
		if idx, ok := byWord[node.ID]; ok {
			node.Cluster = idx
		}
	}
	return clusters
}

// labelClusters names each cluster through the model, falling back to a
// numbered label when the call fails.
func (a *NetworkAggregator) labelClusters(ctx context.Context, clusters []*NetworkCluster, freq map[string]int) {
	for _, cluster := range clusters {
		words := append([]string(nil), cluster.Keywords...)
		sort.Slice(words, func(i, j int) bool {
			if freq[words[i]] != freq[words[j]] {
				return freq[words[i]] > freq[words[j]]
			}
			return words[i] < words[j]
		})
		if len(words) > 10 {
			words = words[:10]
		}

		cluster.Name = fmt.Sprintf("클러스터 %d", cluster.ID+1)
		payloads, err := a.capability.ClusterKeywords(ctx, words)
		if err != nil {
			log.WarnContext(ctx, "cluster labeling degraded to default", "cluster", cluster.ID, "err", err)
			continue
		}
		if len(payloads) > 0 && strings.TrimSpace(payloads[0].Name) != "" {
			cluster.Name = strings.TrimSpace(payloads[0].Name)
		}
	}
}
