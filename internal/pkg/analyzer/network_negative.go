package analyzer

import (
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"strings"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"
)

// negativeMarkers admit reviews into the negative analysis even when the
// classifier labeled them otherwise, so clearly frustrated texts are not
// lost to a mild label.
var negativeMarkers = []string{
	"불편", "안되", "안돼", "문제", "오류", "실패",
	"느림", "끊어", "멈춤", "복잡", "어려", "힘들",
}

var negativeStopwords = map[string]bool{
	"사용": true, "사용자": true, "좋다": true, "나쁘다": true, "괜찮다": true,
	"별로": true, "그냥": true, "정말": true, "너무": true, "조금": true,
	"많이": true, "아주": true, "가끔": true, "항상": true, "때문": true,
	"이제": true, "지금": true, "이번": true, "다음": true, "처음": true,
	"마지막": true, "하지만": true, "그래서": true, "그리고": true, "또한": true,
	"있다": true, "없다": true, "된다": true, "한다": true, "같다": true,
	"다르다": true, "서비스": true, "기능": true, "시스템": true,
}

// problemVocabulary anchors the meaningfulness check: failure terms, emotion
// terms and the features complaints attach to.
var problemVocabulary = []string{
	"오류", "버그", "문제", "에러", "실패", "작동", "멈춤", "충돌", "끊어짐",
	"안되", "안돼", "안됨", "불가", "차단", "제한", "금지", "거부",
	"불편", "불만", "답답", "짜증", "화남", "실망", "후회", "스트레스",
	"귀찮", "복잡", "어려", "힘들", "형편없", "구리", "최악", "렉",
	"통화", "전화", "연결", "수신", "발신", "녹음", "음성", "소리",
	"화면", "버튼", "메뉴", "설정", "배터리", "메모리", "속도", "느림",
	"빠름", "반응", "처리", "로딩", "시간", "대기", "지연",
}

// GenerateNegative builds the negative-review keyword network: top terms
// from negatively-read reviews, PMI-scored co-occurrence edges and
// usability-centered clusters labeled by the model. No negative reviews
// yields an empty network rather than an error.
func (a *NetworkAggregator) GenerateNegative(ctx context.Context, reviews []*model.Review) (*Network, error) {
	negatives := filterNegatives(reviews)
	if len(negatives) == 0 {
		return &Network{}, nil
	}

	freq := countNegativeTerms(negatives)
	top := topByFrequency(freq, consts.NegativeTopWords)
	if len(top) == 0 {
		return &Network{}, nil
	}
	topFreq := make(map[string]int, len(top))
	for _, w := range top {
		topFreq[w] = freq[w]
	}

	cooc := negativeCooccurrence(reviews, topFreq, consts.NegativeWindow)
	totalWords := 0
	for _, n := range topFreq {
		totalWords += n
	}

	clusters := a.clusterNegatives(ctx, top)

	var nodes []*NetworkNode
	for _, cluster := range clusters {
		kept := cluster.Keywords[:0]
		for _, word := range cluster.Keywords {
			n, ok := topFreq[word]
			if !ok {
				continue
			}
			kept = append(kept, word)
			nodes = append(nodes, &NetworkNode{ID: word, Frequency: n, Cluster: cluster.ID})
		}
		cluster.Keywords = kept
	}

	var edges []*NetworkEdge
	for pair, count := range cooc {
		if count < 2 {
			continue
		}
		pmi := pmiScore(count, topFreq[pair[0]], topFreq[pair[1]], totalWords)
		if pmi <= 0.1 {
			continue
		}
		edges = append(edges, &NetworkEdge{Source: pair[0], Target: pair[1], Weight: count, PMI: pmi})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].PMI != edges[j].PMI {
			return edges[i].PMI > edges[j].PMI
		}
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})

	log.InfoContext(ctx, "negative keyword network built",
		"negative_reviews", len(negatives), "nodes", len(nodes), "edges", len(edges), "clusters", len(clusters))
	return &Network{Nodes: nodes, Edges: edges, Clusters: clusters}, nil
}

// filterNegatives keeps reviews labeled negative plus any review carrying an
// explicit complaint marker.
func filterNegatives(reviews []*model.Review) []*model.Review {
	var out []*model.Review
	for _, review := range reviews {
		if review.Sentiment == consts.SentimentNegative {
			out = append(out, review)
			continue
		}
		for _, marker := range negativeMarkers {
			if strings.Contains(review.Content, marker) {
				out = append(out, review)
				break
			}
		}
	}
	return out
}

// countNegativeTerms counts every meaningful hangul occurrence, not just one
// per review: repetition inside one angry review is signal here.
func countNegativeTerms(reviews []*model.Review) map[string]int {
	freq := make(map[string]int)
	for _, review := range reviews {
		for _, word := range hangulRun.FindAllString(review.Content, -1) {
			if negativeStopwords[word] || !meaningfulTerm(word) {
				continue
			}
			freq[word]++
		}
	}
	return freq
}

// meaningfulTerm accepts problem-vocabulary hits, substring matches either
// way, and any remaining hangul word of two or more characters.
func meaningfulTerm(word string) bool {
	for _, term := range problemVocabulary {
		if word == term || strings.Contains(word, term) || strings.Contains(term, word) {
			return true
		}
	}
	return len([]rune(word)) >= 2
}

// negativeCooccurrence counts pairs over the strictly negative-labeled
// reviews only, on the extracted hangul word sequence.
func negativeCooccurrence(reviews []*model.Review, keywords map[string]int, window int) map[[2]string]int {
	cooc := make(map[[2]string]int)
	for _, review := range reviews {
		if review.Sentiment != consts.SentimentNegative {
			continue
		}

		var words []string
		for _, word := range hangulRun.FindAllString(review.Content, -1) {
			if _, ok := keywords[word]; ok {
				words = append(words, word)
			}
		}

		for i, w1 := range words {
			end := i + window + 1
			if end > len(words) {
				end = len(words)
			}
			for j := i + 1; j < end; j++ {
				if w1 != words[j] {
					cooc[pairKey(w1, words[j])]++
				}
			}
		}
	}
	return cooc
}

// clusterNegatives groups the top keywords through the model; on failure it
// falls back to frequency-ordered chunks with numbered labels.
func (a *NetworkAggregator) clusterNegatives(ctx context.Context, top []string) []*NetworkCluster {
	payloads, err := a.capability.ClusterKeywords(ctx, top)
	if err != nil || len(payloads) == 0 {
		if err != nil {
			log.WarnContext(ctx, "negative clustering degraded to chunks", "err", err)
		}
		return chunkClusters(top)
	}

	clusters := make([]*NetworkCluster, 0, len(payloads))
	for _, p := range payloads {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = fmt.Sprintf("문제 유형 %d", len(clusters)+1)
		}
		clusters = append(clusters, &NetworkCluster{
			ID:       len(clusters),
			Name:     name,
			Keywords: append([]string(nil), p.Keywords...),
		})
	}
	return clusters
}

func chunkClusters(top []string) []*NetworkCluster {
	size := len(top) / 3
	if size < 3 {
		size = 3
	}

	var clusters []*NetworkCluster
	for i := 0; i < len(top); i += size {
		end := i + size
		if end > len(top) {
			end = len(top)
		}
		clusters = append(clusters, &NetworkCluster{
			ID:       len(clusters),
			Name:     fmt.Sprintf("문제 유형 %d", len(clusters)+1),
			Keywords: append([]string(nil), top[i:end]...),
		})
	}
	return clusters
}
