package analyzer

import (
	"context"
	log "log/slog"
	"regexp"
	"sort"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/llm"
)

var koreanWord = regexp.MustCompile(`^[가-힣]{2,}$`)

// stopwords drops function words and generic filler the extraction tends to
// surface regardless of the reviewed product.
var stopwords = map[string]bool{
	"사용": true, "사용자": true, "그냥": true, "정말": true,
	"너무": true, "조금": true, "많이": true, "아주": true, "가끔": true,
	"항상": true, "때문": true, "이제": true, "지금": true, "이번": true,
	"다음": true, "처음": true, "마지막": true, "하지만": true, "그래서": true,
	"그리고": true, "또한": true, "있다": true, "없다": true, "된다": true,
	"한다": true, "같다": true, "다르다": true, "여기": true, "저기": true,
	"이거": true, "그거": true, "뭔가": true, "서비스": true, "기능": true,
}

// KeywordAggregator produces the per-polarity top-10 term tables.
type KeywordAggregator struct {
	capability llm.Capability
}

func NewKeywordAggregator(capability llm.Capability) *KeywordAggregator {
	return &KeywordAggregator{capability: capability}
}

// Generate splits reviews by polarity and extracts terms per side. A polarity
// with zero reviews yields nothing, and an extraction failure degrades that
// polarity to an empty list rather than failing the run.
func (a *KeywordAggregator) Generate(ctx context.Context, serviceID string, reviews []*model.Review) []*model.KeywordFrequency {
	if len(reviews) == 0 {
		return nil
	}

	var out []*model.KeywordFrequency
	for _, polarity := range []string{consts.SentimentPositive, consts.SentimentNegative} {
		texts := textsBySentiment(reviews, polarity)
		if len(texts) == 0 {
			continue
		}

		payloads, err := a.capability.ExtractKeywords(ctx, polarity, texts)
		if err != nil {
			log.WarnContext(ctx, "keyword extraction degraded to empty", "sentiment", polarity, "err", err)
			continue
		}

		out = append(out, rankKeywords(serviceID, polarity, payloads)...)
	}
	return out
}

func textsBySentiment(reviews []*model.Review, sentiment string) []string {
	var texts []string
	for _, r := range reviews {
		if r.Sentiment == sentiment {
			texts = append(texts, r.Content)
		}
	}
	return texts
}

// rankKeywords keeps Korean content words only, sorts by frequency and
// truncates to the top ten.
func rankKeywords(serviceID, polarity string, payloads []*llm.KeywordPayload) []*model.KeywordFrequency {
	var kept []*llm.KeywordPayload
	for _, p := range payloads {
		if p.Frequency <= 0 || !koreanWord.MatchString(p.Word) || stopwords[p.Word] {
			continue
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Frequency > kept[j].Frequency
	})
	if len(kept) > consts.MaxKeywords {
		kept = kept[:consts.MaxKeywords]
	}

	out := make([]*model.KeywordFrequency, 0, len(kept))
	for _, p := range kept {
		out = append(out, &model.KeywordFrequency{
			ServiceID: serviceID,
			Word:      p.Word,
			Frequency: p.Frequency,
			Sentiment: polarity,
		})
	}
	return out
}
