package repository

import (
	"context"
	"sort"
	"sync"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"
)

// In-memory implementations of the repository interfaces. They back the test
// suite and double as a durable-store stand-in for local runs; the filter and
// ordering semantics mirror the GORM implementations exactly.

type MemoryReviewRepo struct {
	mu      sync.RWMutex
	nextID  uint64
	reviews []*model.Review
}

func NewMemoryReviewRepo() *MemoryReviewRepo {
	return &MemoryReviewRepo{nextID: 1}
}

func (s *MemoryReviewRepo) Insert(_ context.Context, review *model.Review) (*model.Review, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.UserID == review.UserID && r.Content == review.Content && r.Source == review.Source {
			return r, false, nil
		}
	}

	stored := *review
	stored.ID = s.nextID
	s.nextID++
	if stored.Sentiment == "" {
		stored.Sentiment = consts.SentimentAnalyzing
	}
	s.reviews = append(s.reviews, &stored)
	return &stored, true, nil
}

func (s *MemoryReviewRepo) List(ctx context.Context, filter *ReviewFilter, page, pageSize int) ([]*model.Review, int64, error) {
	matched, err := s.ListAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(matched))

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *MemoryReviewRepo) ListAll(_ context.Context, filter *ReviewFilter) ([]*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*model.Review
	for _, r := range s.reviews {
		if matchReview(filter, r) {
			copied := *r
			matched = append(matched, &copied)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *MemoryReviewRepo) Stats(ctx context.Context, filter *ReviewFilter) (*ReviewStats, error) {
	matched, err := s.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &ReviewStats{Total: int64(len(matched))}
	if len(matched) == 0 {
		return stats, nil
	}

	ratingSum := 0
	for _, r := range matched {
		switch r.Sentiment {
		case consts.SentimentPositive:
			stats.Positive++
		case consts.SentimentNegative:
			stats.Negative++
		}
		ratingSum += r.Rating
	}
	stats.AverageRating = float64(ratingSum) / float64(len(matched))
	return stats, nil
}

func (s *MemoryReviewRepo) UpdateSentiments(_ context.Context, labels map[uint64]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if label, ok := labels[r.ID]; ok {
			r.Sentiment = label
		}
	}
	return nil
}

func matchReview(filter *ReviewFilter, r *model.Review) bool {
	if filter == nil {
		return true
	}
	if filter.ServiceID != "" {
		if r.ServiceID == nil || *r.ServiceID != filter.ServiceID {
			return false
		}
	}
	if len(filter.Sources) > 0 {
		found := false
		for _, src := range filter.Sources {
			if r.Source == src {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.DateFrom != nil && r.CreatedAt.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && r.CreatedAt.After(*filter.DateTo) {
		return false
	}
	if filter.SentimentActive() && r.Sentiment != filter.Sentiment {
		return false
	}
	return true
}

type MemoryAnalysisRepo struct {
	mu       sync.RWMutex
	nextID   uint64
	insights []*model.Insight
	keywords []*model.KeywordFrequency
}

func NewMemoryAnalysisRepo() *MemoryAnalysisRepo {
	return &MemoryAnalysisRepo{nextID: 1}
}

func (s *MemoryAnalysisRepo) ListInsights(_ context.Context, serviceID string) ([]*model.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*model.Insight
	for _, in := range s.insights {
		if in.ServiceID == serviceID {
			copied := *in
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		ri, rj := consts.PriorityRank[matched[i].Priority], consts.PriorityRank[matched[j].Priority]
		if ri == rj {
			return matched[i].MentionCount > matched[j].MentionCount
		}
		return ri < rj
	})
	if len(matched) > consts.MaxInsights {
		matched = matched[:consts.MaxInsights]
	}
	return matched, nil
}

func (s *MemoryAnalysisRepo) ListKeywords(_ context.Context, serviceID string, sentiment string) ([]*model.KeywordFrequency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*model.KeywordFrequency
	for _, kw := range s.keywords {
		if kw.ServiceID == serviceID && kw.Sentiment == sentiment {
			copied := *kw
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Frequency > matched[j].Frequency
	})
	if len(matched) > consts.MaxKeywords {
		matched = matched[:consts.MaxKeywords]
	}
	return matched, nil
}

func (s *MemoryAnalysisRepo) Replace(_ context.Context, serviceID string, insights []*model.Insight, keywords []*model.KeywordFrequency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.insights[:0]
	for _, in := range s.insights {
		if in.ServiceID != serviceID {
			kept = append(kept, in)
		}
	}
	s.insights = kept

	keptKw := s.keywords[:0]
	for _, kw := range s.keywords {
		if kw.ServiceID != serviceID {
			keptKw = append(keptKw, kw)
		}
	}
	s.keywords = keptKw

	for _, in := range insights {
		copied := *in
		copied.ID = s.nextID
		s.nextID++
		s.insights = append(s.insights, &copied)
	}
	for _, kw := range keywords {
		copied := *kw
		copied.ID = s.nextID
		s.nextID++
		s.keywords = append(s.keywords, &copied)
	}
	return nil
}

func (s *MemoryAnalysisRepo) PurgeService(ctx context.Context, serviceID string) error {
	return s.Replace(ctx, serviceID, nil, nil)
}
