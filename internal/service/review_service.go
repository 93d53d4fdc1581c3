package service

import (
	"Commento/internal/api/dto"
	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/util"
	"Commento/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type ReviewService interface {
	ListReviews(ctx context.Context, query *dto.ReviewQueryDTO) (*dto.ReviewPageDTO, error)
	GetStats(ctx context.Context, query *dto.ReviewQueryDTO) (*dto.ReviewStatsDTO, error)
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepo
}

func NewReviewService(reviewRepo repository.ReviewRepo) ReviewService {
	return &reviewServiceImpl{reviewRepo: reviewRepo}
}

// ListReviews returns one page of reviews under the shared filter, newest
// first.
func (s *reviewServiceImpl) ListReviews(ctx context.Context, query *dto.ReviewQueryDTO) (*dto.ReviewPageDTO, error) {
	filter, err := buildReviewFilter(query.ServiceID, splitSources(query.Sources), query.DateFrom, query.DateTo, query.Sentiment)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = consts.DefaultDisplayRows
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	items, err := batchToReviewDTO(reviews)
	if err != nil {
		return nil, err
	}

	return &dto.ReviewPageDTO{
		List:     items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetStats summarizes the same filtered subset the listing shows.
func (s *reviewServiceImpl) GetStats(ctx context.Context, query *dto.ReviewQueryDTO) (*dto.ReviewStatsDTO, error) {
	filter, err := buildReviewFilter(query.ServiceID, splitSources(query.Sources), query.DateFrom, query.DateTo, query.Sentiment)
	if err != nil {
		return nil, err
	}

	stats, err := s.reviewRepo.Stats(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ReviewStatsDTO{
		Total:         stats.Total,
		Positive:      stats.Positive,
		Negative:      stats.Negative,
		AverageRating: util.Round1(stats.AverageRating),
	}, nil
}

// buildReviewFilter validates the raw query pieces and assembles the
// repository filter. DateTo is widened to end of day so a same-day range
// stays inclusive.
func buildReviewFilter(serviceID string, sources []string, dateFrom, dateTo, sentiment string) (*repository.ReviewFilter, error) {
	filter := &repository.ReviewFilter{ServiceID: strings.TrimSpace(serviceID)}

	for _, src := range sources {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if !consts.Sources[src] {
			return nil, ErrSourceUnknown
		}
		filter.Sources = append(filter.Sources, src)
	}

	if dateFrom != "" {
		from, err := util.ParseDate(dateFrom)
		if err != nil {
			return nil, ErrDateInvalid
		}
		filter.DateFrom = &from
	}
	if dateTo != "" {
		to, err := util.ParseDate(dateTo)
		if err != nil {
			return nil, ErrDateInvalid
		}
		to = util.EndOfDay(to)
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, ErrDateInvalid
	}

	sentiment = strings.TrimSpace(sentiment)
	if sentiment != "" {
		if !consts.Sentiments[sentiment] {
			return nil, ErrSentimentUnknown
		}
		filter.Sentiment = sentiment
	}

	return filter, nil
}

func splitSources(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func toReviewDTO(review *model.Review) (*dto.ReviewDTO, error) {
	out := &dto.ReviewDTO{}
	if err := copier.Copy(out, review); err != nil {
		return nil, err
	}
	out.CreatedAt = review.CreatedAt.Format(time.RFC3339)
	return out, nil
}

func batchToReviewDTO(reviews []*model.Review) ([]*dto.ReviewDTO, error) {
	out := make([]*dto.ReviewDTO, len(reviews))
	for i, review := range reviews {
		item, err := toReviewDTO(review)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
