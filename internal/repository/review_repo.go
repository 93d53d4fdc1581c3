package repository

import (
	"context"
	"errors"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"

	"gorm.io/gorm"
)

type ReviewRepo interface {
	// Insert dedups on the (userId, content, source) natural key: a matching
	// record makes the insert a no-op that returns the stored original.
	Insert(ctx context.Context, review *model.Review) (*model.Review, bool, error)
	List(ctx context.Context, filter *ReviewFilter, page, pageSize int) ([]*model.Review, int64, error)
	ListAll(ctx context.Context, filter *ReviewFilter) ([]*model.Review, error)
	Stats(ctx context.Context, filter *ReviewFilter) (*ReviewStats, error)
	UpdateSentiments(ctx context.Context, labels map[uint64]string) error
}

type ReviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepo {
	return &ReviewRepoImpl{db: db}
}

func (s *ReviewRepoImpl) Insert(ctx context.Context, review *model.Review) (*model.Review, bool, error) {
	var existing model.Review
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND content = ? AND source = ?", review.UserID, review.Content, review.Source).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if review.Sentiment == "" {
		review.Sentiment = consts.SentimentAnalyzing
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, false, err
	}
	return review, true, nil
}

func (s *ReviewRepoImpl) List(ctx context.Context, filter *ReviewFilter, page, pageSize int) ([]*model.Review, int64, error) {
	query := s.applyFilter(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var reviews []*model.Review
	err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *ReviewRepoImpl) ListAll(ctx context.Context, filter *ReviewFilter) ([]*model.Review, error) {
	var reviews []*model.Review
	err := s.applyFilter(ctx, filter).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewRepoImpl) Stats(ctx context.Context, filter *ReviewFilter) (*ReviewStats, error) {
	var row struct {
		Total         int64
		Positive      int64
		Negative      int64
		AverageRating *float64
	}
	err := s.applyFilter(ctx, filter).
		Select(
			"COUNT(*) AS total, "+
				"SUM(CASE WHEN sentiment = ? THEN 1 ELSE 0 END) AS positive, "+
				"SUM(CASE WHEN sentiment = ? THEN 1 ELSE 0 END) AS negative, "+
				"AVG(rating) AS average_rating",
			consts.SentimentPositive, consts.SentimentNegative,
		).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := &ReviewStats{Total: row.Total, Positive: row.Positive, Negative: row.Negative}
	if row.AverageRating != nil {
		stats.AverageRating = *row.AverageRating
	}
	return stats, nil
}

func (s *ReviewRepoImpl) UpdateSentiments(ctx context.Context, labels map[uint64]string) error {
	if len(labels) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, sentiment := range labels {
			err := tx.Model(&model.Review{}).
				Where("id = ?", id).
				Update("sentiment", sentiment).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ReviewRepoImpl) applyFilter(ctx context.Context, filter *ReviewFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.Review{})
	if filter == nil {
		return query
	}
	if filter.ServiceID != "" {
		query = query.Where("service_id = ?", filter.ServiceID)
	}
	if len(filter.Sources) > 0 {
		query = query.Where("source IN ?", filter.Sources)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}
	if filter.SentimentActive() {
		query = query.Where("sentiment = ?", filter.Sentiment)
	}
	return query
}
