package repository

import (
	"context"

	"Commento/internal/model"
	"Commento/internal/pkg/consts"

	"gorm.io/gorm"
)

// AnalysisRepo owns the two derived collections. They share one repository
// because every analysis run replaces both atomically.
type AnalysisRepo interface {
	ListInsights(ctx context.Context, serviceID string) ([]*model.Insight, error)
	ListKeywords(ctx context.Context, serviceID string, sentiment string) ([]*model.KeywordFrequency, error)
	// Replace wipes and rewrites the service's derived records in one
	// transaction, so concurrent readers never observe a half-replaced run.
	Replace(ctx context.Context, serviceID string, insights []*model.Insight, keywords []*model.KeywordFrequency) error
	// PurgeService drops derived records for one service only; collecting
	// reviews for one product must not erase another product's analysis.
	PurgeService(ctx context.Context, serviceID string) error
}

type AnalysisRepoImpl struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepo {
	return &AnalysisRepoImpl{db: db}
}

func (s *AnalysisRepoImpl) ListInsights(ctx context.Context, serviceID string) ([]*model.Insight, error) {
	var insights []*model.Insight
	err := s.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("FIELD(priority, 'critical', 'major', 'minor'), mention_count DESC").
		Limit(consts.MaxInsights).
		Find(&insights).Error
	if err != nil {
		return nil, err
	}
	return insights, nil
}

func (s *AnalysisRepoImpl) ListKeywords(ctx context.Context, serviceID string, sentiment string) ([]*model.KeywordFrequency, error) {
	var keywords []*model.KeywordFrequency
	err := s.db.WithContext(ctx).
		Where("service_id = ? AND sentiment = ?", serviceID, sentiment).
		Order("frequency DESC").
		Limit(consts.MaxKeywords).
		Find(&keywords).Error
	if err != nil {
		return nil, err
	}
	return keywords, nil
}

func (s *AnalysisRepoImpl) Replace(ctx context.Context, serviceID string, insights []*model.Insight, keywords []*model.KeywordFrequency) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&model.Insight{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", serviceID).Delete(&model.KeywordFrequency{}).Error; err != nil {
			return err
		}
		if len(insights) > 0 {
			if err := tx.Create(insights).Error; err != nil {
				return err
			}
		}
		if len(keywords) > 0 {
			if err := tx.Create(keywords).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *AnalysisRepoImpl) PurgeService(ctx context.Context, serviceID string) error {
	return s.Replace(ctx, serviceID, nil, nil)
}
