package repository

import (
	"context"
	"errors"

	"Commento/internal/model"

	"gorm.io/gorm"
)

type ServiceRepo interface {
	List(ctx context.Context) ([]*model.ServiceProfile, error)
	GetByName(ctx context.Context, name string) (*model.ServiceProfile, error)
	Create(ctx context.Context, profile *model.ServiceProfile) error
}

type ServiceRepoImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepo {
	return &ServiceRepoImpl{db: db}
}

func (s *ServiceRepoImpl) List(ctx context.Context) ([]*model.ServiceProfile, error) {
	var profiles []*model.ServiceProfile
	err := s.db.WithContext(ctx).Order("name").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *ServiceRepoImpl) GetByName(ctx context.Context, name string) (*model.ServiceProfile, error) {
	var profile model.ServiceProfile
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ServiceRepoImpl) Create(ctx context.Context, profile *model.ServiceProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}
