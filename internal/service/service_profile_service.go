package service

import (
	"Commento/internal/api/dto"
	"Commento/internal/model"
	"Commento/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type ServiceProfileService interface {
	ListServices(ctx context.Context) ([]*dto.ServiceDTO, error)
	CreateService(ctx context.Context, base *dto.ServiceBaseDTO) (*dto.ServiceDTO, error)
}

type serviceProfileServiceImpl struct {
	serviceRepo repository.ServiceRepo
}

func NewServiceProfileService(serviceRepo repository.ServiceRepo) ServiceProfileService {
	return &serviceProfileServiceImpl{serviceRepo: serviceRepo}
}

func (s *serviceProfileServiceImpl) ListServices(ctx context.Context) ([]*dto.ServiceDTO, error) {
	profiles, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ServiceDTO, len(profiles))
	for i, profile := range profiles {
		item, err := toServiceDTO(profile)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

// CreateService registers a new tracked service. Names are unique.
func (s *serviceProfileServiceImpl) CreateService(ctx context.Context, base *dto.ServiceBaseDTO) (*dto.ServiceDTO, error) {
	name := strings.TrimSpace(base.Name)
	if name == "" {
		return nil, ErrParamInvalid
	}

	existing, err := s.serviceRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrServiceExist
	}

	profile := &model.ServiceProfile{
		Name:         name,
		GooglePlayID: strings.TrimSpace(base.GooglePlayID),
		AppleStoreID: strings.TrimSpace(base.AppleStoreID),
		Keywords:     base.Keywords,
	}
	if len(profile.Keywords) == 0 {
		profile.Keywords = []string{name}
	}

	if err = s.serviceRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return toServiceDTO(profile)
}

func toServiceDTO(profile *model.ServiceProfile) (*dto.ServiceDTO, error) {
	out := &dto.ServiceDTO{}
	if err := copier.Copy(out, profile); err != nil {
		return nil, err
	}
	out.CreatedAt = profile.CreatedAt.Format(time.RFC3339)
	return out, nil
}
