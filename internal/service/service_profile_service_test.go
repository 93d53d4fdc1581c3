package service

import (
	"context"
	"errors"
	"testing"

	"Commento/internal/api/dto"
)

func TestCreateServiceDefaultsKeywordsToName(t *testing.T) {
	svc := NewServiceProfileService(&fakeServiceRepo{})

	created, err := svc.CreateService(context.Background(), &dto.ServiceBaseDTO{Name: "toss"})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if len(created.Keywords) != 1 || created.Keywords[0] != "toss" {
		t.Fatalf("default keywords: got=%v", created.Keywords)
	}
}

func TestCreateServiceRejectsDuplicateName(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewServiceProfileService(repo)

	if _, err := svc.CreateService(context.Background(), &dto.ServiceBaseDTO{Name: "toss"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateService(context.Background(), &dto.ServiceBaseDTO{Name: "toss"})
	if !errors.Is(err, ErrServiceExist) {
		t.Fatalf("want=ErrServiceExist got=%v", err)
	}
}

func TestCreateServiceRejectsBlankName(t *testing.T) {
	svc := NewServiceProfileService(&fakeServiceRepo{})

	_, err := svc.CreateService(context.Background(), &dto.ServiceBaseDTO{Name: "   "})
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("want=ErrParamInvalid got=%v", err)
	}
}
