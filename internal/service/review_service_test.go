package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Commento/internal/api/dto"
	"Commento/internal/model"
	"Commento/internal/pkg/consts"
	"Commento/internal/repository"
)

func TestBuildReviewFilterValidation(t *testing.T) {
	if _, err := buildReviewFilter("toss", []string{"friendster"}, "", "", ""); !errors.Is(err, ErrSourceUnknown) {
		t.Fatalf("unknown source: want=ErrSourceUnknown got=%v", err)
	}
	if _, err := buildReviewFilter("toss", nil, "not-a-date", "", ""); !errors.Is(err, ErrDateInvalid) {
		t.Fatalf("bad date: want=ErrDateInvalid got=%v", err)
	}
	if _, err := buildReviewFilter("toss", nil, "2026-08-10", "2026-08-01", ""); !errors.Is(err, ErrDateInvalid) {
		t.Fatalf("reversed range: want=ErrDateInvalid got=%v", err)
	}
	if _, err := buildReviewFilter("toss", nil, "", "", "angry"); !errors.Is(err, ErrSentimentUnknown) {
		t.Fatalf("bad sentiment: want=ErrSentimentUnknown got=%v", err)
	}
}

func TestBuildReviewFilterNormalizesDateTo(t *testing.T) {
	filter, err := buildReviewFilter("toss", []string{consts.SourceGooglePlay, " app_store "}, "2026-08-01", "2026-08-10", consts.SentimentAll)
	if err != nil {
		t.Fatalf("buildReviewFilter: %v", err)
	}

	if len(filter.Sources) != 2 {
		t.Fatalf("sources: want=2 got=%d", len(filter.Sources))
	}
	if filter.DateTo.Hour() != 23 || filter.DateTo.Minute() != 59 {
		t.Fatalf("DateTo not end-of-day: %v", filter.DateTo)
	}
	if filter.SentimentActive() {
		t.Fatalf("sentiment=all must not restrict")
	}
}

func TestListReviewsPagesAndMaps(t *testing.T) {
	repo := repository.NewMemoryReviewRepo()
	serviceID := "toss"
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, _, err := repo.Insert(context.Background(), &model.Review{
			UserID:    "u",
			Source:    consts.SourceGooglePlay,
			ServiceID: &serviceID,
			Rating:    4,
			Content:   "리뷰 " + string(rune('가'+i)),
			Sentiment: consts.SentimentPositive,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	svc := NewReviewService(repo)
	page, err := svc.ListReviews(context.Background(), &dto.ReviewQueryDTO{ServiceID: "toss"})
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}

	if page.Total != 25 {
		t.Fatalf("total: want=25 got=%d", page.Total)
	}
	if len(page.List) != consts.DefaultDisplayRows {
		t.Fatalf("default page size: want=%d got=%d", consts.DefaultDisplayRows, len(page.List))
	}
	if page.List[0].CreatedAt == "" {
		t.Fatalf("created_at must be formatted")
	}

	second, err := svc.ListReviews(context.Background(), &dto.ReviewQueryDTO{ServiceID: "toss", Page: 2})
	if err != nil {
		t.Fatalf("ListReviews page 2: %v", err)
	}
	if len(second.List) != 5 {
		t.Fatalf("second page size: want=5 got=%d", len(second.List))
	}
}

func TestGetStatsRoundsAverage(t *testing.T) {
	repo := repository.NewMemoryReviewRepo()
	serviceID := "toss"
	ratings := []int{5, 4, 4} // average 4.333... rounds to 4.3
	for i, rating := range ratings {
		_, _, err := repo.Insert(context.Background(), &model.Review{
			UserID:    "u" + string(rune('a'+i)),
			Source:    consts.SourceGooglePlay,
			ServiceID: &serviceID,
			Rating:    rating,
			Content:   "리뷰 " + string(rune('a'+i)),
			Sentiment: consts.SentimentPositive,
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	svc := NewReviewService(repo)
	stats, err := svc.GetStats(context.Background(), &dto.ReviewQueryDTO{ServiceID: "toss"})
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.AverageRating != 4.3 {
		t.Fatalf("average rating: want=4.3 got=%v", stats.AverageRating)
	}
	if stats.Total != 3 || stats.Positive != 3 {
		t.Fatalf("counts: got=%+v", stats)
	}
}
