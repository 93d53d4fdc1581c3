package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Commento/internal/api/dto"
	"Commento/internal/model"
	"Commento/internal/pkg/collector"
	"Commento/internal/pkg/consts"
	"Commento/internal/repository"
)

// fakeCollector serves a fixed review batch for one source.
type fakeCollector struct {
	source   string
	reviews  []*model.Review
	err      error
	calls    int
	gotCount int
}

func (c *fakeCollector) Source() string {
	return c.source
}

func (c *fakeCollector) Collect(_ context.Context, req *collector.Request) ([]*model.Review, error) {
	c.calls++
	c.gotCount = req.Count
	if c.err != nil {
		return nil, c.err
	}
	return c.reviews, nil
}

func collectedReview(userID, source, content string) *model.Review {
	serviceID := "toss"
	return &model.Review{
		UserID:    userID,
		Source:    source,
		ServiceID: &serviceID,
		Rating:    3,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func TestCollectStoresAndDeduplicates(t *testing.T) {
	reviewRepo := repository.NewMemoryReviewRepo()
	analysisRepo := repository.NewMemoryAnalysisRepo()
	serviceRepo := &fakeServiceRepo{profiles: []*model.ServiceProfile{{ID: 1, Name: "toss"}}}

	google := &fakeCollector{source: consts.SourceGooglePlay, reviews: []*model.Review{
		collectedReview("u1", consts.SourceGooglePlay, "좋아요"),
		collectedReview("u1", consts.SourceGooglePlay, "좋아요"), // duplicate
		collectedReview("u2", consts.SourceGooglePlay, "별로예요"),
	}}
	svc := NewCollectService(reviewRepo, analysisRepo, serviceRepo, []collector.Collector{google})

	result, err := svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "toss"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if result.Collected != 2 || result.Duplicates != 1 {
		t.Fatalf("counts: got=%+v", result)
	}
	if result.PerSource[consts.SourceGooglePlay] != 2 {
		t.Fatalf("per-source count: got=%v", result.PerSource)
	}

	// rerunning the same batch stores nothing new
	result, err = svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "toss"})
	if err != nil {
		t.Fatalf("Collect rerun: %v", err)
	}
	if result.Collected != 0 || result.Duplicates != 3 {
		t.Fatalf("rerun counts: got=%+v", result)
	}
}

func TestCollectPurgesStaleAnalysisOnNewRows(t *testing.T) {
	reviewRepo := repository.NewMemoryReviewRepo()
	analysisRepo := repository.NewMemoryAnalysisRepo()
	serviceRepo := &fakeServiceRepo{profiles: []*model.ServiceProfile{{ID: 1, Name: "toss"}}}

	err := analysisRepo.Replace(context.Background(), "toss", []*model.Insight{
		{ServiceID: "toss", Title: "낡은 발견", Priority: consts.PriorityMinor},
	}, nil)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	google := &fakeCollector{source: consts.SourceGooglePlay, reviews: []*model.Review{
		collectedReview("u1", consts.SourceGooglePlay, "새 리뷰"),
	}}
	svc := NewCollectService(reviewRepo, analysisRepo, serviceRepo, []collector.Collector{google})

	if _, err = svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "toss"}); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	insights, _ := analysisRepo.ListInsights(context.Background(), "toss")
	if len(insights) != 0 {
		t.Fatalf("stale insights not purged: got=%d", len(insights))
	}
}

func TestCollectRecordsFailedSourcesAndContinues(t *testing.T) {
	reviewRepo := repository.NewMemoryReviewRepo()
	analysisRepo := repository.NewMemoryAnalysisRepo()
	serviceRepo := &fakeServiceRepo{profiles: []*model.ServiceProfile{{ID: 1, Name: "toss"}}}

	broken := &fakeCollector{source: consts.SourceNaverBlog, err: errors.New("api quota exceeded")}
	working := &fakeCollector{source: consts.SourceAppStore, reviews: []*model.Review{
		collectedReview("u1", consts.SourceAppStore, "잘 쓰고 있어요"),
	}}
	svc := NewCollectService(reviewRepo, analysisRepo, serviceRepo, []collector.Collector{broken, working})

	result, err := svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "toss"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if result.Collected != 1 {
		t.Fatalf("collected: want=1 got=%d", result.Collected)
	}
	if len(result.Failed) != 1 || result.Failed[0] != consts.SourceNaverBlog {
		t.Fatalf("failed sources: got=%v", result.Failed)
	}
}

func TestCollectFiltersRequestedSources(t *testing.T) {
	reviewRepo := repository.NewMemoryReviewRepo()
	analysisRepo := repository.NewMemoryAnalysisRepo()
	serviceRepo := &fakeServiceRepo{profiles: []*model.ServiceProfile{{ID: 1, Name: "toss"}}}

	google := &fakeCollector{source: consts.SourceGooglePlay}
	apple := &fakeCollector{source: consts.SourceAppStore}
	svc := NewCollectService(reviewRepo, analysisRepo, serviceRepo, []collector.Collector{google, apple})

	_, err := svc.Collect(context.Background(), &dto.CollectionRequestDTO{
		ServiceID: "toss",
		Sources:   []string{consts.SourceAppStore},
	})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if google.calls != 0 {
		t.Fatalf("google collector must not run: calls=%d", google.calls)
	}
	if apple.calls != 1 {
		t.Fatalf("apple collector calls: want=1 got=%d", apple.calls)
	}
}

func TestCollectSkipsSourceWithoutCollector(t *testing.T) {
	reviewRepo := repository.NewMemoryReviewRepo()
	analysisRepo := repository.NewMemoryAnalysisRepo()
	serviceRepo := &fakeServiceRepo{profiles: []*model.ServiceProfile{{ID: 1, Name: "toss"}}}

	google := &fakeCollector{source: consts.SourceGooglePlay, reviews: []*model.Review{
		collectedReview("u1", consts.SourceGooglePlay, "잘 돼요"),
	}}
	svc := NewCollectService(reviewRepo, analysisRepo, serviceRepo, []collector.Collector{google})

	// naver_cafe is a valid source but no collector is registered for it
	result, err := svc.Collect(context.Background(), &dto.CollectionRequestDTO{
		ServiceID: "toss",
		Sources:   []string{consts.SourceGooglePlay, consts.SourceNaverCafe},
	})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if google.calls != 1 {
		t.Fatalf("registered collector calls: want=1 got=%d", google.calls)
	}
	if result.Collected != 1 {
		t.Fatalf("collected: want=1 got=%d", result.Collected)
	}
	if len(result.Failed) != 1 || result.Failed[0] != consts.SourceNaverCafe {
		t.Fatalf("unregistered source must be reported failed: got=%v", result.Failed)
	}
}

func TestCollectThreadsTargetCount(t *testing.T) {
	reviewRepo := repository.NewMemoryReviewRepo()
	analysisRepo := repository.NewMemoryAnalysisRepo()
	serviceRepo := &fakeServiceRepo{profiles: []*model.ServiceProfile{{ID: 1, Name: "toss"}}}

	google := &fakeCollector{source: consts.SourceGooglePlay}
	svc := NewCollectService(reviewRepo, analysisRepo, serviceRepo, []collector.Collector{google})

	_, err := svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "toss", Count: 50})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if google.gotCount != 50 {
		t.Fatalf("target count: want=50 got=%d", google.gotCount)
	}

	_, err = svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "toss", Count: -1})
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("negative count: want=ErrParamInvalid got=%v", err)
	}
}

func TestCollectUnknownService(t *testing.T) {
	svc := NewCollectService(repository.NewMemoryReviewRepo(), repository.NewMemoryAnalysisRepo(),
		&fakeServiceRepo{}, nil)

	_, err := svc.Collect(context.Background(), &dto.CollectionRequestDTO{ServiceID: "ghost"})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("want=ErrServiceNotFound got=%v", err)
	}
}
