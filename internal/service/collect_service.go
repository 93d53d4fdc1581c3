package service

import (
	"Commento/internal/api/dto"
	"Commento/internal/pkg/collector"
	"Commento/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

type CollectService interface {
	Collect(ctx context.Context, req *dto.CollectionRequestDTO) (*dto.CollectionResultDTO, error)
	CollectAll(ctx context.Context) error
}

type collectServiceImpl struct {
	reviewRepo   repository.ReviewRepo
	analysisRepo repository.AnalysisRepo
	serviceRepo  repository.ServiceRepo
	collectors   map[string]collector.Collector
}

func NewCollectService(
	reviewRepo repository.ReviewRepo,
	analysisRepo repository.AnalysisRepo,
	serviceRepo repository.ServiceRepo,
	collectors []collector.Collector,
) CollectService {
	bySource := make(map[string]collector.Collector, len(collectors))
	for _, c := range collectors {
		bySource[c.Source()] = c
	}
	return &collectServiceImpl{
		reviewRepo:   reviewRepo,
		analysisRepo: analysisRepo,
		serviceRepo:  serviceRepo,
		collectors:   bySource,
	}
}

// Collect pulls reviews for one service from the requested channels, storing
// each row at most once. New rows invalidate the service's derived insight
// and keyword tables, which get rebuilt on the next analysis run.
func (s *collectServiceImpl) Collect(ctx context.Context, req *dto.CollectionRequestDTO) (*dto.CollectionResultDTO, error) {
	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" || req.Count < 0 {
		return nil, ErrParamInvalid
	}

	profile, err := s.serviceRepo.GetByName(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrServiceNotFound
	}

	filter, err := buildReviewFilter(serviceID, req.Sources, req.DateFrom, req.DateTo, "")
	if err != nil {
		return nil, err
	}

	targets := make([]collector.Collector, 0, len(s.collectors))
	var unregistered []string
	if len(filter.Sources) > 0 {
		for _, src := range filter.Sources {
			target, ok := s.collectors[src]
			if !ok {
				log.WarnContext(ctx, "no collector registered for source", "source", src, "service_id", serviceID)
				unregistered = append(unregistered, src)
				continue
			}
			targets = append(targets, target)
		}
	} else {
		for _, c := range s.collectors {
			targets = append(targets, c)
		}
		sort.Slice(targets, func(i, j int) bool {
			return targets[i].Source() < targets[j].Source()
		})
	}

	colReq := &collector.Request{
		Service:  profile,
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Count:    req.Count,
	}

	result := &dto.CollectionResultDTO{
		ServiceID: serviceID,
		PerSource: make(map[string]int, len(targets)),
		Failed:    unregistered,
	}

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	for _, target := range targets {
		eg.Go(func() error {
			reviews, err := target.Collect(egCtx, colReq)
			if err != nil {
				log.WarnContext(egCtx, "collector failed", "source", target.Source(), "service_id", serviceID, "err", err)
				mu.Lock()
				result.Failed = append(result.Failed, target.Source())
				mu.Unlock()
				return nil
			}

			stored, dupes := 0, 0
			for _, review := range reviews {
				_, created, err := s.reviewRepo.Insert(egCtx, review)
				if err != nil {
					return err
				}
				if created {
					stored++
				} else {
					dupes++
				}
			}

			mu.Lock()
			result.Collected += stored
			result.Duplicates += dupes
			result.PerSource[target.Source()] = stored
			mu.Unlock()
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(result.Failed)

	if result.Collected > 0 {
		if err = s.analysisRepo.PurgeService(ctx, serviceID); err != nil {
			log.WarnContext(ctx, "stale analysis purge failed", "service_id", serviceID, "err", err)
		}
	}

	log.InfoContext(ctx, "collection finished",
		"service_id", serviceID,
		"collected", result.Collected,
		"duplicates", result.Duplicates,
		"failed", result.Failed)
	return result, nil
}

// CollectAll runs a full collection pass over every registered service. Used
// by the scheduled job.
func (s *collectServiceImpl) CollectAll(ctx context.Context) error {
	profiles, err := s.serviceRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		if _, err := s.Collect(ctx, &dto.CollectionRequestDTO{ServiceID: profile.Name}); err != nil {
			log.ErrorContext(ctx, "scheduled collection failed", "service_id", profile.Name, "err", err)
		}
	}
	return nil
}
