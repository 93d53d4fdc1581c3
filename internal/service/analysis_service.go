package service

import (
	"Commento/internal/api/dto"
	"Commento/internal/model"
	"Commento/internal/pkg/analyzer"
	"Commento/internal/pkg/consts"
	"Commento/internal/pkg/sentiment"
	"Commento/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type AnalysisService interface {
	RunAnalysis(ctx context.Context, req *dto.AnalysisRequestDTO) (*dto.AnalysisResultDTO, error)
	ListInsights(ctx context.Context, serviceID string) ([]*dto.InsightDTO, error)
	ListKeywords(ctx context.Context, serviceID string) (*dto.KeywordTableDTO, error)
	KeywordNetwork(ctx context.Context, serviceID string) (*dto.NetworkDTO, error)
	NegativeKeywordNetwork(ctx context.Context, serviceID string) (*dto.NetworkDTO, error)
}

type analysisServiceImpl struct {
	reviewRepo   repository.ReviewRepo
	analysisRepo repository.AnalysisRepo
	serviceRepo  repository.ServiceRepo
	classifier   *sentiment.Classifier
	insightAgg   *analyzer.InsightAggregator
	keywordAgg   *analyzer.KeywordAggregator
	networkAgg   *analyzer.NetworkAggregator
	locker       Locker
}

func NewAnalysisService(
	reviewRepo repository.ReviewRepo,
	analysisRepo repository.AnalysisRepo,
	serviceRepo repository.ServiceRepo,
	classifier *sentiment.Classifier,
	insightAgg *analyzer.InsightAggregator,
	keywordAgg *analyzer.KeywordAggregator,
	networkAgg *analyzer.NetworkAggregator,
	locker Locker,
) AnalysisService {
	return &analysisServiceImpl{
		reviewRepo:   reviewRepo,
		analysisRepo: analysisRepo,
		serviceRepo:  serviceRepo,
		classifier:   classifier,
		insightAgg:   insightAgg,
		keywordAgg:   keywordAgg,
		networkAgg:   networkAgg,
		locker:       locker,
	}
}

// RunAnalysis classifies every still-unlabeled review in the filtered
// subset, then rebuilds the service's insights and keyword tables from the
// full subset. Derived rows are replaced atomically per service.
func (s *analysisServiceImpl) RunAnalysis(ctx context.Context, req *dto.AnalysisRequestDTO) (*dto.AnalysisResultDTO, error) {
	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
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

	lockKey := consts.AnalysisLockKey + serviceID
	token, ok, err := s.locker.Acquire(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAnalysisInProgress
	}
	defer s.locker.Release(ctx, lockKey, token)

	reviews, err := s.reviewRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNothingToAnalyze
	}

	classified, err := s.classifyPending(ctx, reviews)
	if err != nil {
		return nil, err
	}

	var insights []*model.Insight
	var keywords []*model.KeywordFrequency
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		insights = s.insightAgg.Generate(egCtx, serviceID, reviews)
		return nil
	})
	eg.Go(func() error {
		keywords = s.keywordAgg.Generate(egCtx, serviceID, reviews)
		return nil
	})
	_ = eg.Wait()

	if err = s.analysisRepo.Replace(ctx, serviceID, insights, keywords); err != nil {
		return nil, err
	}

	result := &dto.AnalysisResultDTO{
		ServiceID:  serviceID,
		Analyzed:   len(reviews),
		Classified: classified,
		Insights:   len(insights),
		Keywords:   len(keywords),
	}
	for _, review := range reviews {
		switch review.Sentiment {
		case consts.SentimentPositive:
			result.Positive++
		case consts.SentimentNegative:
			result.Negative++
		case consts.SentimentNeutral:
			result.Neutral++
		}
	}

	log.InfoContext(ctx, "analysis finished",
		"service_id", serviceID,
		"analyzed", result.Analyzed,
		"classified", result.Classified,
		"insights", result.Insights,
		"keywords", result.Keywords)
	return result, nil
}

// classifyPending labels the reviews still marked analyzing and persists the
// labels. The in-memory slice is updated too so aggregation sees the fresh
// sentiments.
func (s *analysisServiceImpl) classifyPending(ctx context.Context, reviews []*model.Review) (int, error) {
	var pending []*model.Review
	var texts []string
	for _, review := range reviews {
		if review.Sentiment == consts.SentimentAnalyzing {
			pending = append(pending, review)
			texts = append(texts, review.Content)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	labels := s.classifier.ClassifyBatch(ctx, texts)
	updates := make(map[uint64]string, len(pending))
	for i, review := range pending {
		review.Sentiment = labels[i]
		updates[review.ID] = labels[i]
	}

	if err := s.reviewRepo.UpdateSentiments(ctx, updates); err != nil {
		return 0, err
	}
	return len(pending), nil
}

func (s *analysisServiceImpl) ListInsights(ctx context.Context, serviceID string) ([]*dto.InsightDTO, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrParamInvalid
	}

	insights, err := s.analysisRepo.ListInsights(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.InsightDTO, len(insights))
	for i, insight := range insights {
		item := &dto.InsightDTO{}
		if err = copier.Copy(item, insight); err != nil {
			return nil, err
		}
		item.CreatedAt = insight.CreatedAt.Format(time.RFC3339)
		out[i] = item
	}
	return out, nil
}

// KeywordNetwork builds the full-corpus co-occurrence graph for one service
// on demand. ErrNotEnoughData when the stored reviews cannot support it.
func (s *analysisServiceImpl) KeywordNetwork(ctx context.Context, serviceID string) (*dto.NetworkDTO, error) {
	reviews, err := s.networkReviews(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	network, err := s.networkAgg.Generate(ctx, reviews)
	if err != nil {
		if errors.Is(err, analyzer.ErrSparseData) {
			return nil, ErrNotEnoughData
		}
		return nil, err
	}
	return toNetworkDTO(serviceID, network), nil
}

// NegativeKeywordNetwork builds the complaint-focused graph. A service with
// no negative reviews yields an empty graph, not an error.
func (s *analysisServiceImpl) NegativeKeywordNetwork(ctx context.Context, serviceID string) (*dto.NetworkDTO, error) {
	reviews, err := s.networkReviews(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	network, err := s.networkAgg.GenerateNegative(ctx, reviews)
	if err != nil {
		return nil, err
	}
	return toNetworkDTO(serviceID, network), nil
}

func (s *analysisServiceImpl) networkReviews(ctx context.Context, serviceID string) ([]*model.Review, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrParamInvalid
	}
	return s.reviewRepo.ListAll(ctx, &repository.ReviewFilter{ServiceID: serviceID})
}

func toNetworkDTO(serviceID string, network *analyzer.Network) *dto.NetworkDTO {
	out := &dto.NetworkDTO{
		ServiceID: serviceID,
		Nodes:     make([]*dto.NetworkNodeDTO, len(network.Nodes)),
		Edges:     make([]*dto.NetworkEdgeDTO, len(network.Edges)),
		Clusters:  make([]*dto.NetworkClusterDTO, len(network.Clusters)),
	}
	for i, n := range network.Nodes {
		out.Nodes[i] = &dto.NetworkNodeDTO{ID: n.ID, Frequency: n.Frequency, Cluster: n.Cluster}
	}
	for i, e := range network.Edges {
		out.Edges[i] = &dto.NetworkEdgeDTO{Source: e.Source, Target: e.Target, Weight: e.Weight, PMI: e.PMI}
	}
	for i, c := range network.Clusters {
		out.Clusters[i] = &dto.NetworkClusterDTO{ID: c.ID, Name: c.Name, Keywords: c.Keywords}
	}
	return out
}

func (s *analysisServiceImpl) ListKeywords(ctx context.Context, serviceID string) (*dto.KeywordTableDTO, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrParamInvalid
	}

	table := &dto.KeywordTableDTO{ServiceID: serviceID}
	for _, polarity := range []string{consts.SentimentPositive, consts.SentimentNegative} {
		rows, err := s.analysisRepo.ListKeywords(ctx, serviceID, polarity)
		if err != nil {
			return nil, err
		}
		items := make([]*dto.KeywordDTO, len(rows))
		for i, row := range rows {
			items[i] = &dto.KeywordDTO{
				Word:      row.Word,
				Frequency: row.Frequency,
				Sentiment: row.Sentiment,
			}
		}
		if polarity == consts.SentimentPositive {
			table.Positive = items
		} else {
			table.Negative = items
		}
	}
	return table, nil
}
