package wire

import (
	"Commento/internal/api"
	"Commento/internal/api/handler"
	"Commento/internal/job"
	"Commento/internal/pkg/analyzer"
	"Commento/internal/pkg/collector"
	"Commento/internal/pkg/cron"
	"Commento/internal/pkg/llm"
	"Commento/internal/pkg/sentiment"
	"Commento/internal/repository"
	"Commento/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the entrypoint runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, llmClient *llm.Client) (*ApplicationContainer, error) {
	reviewRepo := repository.NewReviewRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	cache := sentiment.NewRedisCache(7 * 24 * time.Hour)
	classifier := sentiment.NewClassifier(cache, llmClient)
	insightAgg := analyzer.NewInsightAggregator(llmClient)
	keywordAgg := analyzer.NewKeywordAggregator(llmClient)
	networkAgg := analyzer.NewNetworkAggregator(llmClient)

	collectors := []collector.Collector{
		collector.NewGooglePlayCollector(),
		collector.NewAppStoreCollector(),
		collector.NewNaverBlogCollector(),
		collector.NewNaverCafeCollector(),
	}

	locker := service.NewRedisLocker(10 * time.Minute)

	reviewService := service.NewReviewService(reviewRepo)
	collectService := service.NewCollectService(reviewRepo, analysisRepo, serviceRepo, collectors)
	analysisService := service.NewAnalysisService(reviewRepo, analysisRepo, serviceRepo, classifier, insightAgg, keywordAgg, networkAgg, locker)
	profileService := service.NewServiceProfileService(serviceRepo)

	handlers := &api.HandlersGroup{
		ReviewHandler:   handler.NewReviewHandler(reviewService),
		AnalysisHandler: handler.NewAnalysisHandler(analysisService, collectService),
		ServiceHandler:  handler.NewServiceHandler(profileService),
	}

	router := api.SetupRouter(handlers)

	collectJob := job.NewCollectJob(collectService)
	cronMgr := cron.NewCronManager(collectJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
