package api

import (
	"Commento/internal/api/middleware"
	"Commento/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		reviewGroup := apiGroup.Group("/reviews")
		{
			reviewGroup.GET("", group.ReviewHandler.ListReviews)
			reviewGroup.GET("/stats", group.ReviewHandler.GetStats)
		}

		apiGroup.GET("/insights", group.AnalysisHandler.ListInsights)
		apiGroup.GET("/keywords", group.AnalysisHandler.ListKeywords)
		apiGroup.POST("/analysis", group.AnalysisHandler.RunAnalysis)
		apiGroup.POST("/collections", group.AnalysisHandler.RunCollection)

		networkGroup := apiGroup.Group("/networks")
		{
			networkGroup.GET("/keywords", group.AnalysisHandler.KeywordNetwork)
			networkGroup.GET("/negatives", group.AnalysisHandler.NegativeKeywordNetwork)
		}

		serviceGroup := apiGroup.Group("/services")
		{
			serviceGroup.GET("", group.ServiceHandler.ListServices)
			serviceGroup.POST("", group.ServiceHandler.CreateService)
		}
	}

	return r
}
