package handler

import (
	"Commento/internal/api/dto"
	"Commento/internal/pkg/response"
	"Commento/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisSvc service.AnalysisService
	collectSvc  service.CollectService
}

func NewAnalysisHandler(analysisSvc service.AnalysisService, collectSvc service.CollectService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisSvc: analysisSvc,
		collectSvc:  collectSvc,
	}
}

func (s *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var req dto.AnalysisRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.analysisSvc.RunAnalysis(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AnalysisHandler) RunCollection(c *gin.Context) {
	var req dto.CollectionRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.collectSvc.Collect(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AnalysisHandler) ListInsights(c *gin.Context) {
	insights, err := s.analysisSvc.ListInsights(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, insights)
}

func (s *AnalysisHandler) ListKeywords(c *gin.Context) {
	keywords, err := s.analysisSvc.ListKeywords(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keywords)
}

func (s *AnalysisHandler) KeywordNetwork(c *gin.Context) {
	network, err := s.analysisSvc.KeywordNetwork(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, network)
}

func (s *AnalysisHandler) NegativeKeywordNetwork(c *gin.Context) {
	network, err := s.analysisSvc.NegativeKeywordNetwork(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, network)
}
