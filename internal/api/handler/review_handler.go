package handler

import (
	"Commento/internal/api/dto"
	"Commento/internal/pkg/response"
	"Commento/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

func (s *ReviewHandler) ListReviews(c *gin.Context) {
	var query dto.ReviewQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.reviewSvc.ListReviews(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ReviewHandler) GetStats(c *gin.Context) {
	var query dto.ReviewQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	stats, err := s.reviewSvc.GetStats(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
