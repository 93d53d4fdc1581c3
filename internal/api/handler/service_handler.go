package handler

import (
	"Commento/internal/api/dto"
	"Commento/internal/pkg/response"
	"Commento/internal/service"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	profileSvc service.ServiceProfileService
}

func NewServiceHandler(profileSvc service.ServiceProfileService) *ServiceHandler {
	return &ServiceHandler{profileSvc: profileSvc}
}

func (s *ServiceHandler) ListServices(c *gin.Context) {
	services, err := s.profileSvc.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, services)
}

func (s *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.ServiceBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	created, err := s.profileSvc.CreateService(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, created)
}
