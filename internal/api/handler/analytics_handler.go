package handler

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/pkg/response"
	"Conexus/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

func (s *AnalyticsHandler) GetNetworkGrowth(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var rangeDTO dto.DateRangeDTO
	if err := c.ShouldBindQuery(&rangeDTO); err != nil {
		response.Error(c, err)
		return
	}
	startDate, err := time.Parse(time.DateOnly, rangeDTO.StartDate)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	endDate, err := time.Parse(time.DateOnly, rangeDTO.EndDate)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	growth, err := s.analyticsSvc.CalculateNetworkGrowth(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, growth)
}

func (s *AnalyticsHandler) GetUserEngagement(c *gin.Context) {
	userID := c.GetUint64("user_id")
	period := c.DefaultQuery("period", "30d")

	engagement, err := s.analyticsSvc.GetUserEngagement(c.Request.Context(), userID, period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, engagement)
}

func (s *AnalyticsHandler) GetInviteEffectiveness(c *gin.Context) {
	userID := c.GetUint64("user_id")
	effectiveness, err := s.analyticsSvc.GetInviteEffectiveness(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, effectiveness)
}

func (s *AnalyticsHandler) GetNetworkValue(c *gin.Context) {
	userID := c.GetUint64("user_id")
	value, err := s.analyticsSvc.GetNetworkValue(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]float64{"network_value": value})
}
