package handler

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/model"
	"Conexus/internal/pkg/response"
	"Conexus/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type NetworkMetricHandler struct {
	metricSvc service.NetworkMetricService
}

func NewNetworkMetricHandler(metricSvc service.NetworkMetricService) *NetworkMetricHandler {
	return &NetworkMetricHandler{metricSvc: metricSvc}
}

func (s *NetworkMetricHandler) GetMetrics7Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	metrics, err := s.metricSvc.GetNetworkMetricsBy7Days(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, buildTrend(userID, 7, metrics))
}

func (s *NetworkMetricHandler) GetMetrics30Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	metrics, err := s.metricSvc.GetNetworkMetricsBy30Days(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, buildTrend(userID, 30, metrics))
}

func buildTrend(userID uint64, days int, metrics []*model.NetworkMetric) *dto.NetworkTrendDTO {
	list := make([]*dto.NetworkMetricDTO, 0, len(metrics))
	for _, m := range metrics {
		list = append(list, &dto.NetworkMetricDTO{
			Date: m.MetricDate.Format(time.DateOnly),
			Size: m.NetworkSize,
		})
	}
	return &dto.NetworkTrendDTO{
		UserID: userID,
		Days:   days,
		List:   list,
	}
}
