package handler

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/pkg/response"
	"Conexus/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type NetworkHandler struct {
	networkSvc service.NetworkService
}

func NewNetworkHandler(networkSvc service.NetworkService) *NetworkHandler {
	return &NetworkHandler{networkSvc: networkSvc}
}

func (s *NetworkHandler) Connect(c *gin.Context) {
	userID := c.GetUint64("user_id")
	connectedID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	connection, err := s.networkSvc.CreateConnection(c.Request.Context(), userID, connectedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	connectionDTO := &dto.ConnectionDTO{}
	if err = copier.Copy(connectionDTO, connection); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, connectionDTO)
}

func (s *NetworkHandler) Disconnect(c *gin.Context) {
	userID := c.GetUint64("user_id")
	connectedID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.networkSvc.RemoveConnection(c.Request.Context(), userID, connectedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NetworkHandler) GetNetwork(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, limit := getPagination(c)

	connections, total, err := s.networkSvc.GetNetworkForUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	connectionDTOs := make([]*dto.ConnectionDTO, 0, len(connections))
	if err = copier.Copy(&connectionDTOs, &connections); err != nil {
		response.Error(c, err)
		return
	}
	page, limit = service.NormalizePagination(page, limit)
	response.Success(c, dto.NewPageResult(connectionDTOs, total, page, limit))
}

func (s *NetworkHandler) GetNetworkValue(c *gin.Context) {
	userID := c.GetUint64("user_id")
	size, err := s.networkSvc.GetNetworkSize(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	value, err := s.networkSvc.CalculateNetworkValue(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NetworkValueDTO{
		NetworkSize:  size,
		NetworkValue: value,
	})
}

func (s *NetworkHandler) GetNetworkAnalytics(c *gin.Context) {
	userID := c.GetUint64("user_id")
	analytics, err := s.networkSvc.GetNetworkAnalytics(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	idStr := c.Param(name)
	if idStr == "" {
		return 0, service.ErrParamInvalid
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

func getPagination(c *gin.Context) (int, int) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = 10
	}
	return page, limit
}
