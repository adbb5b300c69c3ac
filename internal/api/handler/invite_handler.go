package handler

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/pkg/response"
	"Conexus/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type InviteHandler struct {
	inviteSvc service.InviteService
}

func NewInviteHandler(inviteSvc service.InviteService) *InviteHandler {
	return &InviteHandler{inviteSvc: inviteSvc}
}

func (s *InviteHandler) CreateInvite(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreateInviteDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	invite, err := s.inviteSvc.CreateInvite(c.Request.Context(), userID, createDTO.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	inviteDTO := &dto.InviteDTO{}
	if err = copier.Copy(inviteDTO, invite); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, inviteDTO)
}

func (s *InviteHandler) GetInvites(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, limit := getPagination(c)

	invites, total, err := s.inviteSvc.GetInvitesByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	inviteDTOs := make([]*dto.InviteDTO, 0, len(invites))
	if err = copier.Copy(&inviteDTOs, &invites); err != nil {
		response.Error(c, err)
		return
	}
	page, limit = service.NormalizePagination(page, limit)
	response.Success(c, dto.NewPageResult(inviteDTOs, total, page, limit))
}

// TrackClick is public: anyone following an invite link lands here.
func (s *InviteHandler) TrackClick(c *gin.Context) {
	inviteID, err := parseIDParam(c, "invite_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.inviteSvc.TrackInviteClick(c.Request.Context(), inviteID, service.ClickMeta{
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *InviteHandler) GetInviteAnalytics(c *gin.Context) {
	inviteID, err := parseIDParam(c, "invite_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var rangeDTO dto.DateRangeDTO
	if err = c.ShouldBindQuery(&rangeDTO); err != nil {
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
	analytics, err := s.inviteSvc.GetInviteAnalytics(c.Request.Context(), inviteID, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}
