package service

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/model"
	"Conexus/internal/pkg/consts"
	mongodb "Conexus/internal/pkg/mongo"
	"Conexus/internal/pkg/netvalue"
	"Conexus/internal/pkg/util"
	"Conexus/internal/repository"
	"context"
	goerrors "errors"
	log "log/slog"
	"math"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const inviteURLAttempts = 3

// ClickMeta carries request metadata recorded with a tracked click.
type ClickMeta struct {
	UserAgent string
	IPAddress string
}

type InviteService interface {
	CreateInvite(ctx context.Context, userID uint64, name string) (*model.Invite, error)
	GetInvitesByUser(ctx context.Context, userID uint64, page, limit int) ([]*model.Invite, int64, error)
	TrackInviteClick(ctx context.Context, inviteID uint64, meta ClickMeta) error
	GetInviteAnalytics(ctx context.Context, inviteID uint64, startDate, endDate time.Time) (*dto.InviteAnalyticsDTO, error)
}

type InviteServiceImpl struct {
	inviteRepo       repository.InviteRepo
	inviteMetricRepo repository.InviteMetricRepo
	userRepo         repository.UserRepo
	activityRepo     repository.UserActivityRepo
	clickEventRepo   mongodb.ClickEventRepo
	conversions      ConversionEstimator
}

func NewInviteService(
	inviteRepo repository.InviteRepo,
	inviteMetricRepo repository.InviteMetricRepo,
	userRepo repository.UserRepo,
	activityRepo repository.UserActivityRepo,
	clickEventRepo mongodb.ClickEventRepo,
	conversions ConversionEstimator,
) InviteService {
	return &InviteServiceImpl{
		inviteRepo:       inviteRepo,
		inviteMetricRepo: inviteMetricRepo,
		userRepo:         userRepo,
		activityRepo:     activityRepo,
		clickEventRepo:   clickEventRepo,
		conversions:      conversions,
	}
}

// CreateInvite generates a unique trackable URL. The unique index on the url
// column is the final guard; generation retries a few times on collision.
func (s *InviteServiceImpl) CreateInvite(ctx context.Context, userID uint64, name string) (*model.Invite, error) {
	if name == "" {
		return nil, ErrParamInvalid
	}

	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	var invite *model.Invite
	for attempt := 0; attempt < inviteURLAttempts; attempt++ {
		token, err := util.GenerateInviteToken()
		if err != nil {
			return nil, err
		}

		invite = &model.Invite{
			UserID:    userID,
			Name:      name,
			URL:       consts.InviteBasePath + token,
			CreatedAt: time.Now(),
		}

		err = s.inviteRepo.CreateInvite(ctx, invite)
		if err == nil {
			break
		}
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			invite = nil
			continue
		}
		return nil, err
	}
	if invite == nil {
		return nil, ErrInviteURLExists
	}

	today := getMidnight(time.Now())
	if err = s.activityRepo.IncrementActivity(ctx, userID, today, repository.ActivityInviteSent); err != nil {
		log.WarnContext(ctx, "failed to record invite activity", "user_id", userID, "err", err)
	}

	return invite, nil
}

func (s *InviteServiceImpl) GetInvitesByUser(ctx context.Context, userID uint64, page, limit int) ([]*model.Invite, int64, error) {
	page, limit = NormalizePagination(page, limit)
	offset := (page - 1) * limit

	invites, err := s.inviteRepo.GetInvitesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.inviteRepo.GetInviteCount(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return invites, total, nil
}

// TrackInviteClick increments click_count atomically in SQL. Every failure
// is wrapped under the stable tracking message so callers can tell tracking
// failures apart from arbitrary store errors; nothing is swallowed.
func (s *InviteServiceImpl) TrackInviteClick(ctx context.Context, inviteID uint64, meta ClickMeta) error {
	rows, err := s.inviteRepo.IncrementClickCount(ctx, inviteID)
	if err != nil {
		return errors.Wrap(err, TrackInviteFailedMsg)
	}
	if rows == 0 {
		return errors.Wrap(ErrInviteNotFound, TrackInviteFailedMsg)
	}

	// Raw event log feeds the nightly per-day aggregation; losing one event
	// never fails the tracked click.
	event := &mongodb.ClickEvent{
		InviteID:  inviteID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		ClickedAt: time.Now(),
	}
	go func() {
		if err := s.clickEventRepo.SaveClickEvent(context.Background(), event); err != nil {
			log.Warn("failed to save invite click event", "invite_id", inviteID, "err", err)
		}
	}()

	return nil
}

func (s *InviteServiceImpl) GetInviteAnalytics(ctx context.Context, inviteID uint64, startDate, endDate time.Time) (*dto.InviteAnalyticsDTO, error) {
	if inviteID == 0 || startDate.IsZero() || endDate.IsZero() {
		return nil, ErrParamInvalid
	}
	if startDate.After(endDate) {
		return nil, ErrDateRangeInvalid
	}

	invite, err := s.inviteRepo.GetInviteByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}

	days := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))
	if days < 1 {
		days = 1
	}

	totalClicks := int64(invite.ClickCount)
	conversions := s.conversions.EstimateConversions(ctx, invite)
	conversionRate := 0.0
	if totalClicks > 0 {
		conversionRate = netvalue.Round2(float64(conversions) / float64(totalClicks))
	}

	metrics, err := s.inviteMetricRepo.GetMetricsBetween(ctx, inviteID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	clicksByDay := make([]dto.DailyClicksDTO, 0, len(metrics))
	for _, m := range metrics {
		clicksByDay = append(clicksByDay, dto.DailyClicksDTO{
			Date:   m.MetricDate.Format(time.DateOnly),
			Clicks: m.ClickCount,
		})
	}

	return &dto.InviteAnalyticsDTO{
		InviteID:       inviteID,
		TotalClicks:    totalClicks,
		ClicksPerDay:   netvalue.Round2(float64(totalClicks) / float64(days)),
		ConversionRate: conversionRate,
		ClicksByDay:    clicksByDay,
	}, nil
}
