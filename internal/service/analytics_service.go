package service

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/pkg/consts"
	"Conexus/internal/pkg/netvalue"
	"Conexus/internal/repository"
	"context"
	"math"
	"strconv"
	"strings"
	"time"
)

type AnalyticsService interface {
	CalculateNetworkGrowth(ctx context.Context, userID uint64, startDate, endDate time.Time) (*dto.NetworkGrowthDTO, error)
	GetUserEngagement(ctx context.Context, userID uint64, period string) (*dto.UserEngagementDTO, error)
	GetInviteEffectiveness(ctx context.Context, userID uint64) (*dto.InviteEffectivenessDTO, error)
	GetNetworkValue(ctx context.Context, userID uint64) (float64, error)
}

type AnalyticsServiceImpl struct {
	networkService NetworkService
	metricRepo     repository.NetworkMetricRepo
	activityRepo   repository.UserActivityRepo
	inviteRepo     repository.InviteRepo
	conversions    ConversionEstimator
}

func NewAnalyticsService(
	networkService NetworkService,
	metricRepo repository.NetworkMetricRepo,
	activityRepo repository.UserActivityRepo,
	inviteRepo repository.InviteRepo,
	conversions ConversionEstimator,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		networkService: networkService,
		metricRepo:     metricRepo,
		activityRepo:   activityRepo,
		inviteRepo:     inviteRepo,
		conversions:    conversions,
	}
}

// CalculateNetworkGrowth compares the network at two points in time using the
// daily snapshots. A missing start snapshot means the network did not exist
// yet, so the start size is zero; the end falls back to the live count when
// the range reaches into today.
func (s *AnalyticsServiceImpl) CalculateNetworkGrowth(ctx context.Context, userID uint64, startDate, endDate time.Time) (*dto.NetworkGrowthDTO, error) {
	if userID == 0 || startDate.IsZero() || endDate.IsZero() {
		return nil, ErrParamInvalid
	}
	if startDate.After(endDate) {
		return nil, ErrDateRangeInvalid
	}

	var startSize int64
	startMetric, err := s.metricRepo.GetLatestMetricBefore(ctx, userID, startDate)
	if err != nil {
		return nil, err
	}
	if startMetric != nil {
		startSize = int64(startMetric.NetworkSize)
	}

	var endSize int64
	endMetric, err := s.metricRepo.GetLatestMetricBefore(ctx, userID, endDate)
	if err != nil {
		return nil, err
	}
	if endMetric != nil && !endMetric.MetricDate.Before(startDate) {
		endSize = int64(endMetric.NetworkSize)
	} else {
		endSize, err = s.networkService.GetNetworkSize(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	days := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))
	if days < 1 {
		days = 1
	}

	newConnections := endSize - startSize
	growthRate := 0.0
	if startSize > 0 {
		growthRate, _ = netvalue.GrowthRate(float64(startSize), float64(endSize))
	}

	startValue := netvalue.Calculate(startSize)
	endValue := netvalue.Calculate(endSize)

	return &dto.NetworkGrowthDTO{
		StartSize:           startSize,
		EndSize:             endSize,
		NewConnections:      newConnections,
		GrowthRate:          growthRate,
		AverageGrowthPerDay: netvalue.Round2(float64(newConnections) / float64(days)),
		StartValue:          startValue,
		EndValue:            endValue,
		NetworkValueGrowth:  netvalue.Round2(endValue - startValue),
		Days:                days,
	}, nil
}

// Engagement score weights, in order: login frequency, connection
// interactions, invites sent, profile updates.
const (
	engagementLoginWeight       = 0.3
	engagementInteractionWeight = 0.4
	engagementInviteWeight      = 0.2
	engagementProfileWeight     = 0.1
)

// GetUserEngagement summarises activity over a period like "7d" or "30d".
func (s *AnalyticsServiceImpl) GetUserEngagement(ctx context.Context, userID uint64, period string) (*dto.UserEngagementDTO, error) {
	if userID == 0 {
		return nil, ErrParamInvalid
	}

	days, err := parsePeriodDays(period)
	if err != nil {
		return nil, err
	}

	since := getMidnight(time.Now()).AddDate(0, 0, -days)
	summary, err := s.activityRepo.GetActivitySummary(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	loginFrequency := netvalue.Round2(float64(summary.LoginCount) / float64(days))
	score := engagementLoginWeight*loginFrequency +
		engagementInteractionWeight*float64(summary.ConnectionInteractions) +
		engagementInviteWeight*float64(summary.InvitesSent) +
		engagementProfileWeight*float64(summary.ProfileUpdates)

	return &dto.UserEngagementDTO{
		Period:                 period,
		LoginCount:             summary.LoginCount,
		LoginFrequency:         loginFrequency,
		ConnectionInteractions: summary.ConnectionInteractions,
		InvitesSent:            summary.InvitesSent,
		ProfileUpdates:         summary.ProfileUpdates,
		EngagementScore:        netvalue.Round2(score),
	}, nil
}

// Invite effectiveness weights: click-through rate and conversion rate.
const (
	effectivenessCTRWeight  = 0.4
	effectivenessConvWeight = 0.6
)

// GetInviteEffectiveness aggregates performance across all of a user's
// invites. Zero denominators yield zero rates, never an error.
func (s *AnalyticsServiceImpl) GetInviteEffectiveness(ctx context.Context, userID uint64) (*dto.InviteEffectivenessDTO, error) {
	if userID == 0 {
		return nil, ErrParamInvalid
	}

	invites, err := s.inviteRepo.GetInvitesByUser(ctx, userID, consts.AnalyticsPageCap, 0)
	if err != nil {
		return nil, err
	}

	var totalClicks, totalConversions int64
	for _, invite := range invites {
		totalClicks += int64(invite.ClickCount)
		totalConversions += s.conversions.EstimateConversions(ctx, invite)
	}

	totalInvites := int64(len(invites))
	clickThroughRate := 0.0
	if totalInvites > 0 {
		clickThroughRate = netvalue.Round2(float64(totalClicks) / float64(totalInvites))
	}
	conversionRate := 0.0
	if totalClicks > 0 {
		conversionRate = netvalue.Round2(float64(totalConversions) / float64(totalClicks))
	}

	overall := effectivenessCTRWeight*clickThroughRate + effectivenessConvWeight*conversionRate

	return &dto.InviteEffectivenessDTO{
		TotalInvites:         totalInvites,
		TotalClicks:          totalClicks,
		TotalConversions:     totalConversions,
		ClickThroughRate:     clickThroughRate,
		ConversionRate:       conversionRate,
		OverallEffectiveness: netvalue.Round2(overall),
	}, nil
}

func (s *AnalyticsServiceImpl) GetNetworkValue(ctx context.Context, userID uint64) (float64, error) {
	if userID == 0 {
		return 0, ErrParamInvalid
	}
	return s.networkService.CalculateNetworkValue(ctx, userID)
}

// parsePeriodDays accepts "<N>d", N >= 1.
func parsePeriodDays(period string) (int, error) {
	if !strings.HasSuffix(period, "d") {
		return 0, ErrPeriodFormat
	}
	days, err := strconv.Atoi(strings.TrimSuffix(period, "d"))
	if err != nil || days < 1 {
		return 0, ErrPeriodFormat
	}
	return days, nil
}
