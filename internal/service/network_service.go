package service

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/model"
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/consts"
	"Conexus/internal/pkg/netvalue"
	"Conexus/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type NetworkService interface {
	CreateConnection(ctx context.Context, userID, connectedUserID uint64) (*model.Connection, error)
	RemoveConnection(ctx context.Context, userID, connectedUserID uint64) error
	GetNetworkForUser(ctx context.Context, userID uint64, page, limit int) ([]*model.Connection, int64, error)
	GetNetworkSize(ctx context.Context, userID uint64) (int64, error)
	CalculateNetworkValue(ctx context.Context, userID uint64) (float64, error)
	GetNetworkAnalytics(ctx context.Context, userID uint64) (*dto.NetworkAnalyticsDTO, error)
}

type NetworkServiceImpl struct {
	connectionRepo repository.ConnectionRepo
	userRepo       repository.UserRepo
	activityRepo   repository.UserActivityRepo
	cache          cache.Cache
	priorSize      PriorSizeEstimator
	classifier     IndustryClassifier
}

func NewNetworkService(
	connectionRepo repository.ConnectionRepo,
	userRepo repository.UserRepo,
	activityRepo repository.UserActivityRepo,
	c cache.Cache,
	priorSize PriorSizeEstimator,
	classifier IndustryClassifier,
) NetworkService {
	return &NetworkServiceImpl{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		activityRepo:   activityRepo,
		cache:          c,
		priorSize:      priorSize,
		classifier:     classifier,
	}
}

// CreateConnection establishes the mutual relationship: both directional
// rows are written in one transaction. The store's unique index is the
// authoritative conflict signal under concurrent creates.
func (s *NetworkServiceImpl) CreateConnection(ctx context.Context, userID, connectedUserID uint64) (*model.Connection, error) {
	if userID == connectedUserID {
		return nil, ErrConnectionSelf
	}

	for _, id := range []uint64{userID, connectedUserID} {
		exists, err := s.userRepo.ExistsByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrUserNotFound
		}
	}

	existing, err := s.connectionRepo.GetConnectionBetween(ctx, userID, connectedUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConnectionExists
	}

	now := time.Now()
	forward := &model.Connection{
		UserID:          userID,
		ConnectedUserID: connectedUserID,
		Value:           netvalue.UnitValue,
		ConnectedAt:     now,
	}
	reverse := &model.Connection{
		UserID:          connectedUserID,
		ConnectedUserID: userID,
		Value:           netvalue.UnitValue,
		ConnectedAt:     now,
	}

	if err = s.connectionRepo.CreateConnectionPair(ctx, forward, reverse); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConnectionExists
		}
		return nil, err
	}

	s.afterNetworkChange(ctx, userID, connectedUserID, true)
	return forward, nil
}

// RemoveConnection deletes both directions as one logical operation.
func (s *NetworkServiceImpl) RemoveConnection(ctx context.Context, userID, connectedUserID uint64) error {
	existing, err := s.connectionRepo.GetConnectionBetween(ctx, userID, connectedUserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrConnectionNotFound
	}

	deleted, err := s.connectionRepo.DeleteConnectionPair(ctx, userID, connectedUserID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrConnectionNotFound
	}

	s.afterNetworkChange(ctx, userID, connectedUserID, false)
	return nil
}

func (s *NetworkServiceImpl) GetNetworkForUser(ctx context.Context, userID uint64, page, limit int) ([]*model.Connection, int64, error) {
	page, limit = NormalizePagination(page, limit)
	offset := (page - 1) * limit

	connections, err := s.connectionRepo.GetConnectionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.GetNetworkSize(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return connections, total, nil
}

// GetNetworkSize counts rows where the user is either endpoint, cache-aside.
func (s *NetworkServiceImpl) GetNetworkSize(ctx context.Context, userID uint64) (int64, error) {
	key := consts.NetworkCountKey + strconv.FormatUint(userID, 10)

	valStr, err := s.cache.Get(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := s.connectionRepo.GetConnectionCount(ctx, userID)
	if err != nil {
		return 0, err
	}

	_ = s.cache.Set(ctx, key, count, time.Hour*1)
	return count, nil
}

func (s *NetworkServiceImpl) CalculateNetworkValue(ctx context.Context, userID uint64) (float64, error) {
	size, err := s.GetNetworkSize(ctx, userID)
	if err != nil {
		return 0, err
	}
	return netvalue.Calculate(size), nil
}

func (s *NetworkServiceImpl) GetNetworkAnalytics(ctx context.Context, userID uint64) (*dto.NetworkAnalyticsDTO, error) {
	size, err := s.GetNetworkSize(ctx, userID)
	if err != nil {
		return nil, err
	}

	priorSize, err := s.priorSize.EstimatePriorSize(ctx, userID, size)
	if err != nil {
		return nil, err
	}
	growthRate := 0.0
	if priorSize > 0 {
		growthRate, _ = netvalue.GrowthRate(float64(priorSize), float64(size))
	}

	distribution, err := s.classifier.Categorize(ctx, userID)
	if err != nil {
		return nil, err
	}

	connections, err := s.connectionRepo.GetConnectionsByUser(ctx, userID, consts.AnalyticsPageCap, 0)
	if err != nil {
		return nil, err
	}
	connectionDTOs := make([]*dto.ConnectionDTO, 0, len(connections))
	if err = copier.Copy(&connectionDTOs, &connections); err != nil {
		return nil, err
	}

	return &dto.NetworkAnalyticsDTO{
		NetworkSize:          size,
		NetworkValue:         netvalue.Calculate(size),
		GrowthRate:           growthRate,
		IndustryDistribution: distribution,
		Connections:          connectionDTOs,
	}, nil
}

// afterNetworkChange invalidates count caches, marks both users dirty for
// the nightly snapshot and records the interaction. All best-effort.
func (s *NetworkServiceImpl) afterNetworkChange(ctx context.Context, userID, connectedUserID uint64, interaction bool) {
	userKey := consts.NetworkCountKey + strconv.FormatUint(userID, 10)
	connectedKey := consts.NetworkCountKey + strconv.FormatUint(connectedUserID, 10)
	if err := s.cache.Delete(ctx, userKey, connectedKey); err != nil {
		log.WarnContext(ctx, "failed to invalidate network count cache", "err", err)
	}

	if err := s.cache.SAdd(ctx, consts.NetworkDirtyKey, userID, connectedUserID); err != nil {
		log.WarnContext(ctx, "failed to mark network dirty set", "err", err)
	}

	if interaction {
		today := getMidnight(time.Now())
		for _, id := range []uint64{userID, connectedUserID} {
			if err := s.activityRepo.IncrementActivity(ctx, id, today, repository.ActivityConnectionInteraction); err != nil {
				log.WarnContext(ctx, "failed to record connection interaction", "user_id", id, "err", err)
			}
		}
	}
}

// NormalizePagination applies the request contract: page >= 1 and
// limit in [1, 100], defaulting to 1/10.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = consts.DefaultPage
	}
	if limit < 1 {
		limit = consts.DefaultLimit
	}
	if limit > consts.MaxLimit {
		limit = consts.MaxLimit
	}
	return page, limit
}
