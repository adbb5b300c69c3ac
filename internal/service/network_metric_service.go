package service

import (
	"Conexus/internal/model"
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/consts"
	"Conexus/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type NetworkMetricService interface {
	SyncNetworkDailyMetric(ctx context.Context, userID uint64) error
	AddCountNetworkMetric(ctx context.Context, userID uint64, count int) error
	GetNetworkMetricsByDate(ctx context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error)
	GetNetworkMetricsBy7Days(ctx context.Context, userID uint64) ([]*model.NetworkMetric, error)
	GetNetworkMetricsBy30Days(ctx context.Context, userID uint64) ([]*model.NetworkMetric, error)
}

type networkMetricServiceImpl struct {
	metricRepo     repository.NetworkMetricRepo
	connectionRepo repository.ConnectionRepo
	cache          cache.Cache
}

func NewNetworkMetricService(
	metricRepo repository.NetworkMetricRepo,
	connectionRepo repository.ConnectionRepo,
	c cache.Cache,
) NetworkMetricService {
	return &networkMetricServiceImpl{
		metricRepo:     metricRepo,
		connectionRepo: connectionRepo,
		cache:          c,
	}
}

// SyncNetworkDailyMetric writes today's snapshot from the live connection
// count. A per-user lock keeps the nightly job and the CDC consumer from
// racing on the same row.
func (s *networkMetricServiceImpl) SyncNetworkDailyMetric(ctx context.Context, userID uint64) error {
	lockKey := consts.NetworkMetricDailyLock + strconv.FormatUint(userID, 10)
	newUUID, err := uuid.NewUUID()
	if err != nil {
		return err
	}
	lock, err := s.cache.TryLock(ctx, lockKey, newUUID.String(), time.Minute*5, 3)
	if err != nil {
		return err
	}
	if !lock {
		return UnExpectedError
	}
	defer s.cache.Unlock(ctx, lockKey, newUUID.String())

	count, err := s.connectionRepo.GetConnectionCount(ctx, userID)
	if err != nil {
		return err
	}
	return s.metricRepo.SaveOrUpdateMetric(ctx, &model.NetworkMetric{
		UserID:      userID,
		MetricDate:  getMidnight(time.Now()),
		NetworkSize: int(count),
	})
}

// AddCountNetworkMetric applies a connection-count delta to today's
// snapshot, seeding it from the latest earlier snapshot or the live count
// when today has none yet.
func (s *networkMetricServiceImpl) AddCountNetworkMetric(ctx context.Context, userID uint64, count int) error {
	lockKey := consts.NetworkMetricDailyLock + strconv.FormatUint(userID, 10)
	newUUID, err := uuid.NewUUID()
	if err != nil {
		return err
	}
	lock, err := s.cache.TryLock(ctx, lockKey, newUUID.String(), time.Minute*5, 3)
	if err != nil {
		return err
	}
	if !lock {
		return nil
	}
	defer s.cache.Unlock(ctx, lockKey, newUUID.String())

	today := getMidnight(time.Now())
	metric, err := s.metricRepo.GetMetricByDate(ctx, userID, today)
	if err != nil {
		return err
	}
	if metric == nil {
		yesterday := today.AddDate(0, 0, -1)
		prior, err := s.metricRepo.GetLatestMetricBefore(ctx, userID, yesterday)
		if err != nil {
			return err
		}
		if prior != nil {
			metric = &model.NetworkMetric{
				UserID:      userID,
				MetricDate:  today,
				NetworkSize: prior.NetworkSize + count,
			}
		} else {
			// No history at all; the live count already includes the change.
			liveCount, err := s.connectionRepo.GetConnectionCount(ctx, userID)
			if err != nil {
				return err
			}
			metric = &model.NetworkMetric{
				UserID:      userID,
				MetricDate:  today,
				NetworkSize: int(liveCount),
			}
		}
	} else {
		metric.NetworkSize += count
	}
	if metric.NetworkSize < 0 {
		metric.NetworkSize = 0
	}
	return s.metricRepo.SaveOrUpdateMetric(ctx, metric)
}

func (s *networkMetricServiceImpl) GetNetworkMetricsByDate(ctx context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error) {
	return s.metricRepo.GetMetricByDate(ctx, userID, date)
}

func (s *networkMetricServiceImpl) GetNetworkMetricsBy7Days(ctx context.Context, userID uint64) ([]*model.NetworkMetric, error) {
	key := consts.NetworkMetrics7DaysKey + strconv.FormatUint(userID, 10)
	return s.getNetworkMetricsByDays(ctx, key, func() ([]*model.NetworkMetric, error) {
		return s.metricRepo.GetMetricsSince(ctx, userID, 7)
	})
}

func (s *networkMetricServiceImpl) GetNetworkMetricsBy30Days(ctx context.Context, userID uint64) ([]*model.NetworkMetric, error) {
	key := consts.NetworkMetrics30DaysKey + strconv.FormatUint(userID, 10)
	return s.getNetworkMetricsByDays(ctx, key, func() ([]*model.NetworkMetric, error) {
		return s.metricRepo.GetMetricsSince(ctx, userID, 30)
	})
}

func (s *networkMetricServiceImpl) getNetworkMetricsByDays(
	ctx context.Context,
	key string,
	fetchFromDB func() ([]*model.NetworkMetric, error),
) ([]*model.NetworkMetric, error) {
	list, err := s.cache.GetList(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(list) != 0 {
		metrics := make([]*model.NetworkMetric, 0, len(list))
		for _, v := range list {
			var metric *model.NetworkMetric
			if err := json.Unmarshal([]byte(v), &metric); err != nil {
				return nil, err
			}
			metrics = append(metrics, metric)
		}
		return metrics, nil
	}

	metrics, err := fetchFromDB()
	if err != nil {
		return nil, err
	}

	s.cacheMetrics(ctx, key, metrics)
	return metrics, nil
}

func (s *networkMetricServiceImpl) cacheMetrics(ctx context.Context, key string, metrics []*model.NetworkMetric) {
	metricJsons := make([]string, 0, len(metrics))
	for _, v := range metrics {
		metricJson, err := json.Marshal(v)
		if err != nil {
			return
		}
		metricJsons = append(metricJsons, string(metricJson))
	}

	// Expire 5 minutes before midnight so the day rollover never serves
	// stale windows.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := time.Until(midnight) - time.Minute*5
	if expiration < 0 {
		return
	}

	_ = s.cache.SetListWithExpiration(ctx, key, metricJsons, expiration)
}
