package repository

import (
	"Conexus/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NetworkMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.NetworkMetric) error
	GetMetricsSince(ctx context.Context, userID uint64, days int) ([]*model.NetworkMetric, error)
	GetMetricByDate(ctx context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error)
	GetLatestMetricBefore(ctx context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error)
}

type networkMetricRepoImpl struct {
	db *gorm.DB
}

func NewNetworkMetricRepo(db *gorm.DB) NetworkMetricRepo {
	return &networkMetricRepoImpl{db: db}
}

func (s *networkMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.NetworkMetric) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"network_size", "updated_at"}),
	}).Create(metric).Error
}

func (s *networkMetricRepoImpl) GetMetricsSince(ctx context.Context, userID uint64, days int) ([]*model.NetworkMetric, error) {
	metrics := make([]*model.NetworkMetric, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("metric_date >= ?", time.Now().AddDate(0, 0, -days)).
		Order("metric_date asc").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}

func (s *networkMetricRepoImpl) GetMetricByDate(ctx context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error) {
	var metric model.NetworkMetric
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND metric_date = ?", userID, date).
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

// GetLatestMetricBefore finds the closest snapshot at or before the date.
func (s *networkMetricRepoImpl) GetLatestMetricBefore(ctx context.Context, userID uint64, date time.Time) (*model.NetworkMetric, error) {
	var metric model.NetworkMetric
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND metric_date <= ?", userID, date).
		Order("metric_date DESC").
		First(&metric).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}
