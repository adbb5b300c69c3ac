package repository

import (
	"Conexus/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InviteMetricRepo interface {
	AddClicks(ctx context.Context, inviteID uint64, date time.Time, clicks int) error
	GetMetricsBetween(ctx context.Context, inviteID uint64, start, end time.Time) ([]*model.InviteDailyMetric, error)
}

type inviteMetricRepoImpl struct {
	db *gorm.DB
}

func NewInviteMetricRepo(db *gorm.DB) InviteMetricRepo {
	return &inviteMetricRepoImpl{db: db}
}

// AddClicks upserts the per-invite per-date row, accumulating the count.
func (s *inviteMetricRepoImpl) AddClicks(ctx context.Context, inviteID uint64, date time.Time, clicks int) error {
	metric := &model.InviteDailyMetric{
		InviteID:   inviteID,
		MetricDate: date,
		ClickCount: clicks,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invite_id"}, {Name: "metric_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"click_count": gorm.Expr("click_count + ?", clicks),
			"updated_at":  time.Now(),
		}),
	}).Create(metric).Error
}

func (s *inviteMetricRepoImpl) GetMetricsBetween(ctx context.Context, inviteID uint64, start, end time.Time) ([]*model.InviteDailyMetric, error) {
	metrics := make([]*model.InviteDailyMetric, 0)
	result := s.db.WithContext(ctx).
		Where("invite_id = ? AND metric_date BETWEEN ? AND ?", inviteID, start, end).
		Order("metric_date asc").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
