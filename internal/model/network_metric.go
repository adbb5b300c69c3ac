package model

import "time"

// NetworkMetric is a per-user daily snapshot of network size, used as the
// historical baseline for growth analytics.
type NetworkMetric struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_user_metric_date,priority:1"`
	MetricDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_metric_date,priority:2"`
	NetworkSize int       `gorm:"type:int;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (NetworkMetric) TableName() string {
	return "network_metrics"
}
