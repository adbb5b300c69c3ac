package model

import "time"

// InviteDailyMetric is the per-invite per-date click aggregation, derived
// nightly from the raw click event log so windowed analytics never rescan
// raw events.
type InviteDailyMetric struct {
	ID         uint64    `gorm:"primaryKey"`
	InviteID   uint64    `gorm:"not null;uniqueIndex:idx_invite_metric_date,priority:1"`
	MetricDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_invite_metric_date,priority:2"`
	ClickCount int       `gorm:"type:int;not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (InviteDailyMetric) TableName() string {
	return "invite_daily_metrics"
}
