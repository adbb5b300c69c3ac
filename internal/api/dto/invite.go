package dto

import "time"

// CreateInviteDTO names a new invite link.
type CreateInviteDTO struct {
	Name string `json:"name" binding:"required" validate:"min=1,max=100"`
}

// InviteDTO is the public view of an invite link.
type InviteDTO struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	ClickCount uint64    `json:"click_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// DailyClicksDTO is one calendar-day click bucket.
type DailyClicksDTO struct {
	Date   string `json:"date"`
	Clicks int    `json:"clicks"`
}

// InviteAnalyticsDTO reports one invite's performance over a date range.
type InviteAnalyticsDTO struct {
	InviteID       uint64           `json:"invite_id"`
	TotalClicks    int64            `json:"total_clicks"`
	ClicksPerDay   float64          `json:"clicks_per_day"`
	ConversionRate float64          `json:"conversion_rate"`
	ClicksByDay    []DailyClicksDTO `json:"clicks_by_day"`
}

// InviteEffectivenessDTO aggregates performance across all of a user's
// invites.
type InviteEffectivenessDTO struct {
	TotalInvites         int64   `json:"total_invites"`
	TotalClicks          int64   `json:"total_clicks"`
	TotalConversions     int64   `json:"total_conversions"`
	ClickThroughRate     float64 `json:"click_through_rate"`
	ConversionRate       float64 `json:"conversion_rate"`
	OverallEffectiveness float64 `json:"overall_effectiveness"`
}
