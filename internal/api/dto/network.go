package dto

import "time"

// ConnectionDTO is one edge of a user's network.
type ConnectionDTO struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"user_id"`
	ConnectedUserID uint64    `json:"connected_user_id"`
	Value           float64   `json:"value"`
	ConnectedAt     time.Time `json:"connected_at"`
}

// NetworkAnalyticsDTO is the full current-state report of a network.
type NetworkAnalyticsDTO struct {
	NetworkSize          int64            `json:"network_size"`
	NetworkValue         float64          `json:"network_value"`
	GrowthRate           float64          `json:"growth_rate"`
	IndustryDistribution map[string]int64 `json:"industry_distribution"`
	Connections          []*ConnectionDTO `json:"connections"`
}

// NetworkValueDTO reports the computed value of a network.
type NetworkValueDTO struct {
	NetworkSize  int64   `json:"network_size"`
	NetworkValue float64 `json:"network_value"`
}

// NetworkGrowthDTO compares a network at two points in time.
type NetworkGrowthDTO struct {
	StartSize           int64   `json:"start_size"`
	EndSize             int64   `json:"end_size"`
	NewConnections      int64   `json:"new_connections"`
	GrowthRate          float64 `json:"growth_rate"`
	AverageGrowthPerDay float64 `json:"average_growth_per_day"`
	StartValue          float64 `json:"start_value"`
	EndValue            float64 `json:"end_value"`
	NetworkValueGrowth  float64 `json:"network_value_growth"`
	Days                int     `json:"days"`
}

// DateRangeDTO is a start/end query pair, dates formatted 2006-01-02.
type DateRangeDTO struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
