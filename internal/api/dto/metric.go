package dto

// NetworkMetricDTO is one network-size trend point.
type NetworkMetricDTO struct {
	Date string `json:"date"`
	Size int    `json:"size"`
}

// NetworkTrendDTO wraps a trend window, 7 or 30 days.
type NetworkTrendDTO struct {
	UserID uint64              `json:"user_id"`
	Days   int                 `json:"days"`
	List   []*NetworkMetricDTO `json:"list"`
}
