package dto

// UserEngagementDTO summarises a user's activity over a period like "30d".
type UserEngagementDTO struct {
	Period                 string  `json:"period"`
	LoginCount             int     `json:"login_count"`
	LoginFrequency         float64 `json:"login_frequency"`
	ConnectionInteractions int     `json:"connection_interactions"`
	InvitesSent            int     `json:"invites_sent"`
	ProfileUpdates         int     `json:"profile_updates"`
	EngagementScore        float64 `json:"engagement_score"`
}
