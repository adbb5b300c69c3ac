package model

import "time"

// UserActivity holds per-user per-date engagement counters.
type UserActivity struct {
	ID                     uint64    `gorm:"primaryKey"`
	UserID                 uint64    `gorm:"not null;uniqueIndex:idx_user_activity_date,priority:1"`
	ActivityDate           time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_activity_date,priority:2"`
	LoginCount             int       `gorm:"type:int;not null;default:0"`
	ConnectionInteractions int       `gorm:"type:int;not null;default:0"`
	InvitesSent            int       `gorm:"type:int;not null;default:0"`
	ProfileUpdates         int       `gorm:"type:int;not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (UserActivity) TableName() string {
	return "user_activities"
}
