package model

import "time"

type Invite struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     uint64    `gorm:"not null;index:idx_invite_user" json:"userId"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	URL        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_invite_url" json:"url"`
	ClickCount uint64    `gorm:"not null;default:0" json:"clickCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Invite) TableName() string {
	return "invites"
}
