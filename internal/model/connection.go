package model

import "time"

// Connection is one direction of a mutual relationship. A connected pair is
// always stored as two rows: A→B and B→A, written and removed together.
type Connection struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	UserID          uint64    `gorm:"not null;uniqueIndex:idx_user_connected,priority:1" json:"userId"`
	ConnectedUserID uint64    `gorm:"not null;uniqueIndex:idx_user_connected,priority:2;index:idx_connected_user" json:"connectedUserId"`
	Value           float64   `gorm:"type:decimal(10,2);not null" json:"value"`
	ConnectedAt     time.Time `gorm:"index:idx_connected_at" json:"connectedAt"`
}

func (Connection) TableName() string {
	return "connections"
}
