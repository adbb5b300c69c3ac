package mongo

import "time"

// ClickEvent is one raw invite click, append-only. Daily aggregation into
// MySQL happens in the invite metric job.
type ClickEvent struct {
	InviteID  uint64    `bson:"invite_id"`
	UserAgent string    `bson:"user_agent,omitempty"`
	IPAddress string    `bson:"ip_address,omitempty"`
	ClickedAt time.Time `bson:"clicked_at"`
}
