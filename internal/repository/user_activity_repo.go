package repository

import (
	"Conexus/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivitySummary is the windowed sum of a user's activity counters.
type ActivitySummary struct {
	LoginCount             int
	ConnectionInteractions int
	InvitesSent            int
	ProfileUpdates         int
}

type UserActivityRepo interface {
	IncrementActivity(ctx context.Context, userID uint64, date time.Time, column string) error
	GetActivitySummary(ctx context.Context, userID uint64, since time.Time) (*ActivitySummary, error)
}

// Activity counter columns accepted by IncrementActivity.
const (
	ActivityLogin                 = "login_count"
	ActivityConnectionInteraction = "connection_interactions"
	ActivityInviteSent            = "invites_sent"
	ActivityProfileUpdate         = "profile_updates"
)

type userActivityRepoImpl struct {
	db *gorm.DB
}

func NewUserActivityRepo(db *gorm.DB) UserActivityRepo {
	return &userActivityRepoImpl{db: db}
}

func (s *userActivityRepoImpl) IncrementActivity(ctx context.Context, userID uint64, date time.Time, column string) error {
	activity := &model.UserActivity{
		UserID:       userID,
		ActivityDate: date,
	}
	switch column {
	case ActivityLogin:
		activity.LoginCount = 1
	case ActivityConnectionInteraction:
		activity.ConnectionInteractions = 1
	case ActivityInviteSent:
		activity.InvitesSent = 1
	case ActivityProfileUpdate:
		activity.ProfileUpdates = 1
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", 1),
			"updated_at": time.Now(),
		}),
	}).Create(activity).Error
}

func (s *userActivityRepoImpl) GetActivitySummary(ctx context.Context, userID uint64, since time.Time) (*ActivitySummary, error) {
	var summary ActivitySummary
	result := s.db.WithContext(ctx).
		Model(&model.UserActivity{}).
		Select(
			"COALESCE(SUM(login_count), 0) AS login_count",
			"COALESCE(SUM(connection_interactions), 0) AS connection_interactions",
			"COALESCE(SUM(invites_sent), 0) AS invites_sent",
			"COALESCE(SUM(profile_updates), 0) AS profile_updates",
		).
		Where("user_id = ? AND activity_date >= ?", userID, since).
		Scan(&summary)
	if result.Error != nil {
		return nil, result.Error
	}
	return &summary, nil
}
