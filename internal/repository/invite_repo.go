package repository

import (
	"Conexus/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type InviteRepo interface {
	CreateInvite(ctx context.Context, invite *model.Invite) error
	GetInviteByID(ctx context.Context, id uint64) (*model.Invite, error)
	GetInvitesByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Invite, error)
	GetInviteCount(ctx context.Context, userID uint64) (int64, error)
	IncrementClickCount(ctx context.Context, id uint64) (int64, error)
}

type InviteRepoImpl struct {
	db *gorm.DB
}

func NewInviteRepo(db *gorm.DB) InviteRepo {
	return &InviteRepoImpl{db: db}
}

func (s *InviteRepoImpl) CreateInvite(ctx context.Context, invite *model.Invite) error {
	return s.db.WithContext(ctx).Create(invite).Error
}

func (s *InviteRepoImpl) GetInviteByID(ctx context.Context, id uint64) (*model.Invite, error) {
	var invite model.Invite
	result := s.db.WithContext(ctx).First(&invite, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &invite, nil
}

func (s *InviteRepoImpl) GetInvitesByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Invite, error) {
	var invites []*model.Invite
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&invites)

	if result.Error != nil {
		return nil, result.Error
	}
	return invites, nil
}

func (s *InviteRepoImpl) GetInviteCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Invite{}).
		Where("user_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// IncrementClickCount bumps click_count by one atomically in SQL and returns
// the number of rows touched (0 when the invite does not exist).
func (s *InviteRepoImpl) IncrementClickCount(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Invite{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
