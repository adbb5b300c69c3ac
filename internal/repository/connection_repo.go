package repository

import (
	"Conexus/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ConnectionRepo interface {
	GetConnectionsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error)
	GetConnectionCount(ctx context.Context, userID uint64) (int64, error)
	GetConnectionBetween(ctx context.Context, userID, connectedUserID uint64) (*model.Connection, error)
	CreateConnectionPair(ctx context.Context, forward, reverse *model.Connection) error
	DeleteConnectionPair(ctx context.Context, userID, connectedUserID uint64) (int64, error)
}

type ConnectionRepoImpl struct {
	db *gorm.DB
}

func NewConnectionRepo(db *gorm.DB) ConnectionRepo {
	return &ConnectionRepoImpl{db: db}
}

// GetConnectionsByUser lists the user's owning-side rows, newest first.
// Each logical connection is stored in both directions, so filtering on
// user_id alone sees every connection exactly once.
func (s *ConnectionRepoImpl) GetConnectionsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	var connections []*model.Connection
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("connected_at desc").
		Limit(limit).
		Offset(offset).
		Find(&connections)

	if result.Error != nil {
		return nil, result.Error
	}
	return connections, nil
}

func (s *ConnectionRepoImpl) GetConnectionCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Connection{}).
		Where("user_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetConnectionBetween finds a record in either direction between the pair.
func (s *ConnectionRepoImpl) GetConnectionBetween(ctx context.Context, userID, connectedUserID uint64) (*model.Connection, error) {
	var connection model.Connection
	result := s.db.WithContext(ctx).
		Where("(user_id = ? AND connected_user_id = ?) OR (user_id = ? AND connected_user_id = ?)",
			userID, connectedUserID, connectedUserID, userID).
		First(&connection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &connection, nil
}

// CreateConnectionPair inserts both directions in one transaction so a
// half-created pair is never observable.
func (s *ConnectionRepoImpl) CreateConnectionPair(ctx context.Context, forward, reverse *model.Connection) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(forward).Error; err != nil {
			return err
		}
		return tx.Create(reverse).Error
	})
}

// DeleteConnectionPair removes both directions in one transaction and
// reports how many rows were deleted.
func (s *ConnectionRepoImpl) DeleteConnectionPair(ctx context.Context, userID, connectedUserID uint64) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("(user_id = ? AND connected_user_id = ?) OR (user_id = ? AND connected_user_id = ?)",
				userID, connectedUserID, connectedUserID, userID).
			Delete(&model.Connection{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
