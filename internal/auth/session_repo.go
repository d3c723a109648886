package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/drivecans/storefront-backend/pkg/db/models"
)

// SessionRepository manages persisted auth tokens.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository binds the repository to the provided DB handle.
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session row.
func (r *SessionRepository) Create(ctx context.Context, userID uint, token string, expiresAt time.Time) (*models.AuthSession, error) {
	session := &models.AuthSession{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// FindActiveByToken loads a session, treating expired rows as absent.
func (r *SessionRepository) FindActiveByToken(ctx context.Context, token string, now time.Time) (*models.AuthSession, error) {
	var session models.AuthSession
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken revokes a session. Deleting an absent token is a no-op.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&models.AuthSession{}).Error
}
