package database

import (
	"context"
	"errors"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db}
}

func (r *SessionRepo) Add(ctx context.Context, session *models.AuthSession) error {
	return r.db.WithContext(ctx).Omit("User").Create(session).Error
}

// FindValid returns the session for token joined to its user, or nil when the
// token is unknown or expired at now. Expired rows are left in place.
func (r *SessionRepo) FindValid(ctx context.Context, token string, now time.Time) (*models.AuthSession, error) {
	var session models.AuthSession
	err := r.db.WithContext(ctx).
		InnerJoins("User").
		Where("auth_sessions.token = ? AND auth_sessions.expires_at > ?", token, now.UTC()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken is a no-op when the token does not exist.
func (r *SessionRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.AuthSession{}).Error
}

func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&models.AuthSession{})
	return result.RowsAffected, result.Error
}
