package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultSessionTTL    = 24 * time.Hour
	MinPasswordLength    = 6
)

type AdminUserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	AddIfAbsent(ctx context.Context, user *models.AdminUser) (bool, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type SessionStore interface {
	Add(ctx context.Context, session *models.AuthSession) error
	FindValid(ctx context.Context, token string, now time.Time) (*models.AuthSession, error)
	DeleteByToken(ctx context.Context, token string) error
}

// SessionInfo describes an authenticated admin behind a bearer token.
type SessionInfo struct {
	SessionID uint
	UserID    uint
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
	Token     string
}

type LoginResult struct {
	Token   string
	Session SessionInfo
}

type AuthService struct {
	users    AdminUserStore
	sessions SessionStore
	hasher   PasswordHasher
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
	logger   zerolog.Logger
}

type AuthOption func(*AuthService)

func WithHasher(h PasswordHasher) AuthOption {
	return func(s *AuthService) {
		s.hasher = h
	}
}

func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

func WithTokenGenerator(gen func() string) AuthOption {
	return func(s *AuthService) {
		s.newToken = gen
	}
}

func NewAuthService(users AdminUserStore, sessions SessionStore, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:    users,
		sessions: sessions,
		hasher:   SHA256Hasher{},
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		newToken: uuid.NewString,
		logger:   log.With().Str("service", "auth").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BootstrapDefaultAdmin creates the default admin account when no user named
// "admin" exists. Calling it repeatedly is safe.
func (s *AuthService) BootstrapDefaultAdmin(ctx context.Context) error {
	existing, err := s.users.FindByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return errs.NewDatabaseError("find admin user", "admin user", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := s.hasher.Hash(DefaultAdminPassword)
	if err != nil {
		return err
	}
	created, err := s.users.AddIfAbsent(ctx, &models.AdminUser{
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
	})
	if err != nil {
		return errs.NewDatabaseError("create admin user", "admin user", err)
	}
	if created {
		s.logger.Warn().Msg("default admin account created; change its password")
	}
	return nil
}

// Login fails with the same error for an unknown user and a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, errs.NewMissingRequiredFieldError("username", "password")
	}
	if err := s.BootstrapDefaultAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.NewDatabaseError("find admin user", "admin user", err)
	}
	if user == nil || !VerifyPassword(user.PasswordHash, password) {
		return nil, errs.NewInvalidCredentialsError()
	}

	session := &models.AuthSession{
		UserID:    user.ID,
		Token:     s.newToken(),
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Add(ctx, session); err != nil {
		return nil, errs.NewDatabaseError("create session", "session", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("admin logged in")
	return &LoginResult{
		Token: session.Token,
		Session: SessionInfo{
			SessionID: session.ID,
			UserID:    user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
			ExpiresAt: session.ExpiresAt,
			Token:     session.Token,
		},
	}, nil
}

// ValidateSession returns nil when the token is unknown or expired.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*SessionInfo, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.sessions.FindValid(ctx, token, s.now())
	if err != nil {
		return nil, errs.NewDatabaseError("find session", "session", err)
	}
	if session == nil {
		return nil, nil
	}
	return &SessionInfo{
		SessionID: session.ID,
		UserID:    session.UserID,
		Username:  session.User.Username,
		CreatedAt: session.User.CreatedAt,
		ExpiresAt: session.ExpiresAt,
		Token:     session.Token,
	}, nil
}

// Logout removes the session; unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return errs.NewDatabaseError("delete session", "session", err)
	}
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return errs.NewMissingRequiredFieldError("currentPassword", "newPassword")
	}
	if len(newPassword) < MinPasswordLength {
		return errs.NewInvalidFieldError("newPassword", "must be at least 6 characters")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return errs.NewDatabaseError("find admin user", "admin user", err)
	}
	if user == nil {
		return errs.NewInvalidTokenError()
	}
	if !VerifyPassword(user.PasswordHash, currentPassword) {
		return errs.NewInvalidFieldError("currentPassword", "does not match")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return errs.NewDatabaseError("update password", "admin user", err)
	}
	s.logger.Info().Str("username", user.Username).Msg("admin password changed")
	return nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
