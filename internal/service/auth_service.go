package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so the response never leaks which one happened.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService verifies credentials and owns session state.
type AuthService struct {
	users    repository.Users
	sessions repository.Sessions
	ttl      time.Duration
}

func NewAuthService(users repository.Users, sessions repository.Sessions, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{users: users, sessions: sessions, ttl: ttl}
}

// Login checks the password against the stored bcrypt hash and, on success,
// establishes a session with a fresh opaque token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := models.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Logout destroys the session unconditionally. Absent or unknown tokens
// still succeed.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

// Check reports the current session state. An absent, unknown, or expired
// token is simply "not authenticated".
func (s *AuthService) Check(ctx context.Context, token string) (models.AuthStatus, error) {
	if token == "" {
		return models.AuthStatus{Authenticated: false}, nil
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return models.AuthStatus{}, err
	}
	if sess == nil {
		return models.AuthStatus{Authenticated: false}, nil
	}
	return models.AuthStatus{
		Authenticated: true,
		User: &models.PublicUser{
			ID:       sess.UserID,
			Username: sess.Username,
		},
	}, nil
}

// EnsureAdmin provisions the admin account once. Re-running with an existing
// username is a no-op; the password is not rewritten.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("admin username is empty")
	}
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("admin password: %w", err)
	}
	if _, err := s.users.Create(ctx, username, hash); err != nil {
		return err
	}
	return nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
