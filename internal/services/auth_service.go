package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/redis"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// MockUserID is the fixed identity attached to every authenticated
// session. There is exactly one back-office operator.
const MockUserID = "mock-user-123"

// signInDelay simulates the latency of a real credential check.
const signInDelay = 500 * time.Millisecond

// SessionStore keeps the server-side mirror of the browser session flag.
// Implemented by the redis client.
type SessionStore interface {
	SetAuthSession(token string, session *redis.AuthSession, ttl time.Duration) error
	GetAuthSession(token string) (*redis.AuthSession, error)
	DeleteAuthSession(token string) error
}

type AuthService interface {
	SignIn(email, password string) (string, *models.SessionUser, error)
	SignOut(token string) error
	Session(token string) (*models.SessionUser, error)
}

type authService struct {
	email        string
	passwordHash []byte
	sessions     SessionStore
	sessionTTL   time.Duration
	delay        time.Duration
}

// NewAuthService hashes the configured mock password once at startup; the
// plaintext is never kept around after that.
func NewAuthService(email, password string, sessions SessionStore, sessionTTL time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash mock password: %w", err)
	}
	return &authService{
		email:        email,
		passwordHash: hash,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		delay:        signInDelay,
	}, nil
}

// SignIn authenticates against the statically configured pair. Any mismatch
// yields the same generic error.
func (s *authService) SignIn(email, password string) (string, *models.SessionUser, error) {
	time.Sleep(s.delay)

	if email != s.email || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}

	user := &models.SessionUser{ID: MockUserID, Email: s.email}
	if err := s.sessions.SetAuthSession(token, &redis.AuthSession{
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now(),
	}, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	return token, user, nil
}

func (s *authService) SignOut(token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteAuthSession(token)
}

func (s *authService) Session(token string) (*models.SessionUser, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	session, err := s.sessions.GetAuthSession(token)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return &models.SessionUser{ID: session.UserID, Email: session.Email}, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
