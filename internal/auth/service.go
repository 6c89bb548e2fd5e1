package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/vocabachkhoa/api/internal/apperr"
	"github.com/vocabachkhoa/api/internal/config"
	"github.com/vocabachkhoa/api/internal/entities"
)

// MaxUsernameLength matches the column size of accounts.username.
const MaxUsernameLength = 100

// DefaultTokenExpiry applies when no expiry is configured.
const DefaultTokenExpiry = time.Hour

// Login failures share one message so callers cannot probe for usernames.
const invalidCredentialsMessage = "invalid username or password"

// AccountStore defines the credential store operations the service needs.
type AccountStore interface {
	CreateAccount(ctx context.Context, username, passwordHash string) (*entities.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*entities.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UserInfo is the redacted view of an account returned to clients.
type UserInfo struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

type LoginResult struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"userInfo"`
}

// Service handles registration, login and token verification.
type Service struct {
	store  AccountStore
	config config.Auth
}

// NewService creates a new authentication service. cfg.JWTSecret must be set.
func NewService(store AccountStore, cfg config.Auth) *Service {
	if cfg.JWTExpiry <= 0 {
		cfg.JWTExpiry = DefaultTokenExpiry
	}
	return &Service{
		store:  store,
		config: cfg,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string) (*UserInfo, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, apperr.Validation("username must be at most %d characters", MaxUsernameLength)
	}
	if err := ValidatePassword(password); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	exists, err := s.store.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal(err, "failed to check existing account")
	}
	if exists {
		return nil, apperr.Conflict("username already exists")
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, apperr.Internal(err, "failed to hash password")
	}

	account, err := s.store.CreateAccount(ctx, username, passwordHash)
	if err != nil {
		// A concurrent registration can still trip the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		return nil, apperr.Internal(err, "failed to create account")
	}

	return &UserInfo{UserID: account.ID, Username: account.Username}, nil
}

// Login verifies credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	account, err := s.store.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authentication(invalidCredentialsMessage)
		}
		return nil, apperr.Internal(err, "failed to look up account")
	}

	if err := CheckPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, apperr.Authentication(invalidCredentialsMessage)
		}
		return nil, apperr.Internal(err, "failed to verify password")
	}

	token, err := IssueToken(account.ID, account.Username, s.config.JWTSecret, s.config.JWTExpiry)
	if err != nil {
		return nil, apperr.Internal(err, "failed to issue token")
	}

	return &LoginResult{
		Token:    token,
		UserInfo: UserInfo{UserID: account.ID, Username: account.Username},
	}, nil
}

// VerifyToken validates a token against the server secret.
func (s *Service) VerifyToken(token string) (*Claims, error) {
	claims, err := ParseToken(token, s.config.JWTSecret)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperr.Authentication("token expired")
		}
		return nil, apperr.Authentication("invalid token")
	}
	return claims, nil
}
