package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vocabachkhoa/api/internal/apperr"
	"github.com/vocabachkhoa/api/internal/config"
	"github.com/vocabachkhoa/api/internal/database/accounts"
	"github.com/vocabachkhoa/api/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Account{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func setupService(t *testing.T) *Service {
	t.Helper()
	return NewService(accounts.NewRepository(setupTestDB(t)), config.Auth{
		JWTSecret:  testSecret,
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestService_Register(t *testing.T) {
	svc := setupService(t)

	info, err := svc.Register(context.Background(), "alice", "secret1")

	require.NoError(t, err)
	assert.NotZero(t, info.UserID)
	assert.Equal(t, "alice", info.Username)
}

func TestService_Register_Validation(t *testing.T) {
	svc := setupService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"missing username", "", "secret1"},
		{"missing password", "alice", ""},
		{"short password", "alice", "12345"},
		{"password over 72 bytes", "alice", string(make([]byte, 73))},
		{"long username", string(make([]rune, 101)), "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
		})
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, first.UserID)

	_, err = svc.Register(ctx, "alice", "secret2")

	assert.True(t, apperr.Is(err, apperr.KindConflict), "got %v", err)
}

func TestService_Register_DoesNotStorePlaintext(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(accounts.NewRepository(db), config.Auth{JWTSecret: testSecret, BcryptCost: bcrypt.MinCost})

	_, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	var account entities.Account
	require.NoError(t, db.Where("username = ?", "alice").First(&account).Error)
	assert.NotEqual(t, "secret1", account.PasswordHash)
	assert.NoError(t, CheckPassword("secret1", account.PasswordHash))
}

// racingStore reports the username as free but fails the insert with a unique
// violation, as the database would when two registrations interleave.
type racingStore struct{}

func (racingStore) CreateAccount(context.Context, string, string) (*entities.Account, error) {
	return nil, gorm.ErrDuplicatedKey
}

func (racingStore) GetAccountByUsername(context.Context, string) (*entities.Account, error) {
	return nil, gorm.ErrRecordNotFound
}

func (racingStore) ExistsByUsername(context.Context, string) (bool, error) {
	return false, nil
}

func TestService_Register_ConcurrentDuplicate(t *testing.T) {
	svc := NewService(racingStore{}, config.Auth{JWTSecret: testSecret, BcryptCost: bcrypt.MinCost})

	_, err := svc.Register(context.Background(), "alice", "secret1")

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestService_Login(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice", "secret1")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, registered.UserID, result.UserInfo.UserID)
	assert.Equal(t, "alice", result.UserInfo.Username)

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, err = ParseToken(result.Token, "wrong-secret")
	assert.Error(t, err)
}

func TestService_Login_MissingFields(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Login(context.Background(), "alice", "")

	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestService_Login_GenericFailure(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "wrong-password")
	_, unknownUser := svc.Login(ctx, "bob", "secret1")

	wrongErr, ok := apperr.As(wrongPassword)
	require.True(t, ok)
	unknownErr, ok := apperr.As(unknownUser)
	require.True(t, ok)

	assert.Equal(t, apperr.KindAuthentication, wrongErr.Kind)
	assert.Equal(t, apperr.KindAuthentication, unknownErr.Kind)
	assert.Equal(t, wrongErr.Message, unknownErr.Message)
}

type failingStore struct{ racingStore }

func (failingStore) GetAccountByUsername(context.Context, string) (*entities.Account, error) {
	return nil, errors.New("database is locked")
}

func TestService_Login_StoreFailure(t *testing.T) {
	svc := NewService(failingStore{}, config.Auth{JWTSecret: testSecret})

	_, err := svc.Login(context.Background(), "alice", "secret1")

	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.NotEmpty(t, appErr.Stack)
}

func TestService_VerifyToken_Invalid(t *testing.T) {
	svc := setupService(t)

	_, err := svc.VerifyToken("garbage")

	assert.True(t, apperr.Is(err, apperr.KindAuthentication))
}

func TestService_DefaultExpiry(t *testing.T) {
	svc := NewService(racingStore{}, config.Auth{JWTSecret: testSecret})

	assert.Equal(t, DefaultTokenExpiry, svc.config.JWTExpiry)
}
