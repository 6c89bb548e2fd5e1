// Package accounts provides database operations for the credential store.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.GetAccountByUsername(ctx, "alice")
package accounts

import (
	"context"

	"gorm.io/gorm"

	"github.com/vocabachkhoa/api/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAccount inserts an account with an already hashed password.
// A taken username yields gorm.ErrDuplicatedKey.
func (r *Repository) CreateAccount(ctx context.Context, username, passwordHash string) (*entities.Account, error) {
	account := &entities.Account{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccountByID retrieves an account by ID.
func (r *Repository) GetAccountByID(ctx context.Context, id uint) (*entities.Account, error) {
	var account entities.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByUsername retrieves an account by its exact username.
func (r *Repository) GetAccountByUsername(ctx context.Context, username string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByUsername reports whether the username is already taken.
func (r *Repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Account{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
