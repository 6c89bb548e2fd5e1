// Package vocabulary provides database operations for the vocabulary store.
//
// # Usage
//
//	repo := vocabulary.NewRepository(db)
//	entries, err := repo.ListEntries(ctx, accountID)
package vocabulary

import (
	"context"

	"gorm.io/gorm"

	"github.com/vocabachkhoa/api/internal/entities"
)

// Repository handles all vocabulary database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new vocabulary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateEntry stores a word for an account. Saving the same word twice for
// one account yields gorm.ErrDuplicatedKey.
func (r *Repository) CreateEntry(ctx context.Context, entry *entities.VocabularyEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListEntries returns every entry of an account in insertion order.
func (r *Repository) ListEntries(ctx context.Context, accountID uint) ([]entities.VocabularyEntry, error) {
	entries := []entities.VocabularyEntry{}
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry retrieves a single entry by account and exact word.
func (r *Repository) GetEntry(ctx context.Context, accountID uint, word string) (*entities.VocabularyEntry, error) {
	var entry entities.VocabularyEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND word = ?", accountID, word).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes the entry matching account and word, returning the
// number of rows removed.
func (r *Repository) DeleteEntry(ctx context.Context, accountID uint, word string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND word = ?", accountID, word).
		Delete(&entities.VocabularyEntry{})
	return result.RowsAffected, result.Error
}
