// Package vocabulary implements saving, listing and deleting the vocabulary
// entries of an account.
package vocabulary

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vocabachkhoa/api/internal/apperr"
	"github.com/vocabachkhoa/api/internal/entities"
)

// AccountLookup resolves accounts by ID.
type AccountLookup interface {
	GetAccountByID(ctx context.Context, id uint) (*entities.Account, error)
}

// EntryStore defines the vocabulary store operations the service needs.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry *entities.VocabularyEntry) error
	ListEntries(ctx context.Context, accountID uint) ([]entities.VocabularyEntry, error)
	GetEntry(ctx context.Context, accountID uint, word string) (*entities.VocabularyEntry, error)
	DeleteEntry(ctx context.Context, accountID uint, word string) (int64, error)
}

type ShowResult struct {
	VocabList []entities.VocabularyEntry `json:"vocab_list"`
}

type DeleteResult struct {
	Message string `json:"message"`
	Word    string `json:"word"`
}

type Service struct {
	accounts AccountLookup
	entries  EntryStore
}

func NewService(accounts AccountLookup, entries EntryStore) *Service {
	return &Service{accounts: accounts, entries: entries}
}

// Save stores a word and its meanings for an existing account. Saving a word
// the account already has fails with gorm.ErrDuplicatedKey from the store.
func (s *Service) Save(ctx context.Context, accountID uint, word, meanings string) (*entities.VocabularyEntry, error) {
	if accountID == 0 || word == "" || meanings == "" {
		return nil, apperr.Validation("UID, WORD and MEANINGS are required")
	}

	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	entry := &entities.VocabularyEntry{
		AccountID: accountID,
		Word:      word,
		Meanings:  meanings,
	}
	if err := s.entries.CreateEntry(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to save %q: %w", word, err)
		}
		return nil, apperr.Internal(err, "failed to save vocabulary entry")
	}
	return entry, nil
}

// Show lists every entry of an account in the order they were saved.
func (s *Service) Show(ctx context.Context, accountID uint) (*ShowResult, error) {
	if accountID == 0 {
		return nil, apperr.Validation("U_ID is required")
	}

	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListEntries(ctx, accountID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list vocabulary entries")
	}
	return &ShowResult{VocabList: entries}, nil
}

// Delete removes the entry identified by account and word.
func (s *Service) Delete(ctx context.Context, accountID uint, word string) (*DeleteResult, error) {
	if accountID == 0 || word == "" {
		return nil, apperr.Validation("U_ID and WORD are required")
	}

	notFound := apperr.NotFound("vocabulary entry not found for U_ID: %d and WORD: %s", accountID, word)

	if _, err := s.entries.GetEntry(ctx, accountID, word); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperr.Internal(err, "failed to look up vocabulary entry")
	}

	removed, err := s.entries.DeleteEntry(ctx, accountID, word)
	if err != nil {
		return nil, apperr.Internal(err, "failed to delete vocabulary entry")
	}
	// Deleted by a concurrent request between lookup and delete.
	if removed == 0 {
		return nil, notFound
	}

	return &DeleteResult{Message: "deleted successfully", Word: word}, nil
}

func (s *Service) requireAccount(ctx context.Context, accountID uint) error {
	if _, err := s.accounts.GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("account not found with U_ID: %d", accountID)
		}
		return apperr.Internal(err, "failed to look up account")
	}
	return nil
}
