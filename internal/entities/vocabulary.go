package entities

import "time"

// VocabularyEntry is a word/meaning pair owned by one account.
// The (account, word) pair is unique; ID only preserves insertion order.
type VocabularyEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	AccountID uint      `gorm:"not null;uniqueIndex:idx_vocabulary_account_word,priority:1" json:"U_ID"`
	Word      string    `gorm:"size:255;not null;uniqueIndex:idx_vocabulary_account_word,priority:2" json:"WORD"`
	Meanings  string    `gorm:"type:text;not null" json:"MEANINGS"`
	CreatedAt time.Time `json:"-"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}
