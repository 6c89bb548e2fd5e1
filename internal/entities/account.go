package entities

import "time"

// Account is a registered user. The password hash never leaves the server.
type Account struct {
	ID           uint              `gorm:"primaryKey" json:"userId"`
	Username     string            `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string            `gorm:"size:255;not null" json:"-"`
	Entries      []VocabularyEntry `gorm:"foreignKey:AccountID" json:"-"`
	CreatedAt    time.Time         `json:"-"`
}
