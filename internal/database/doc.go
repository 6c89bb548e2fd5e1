// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations, stats
//	├── accounts/        # Credential store: account rows
//	└── vocabulary/      # Vocabulary store: word/meaning rows keyed by account
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	accountsRepo := accounts.NewRepository(db.DB)
//	vocabRepo := vocabulary.NewRepository(db.DB)
//
//	account, err := accountsRepo.GetAccountByUsername(ctx, "alice")
//	entries, err := vocabRepo.ListEntries(ctx, account.ID)
//
// # Errors
//
// Connections are opened with gorm's TranslateError, so a unique index
// violation is returned as gorm.ErrDuplicatedKey regardless of driver, and a
// missing row as gorm.ErrRecordNotFound. Repositories return these as-is;
// classification happens in the services and the HTTP error handler.

package database
