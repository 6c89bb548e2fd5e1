package interfaces

// Compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/vocabachkhoa/api/internal/auth"
	"github.com/vocabachkhoa/api/internal/database"
	"github.com/vocabachkhoa/api/internal/database/accounts"
	vocabstore "github.com/vocabachkhoa/api/internal/database/vocabulary"
	"github.com/vocabachkhoa/api/internal/http"
	"github.com/vocabachkhoa/api/internal/metrics"
	"github.com/vocabachkhoa/api/internal/scheduler"
	"github.com/vocabachkhoa/api/internal/vocabulary"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Credential store
var _ auth.AccountStore = (*accounts.Repository)(nil)
var _ vocabulary.AccountLookup = (*accounts.Repository)(nil)

// Vocabulary store
var _ vocabulary.EntryStore = (*vocabstore.Repository)(nil)

// Database bootstrap
var _ http.Pinger = (*database.Database)(nil)
var _ scheduler.StatsSource = (*database.Database)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.AuthService = (*auth.Service)(nil)
var _ auth.TokenVerifier = (*auth.Service)(nil)
var _ http.VocabularyService = (*vocabulary.Service)(nil)

// =============================================================================
// Metrics
// =============================================================================

var _ metrics.Recorder = (*metrics.Collector)(nil)
var _ metrics.Recorder = metrics.Nop{}
