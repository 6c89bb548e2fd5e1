// Package interfaces documents the core abstractions used throughout the application
// and checks at compile time that the concrete types satisfy them.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AccountStore: Credential store used by registration and login (internal/auth/service.go)
//   - AccountLookup: Account existence checks (internal/vocabulary/service.go)
//   - EntryStore: Vocabulary entry persistence (internal/vocabulary/service.go)
//   - StatsSource: Store row counts (internal/scheduler/stats.go)
//   - Pinger: Database reachability for /health (internal/http/health.go)
//
// ## Service Interfaces
//
//   - AuthService: Register, login and token verification (internal/http/auth.go)
//   - VocabularyService: Save, show and delete (internal/http/vocabulary.go)
//   - TokenVerifier: Bearer token validation (internal/auth/middleware.go)
//
// ## Observability
//
//   - Recorder: Request, login and store-size metrics (internal/metrics/metrics.go)
//
// # Adding a New Store Backend
//
// Repositories take a *gorm.DB, so a new SQL backend only needs a gorm
// dialector in internal/database/database.go:
//
//	case config.DriverMySQL:
//	    return mysql.Open(cfg.URL), nil
//
// A non-gorm backend implements AccountStore, AccountLookup and EntryStore
// and adds its checks to checks.go:
//
//	var _ auth.AccountStore = (*redisstore.Accounts)(nil)
//
// # Adding a New Route
//
//  1. Add the operation to the service in internal/vocabulary or internal/auth,
//     returning *apperr.Error values for expected failures.
//
//  2. Extend the service interface in internal/http and add a controller method
//     that calls fail(c, err) on error and respondOK/respondCreated on success.
//
//  3. Register the route in router.go.
package interfaces
