// Package auth provides account registration, login and token verification.
//
// Passwords are hashed with bcrypt (AUTH_BCRYPT_COST, default 10) and must be
// between 6 characters and 72 bytes long. A successful login issues an HS256
// JWT carrying the account ID and username:
//
//	JWT_SECRET=<random string>  # Generated at start-up if empty
//	JWT_EXPIRES_IN=1h           # Token lifetime
//
// # Usage
//
//	authService := auth.NewService(accounts.NewRepository(db.DB), cfg.Auth)
//	result, err := authService.Login(ctx, "alice", "secret1")
//
// Protect routes with the bearer middleware:
//
//	router.GET("/auth/me", auth.RequireBearer(authService), handler)
//
// and read the caller in handlers:
//
//	userID := auth.GetUserID(c)
//
// Service errors are *apperr.Error values; unknown usernames and wrong
// passwords produce the same authentication error.
package auth
