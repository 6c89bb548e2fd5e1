package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/vocabachkhoa/api/internal/apperr"
	"github.com/vocabachkhoa/api/internal/auth"
	"github.com/vocabachkhoa/api/internal/metrics"
)

// AuthService defines the account operations exposed over HTTP.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*auth.UserInfo, error)
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
	VerifyToken(token string) (*auth.Claims, error)
}

type AuthController struct {
	service  AuthService
	recorder metrics.Recorder
}

func NewAuthController(service AuthService, recorder metrics.Recorder) *AuthController {
	return &AuthController{service: service, recorder: recorder}
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account.
// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := ac.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ac.recorder.RecordRegistration()
	respondCreated(c, "account registered successfully", info)
}

// Login verifies credentials and returns a token.
// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := ac.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if apperr.Is(err, apperr.KindAuthentication) {
			ac.recorder.RecordLogin(false)
		}
		fail(c, err)
		return
	}

	ac.recorder.RecordLogin(true)
	respondOK(c, "logged in successfully", result)
}

// Me returns the account the bearer token belongs to.
// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == 0 {
		fail(c, apperr.Authentication("authentication required"))
		return
	}

	respondOK(c, "token is valid", auth.UserInfo{
		UserID:   userID,
		Username: auth.GetUsername(c),
	})
}
