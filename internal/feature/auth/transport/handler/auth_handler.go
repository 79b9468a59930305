// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare_backend/internal/feature/auth/transport/http/dto"
	"petcare_backend/internal/feature/auth/usecase"
	jwtmw "petcare_backend/internal/platform/jwt"
	"petcare_backend/internal/shared/outcome"
	"petcare_backend/internal/shared/ratelimiter"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates an account and signs the new user in.
	Register(ctx context.Context, email, password string, meta usecase.ClientMeta) usecase.AuthResult
	// Authenticate verifies credentials and establishes a session.
	Authenticate(ctx context.Context, email, password string, meta usecase.ClientMeta) usecase.AuthResult
	// EndSession revokes the caller's session.
	EndSession(ctx context.Context, token string) outcome.Outcome
}

// AuthHandler handles HTTP requests for registration, login and logout.
type AuthHandler struct {
	auth    AuthUsecase
	limiter *ratelimiter.Limiter
}

// NewAuthHandler creates a new AuthHandler. limiter guards the credential
// endpoints and may be nil to disable throttling (tests).
func NewAuthHandler(auth AuthUsecase, limiter *ratelimiter.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Signup handles the user registration endpoint.
// - 400 on malformed request bodies
// - 409 when the email is already taken
// - 201 with the session token on success
func (h *AuthHandler) Signup(c *gin.Context) {
	if !h.allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
		return
	}

	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.MsgInvalidData})
		return
	}

	result := h.auth.Register(c.Request.Context(), req.Email, req.Password, clientMeta(c))
	switch {
	case result.Outcome.IsRedirect():
		slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusCreated, dto.SessionResponse{Token: result.Token, Redirect: result.Outcome.Target})
	default:
		slog.Warn("signup failed", "message", result.Outcome.Message, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(failureStatus(result.Outcome.Message), gin.H{"error": result.Outcome.Message})
	}
}

// Login handles the user login endpoint.
// - 400 on malformed request bodies
// - 401 on rejected credentials
// - 200 with the session token on success
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
		return
	}

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.MsgInvalidData})
		return
	}

	result := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password, clientMeta(c))
	switch {
	case result.Outcome.IsRedirect():
		slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.SessionResponse{Token: result.Token, Redirect: result.Outcome.Target})
	default:
		// Do not reveal which field was wrong
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(failureStatus(result.Outcome.Message), gin.H{"error": result.Outcome.Message})
	}
}

// Logout revokes the caller's session and sends them to the landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	o := h.auth.EndSession(c.Request.Context(), jwtmw.TokenFromContext(c))
	switch {
	case o.IsRedirect():
		c.Redirect(http.StatusSeeOther, o.Target)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": o.Message})
	}
}

// allow consults the rate limiter, treating a nil limiter as always-allow.
func (h *AuthHandler) allow() bool {
	return h.limiter == nil || h.limiter.Allow()
}

// clientMeta captures the request metadata recorded on new sessions.
func clientMeta(c *gin.Context) usecase.ClientMeta {
	return usecase.ClientMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// failureStatus maps a user-facing failure message to an HTTP status.
func failureStatus(message string) int {
	switch message {
	case usecase.MsgEmailInUse:
		return http.StatusConflict
	case usecase.MsgInvalidCredentials:
		return http.StatusUnauthorized
	case usecase.MsgInvalidData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
