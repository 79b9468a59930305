package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"petcare_backend/internal/feature/auth/domain/entity"
	"petcare_backend/internal/shared/outcome"
)

// User-facing messages. Internal error detail never reaches these strings.
const (
	MsgInvalidData        = "Invalid data was provided. Please try again."
	MsgEmailInUse         = "Email already in use. Please try again."
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgSomethingWrong     = "Something went wrong. Please try again."
)

const (
	// bcryptCost is the hashing cost factor for stored passwords.
	bcryptCost = bcrypt.DefaultCost

	// sessionIDBytes is the entropy of a session identifier (hex-encoded to 64 chars).
	sessionIDBytes = 32

	// dummyHash keeps bcrypt comparison time uniform when the email is unknown.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenCodec signs and verifies the opaque session token carried between requests.
type TokenCodec interface {
	// Sign produces a signed token binding the session to the user.
	Sign(userID uint, sessionID string) (string, error)

	// Verify checks the token signature and returns the embedded ids.
	Verify(token string) (userID uint, sessionID string, err error)
}

// ClientMeta carries request metadata recorded on each session.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// AuthResult is the result of an operation that may establish a session.
// Token is set only when Outcome is a redirect into the authenticated area.
type AuthResult struct {
	Token   string
	Outcome outcome.Outcome
}

// credentials is the validated shape of a sign-up or login request.
type credentials struct {
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,min=8,max=100"`
}

// AuthUsecase implements registration, login and logout.
type AuthUsecase struct {
	users       UserRepository
	sessions    SessionRepository
	tokens      TokenCodec
	validate    *validator.Validate
	sessionTTL  time.Duration
	maxSessions int64
	now         func() time.Time
}

// NewAuthUsecase creates a new AuthUsecase.
// maxSessions limits concurrent sessions per user; the oldest is evicted when exceeded.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenCodec,
	sessionTTL time.Duration, maxSessions int64) *AuthUsecase {
	return &AuthUsecase{
		users:       users,
		sessions:    sessions,
		tokens:      tokens,
		validate:    validator.New(),
		sessionTTL:  sessionTTL,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Register creates a new account and immediately signs the user in.
func (u *AuthUsecase) Register(ctx context.Context, email, password string, meta ClientMeta) AuthResult {
	creds := credentials{Email: strings.TrimSpace(email), Password: strings.TrimSpace(password)}
	if err := u.validate.Struct(creds); err != nil {
		return AuthResult{Outcome: outcome.Failure(MsgInvalidData)}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		slog.Error("password hashing failed", "error", err)
		return AuthResult{Outcome: outcome.Failure(MsgSomethingWrong)}
	}

	user := &entity.User{Email: creds.Email, HashedPassword: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return AuthResult{Outcome: outcome.Failure(MsgEmailInUse)}
		}
		slog.Error("user creation failed", "error", err)
		return AuthResult{Outcome: outcome.Failure(MsgSomethingWrong)}
	}

	// Sign the fresh account in through the same path as a normal login so a
	// credential rejection surfaces as the generic invalid-credentials message.
	return u.Authenticate(ctx, creds.Email, creds.Password, meta)
}

// Authenticate verifies credentials and establishes a session on success.
// A missing account and a wrong password produce identical results; a bcrypt
// comparison runs in both cases to keep response timing uniform.
func (u *AuthUsecase) Authenticate(ctx context.Context, email, password string, meta ClientMeta) AuthResult {
	creds := credentials{Email: strings.TrimSpace(email), Password: strings.TrimSpace(password)}
	if err := u.validate.Struct(creds); err != nil {
		return AuthResult{Outcome: outcome.Failure(MsgInvalidCredentials)}
	}

	user, lookupErr := u.users.FindByEmail(ctx, creds.Email)

	passwordHash := dummyHash
	if lookupErr == nil {
		passwordHash = user.HashedPassword
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(creds.Password))

	if lookupErr != nil || compareErr != nil {
		slog.Warn("authentication rejected", "email", creds.Email)
		return AuthResult{Outcome: outcome.Failure(MsgInvalidCredentials)}
	}

	token, err := u.establishSession(ctx, user.ID, meta)
	if err != nil {
		slog.Error("session establishment failed", "error", err, "user_id", user.ID)
		return AuthResult{Outcome: outcome.Failure(MsgSomethingWrong)}
	}

	return AuthResult{Token: token, Outcome: outcome.Redirect(outcome.TargetDashboard)}
}

// EndSession revokes the caller's session and sends them to the landing page.
func (u *AuthUsecase) EndSession(ctx context.Context, token string) outcome.Outcome {
	session, err := u.CurrentSession(ctx, token)
	if err != nil {
		return outcome.Redirect(outcome.TargetLogin)
	}
	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		slog.Error("session revocation failed", "error", err, "session_id", session.ID)
		return outcome.Failure(MsgSomethingWrong)
	}
	return outcome.Redirect(outcome.TargetLanding)
}

// CurrentSession re-derives the caller's session from a signed token.
// It returns an error for missing, malformed, expired or revoked sessions.
func (u *AuthUsecase) CurrentSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	userID, sessionID, err := u.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrInvalidToken
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// CurrentUserID returns the user id bound to a valid session token.
func (u *AuthUsecase) CurrentUserID(ctx context.Context, token string) (uint, error) {
	session, err := u.CurrentSession(ctx, token)
	if err != nil {
		return 0, err
	}
	return session.UserID, nil
}

// establishSession creates a session row and signs a token for it.
func (u *AuthUsecase) establishSession(ctx context.Context, userID uint, meta ClientMeta) (string, error) {
	// Evict the oldest session when the per-user cap is reached.
	if u.maxSessions > 0 {
		count, err := u.sessions.CountByUserID(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("failed to count sessions: %w", err)
		}
		if count >= u.maxSessions {
			if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
				return "", fmt.Errorf("failed to evict oldest session: %w", err)
			}
		}
	}

	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	now := u.now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := u.tokens.Sign(userID, id)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// newSessionID returns a 64-character hex session identifier.
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
