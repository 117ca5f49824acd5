package services

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"todolist-service/internal/domain/entities"
	"todolist-service/internal/domain/repositories"
	"todolist-service/internal/infrastructure/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type AuthService struct {
	users    repositories.UserRepository
	sessions session.Store
	tokens   *session.TokenService
}

func NewAuthService(users repositories.UserRepository, sessions session.Store, tokens *session.TokenService) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens}
}

// Register creates an account and logs it in. Returns the new user and the
// signed cookie token for the established session.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*entities.User, string, error) {
	user, err := entities.NewUser(email, password, name)
	if err != nil {
		return nil, "", err
	}

	// Check uniqueness before insert so a duplicate surfaces as a typed
	// error instead of a driver constraint violation.
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", entities.ErrDuplicateEmail
	}

	if err := user.HashPassword(); err != nil {
		logger.Error().Err(err).Msg("failed to hash password")
		return nil, "", err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create user")
		return nil, "", err
	}

	token, err := s.establishSession(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Uint("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", entities.ErrMissingField
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", entities.ErrUnknownEmail
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, "", entities.ErrWrongPassword
	}

	token, err := s.establishSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Uint("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// Logout revokes the server-side session record. Clearing the cookie is the
// handler's job; a replayed cookie dies here regardless.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

// CurrentUser resolves session claims to the logged-in user, or nil when
// the session has been revoked, expired, or does not match its claims.
func (s *AuthService) CurrentUser(ctx context.Context, claims *session.Claims) (*entities.User, error) {
	userID, err := s.sessions.Lookup(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if userID != claims.UserID {
		return nil, session.ErrNotFound
	}

	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) establishSession(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionID, userID, s.tokens.TTL()); err != nil {
		logger.Error().Err(err).Msg("failed to save session")
		return "", err
	}
	return s.tokens.Mint(userID, sessionID)
}
