package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/models"
	"github.com/postpal/postpal-server/internal/password"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so responses cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	events EventWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, events EventWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Register creates a new user with a hashed password and a zero score.
// No token is issued; the caller logs in separately.
func (svc *AuthService) Register(ctx context.Context, username, plaintext string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := svc.writer.Save(ctx, username, hashed)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	publishEvent(ctx, svc.events, userID, OpUserRegistered)
	return nil
}

// Login authenticates a user and returns a JWT token. An unknown
// username and a wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, plaintext string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
