package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and session token
// lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks stored password digests.
	hasher utils.PasswordHasher

	// tokens signs and verifies session tokens.
	tokens *utils.TokenCodec

	// validator checks that credentials are present.
	validator validators.Validator

	// dummyHash is compared against when the email is unknown, so a failed
	// login costs the same whether or not the account exists.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, password hasher and token codec.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction. It fails when the hasher cannot produce the dummy hash used
// for unknown emails.
func NewAuthService(userRepository store.UserRepository, hasher utils.PasswordHasher, tokens *utils.TokenCodec, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDummyHashFailed, err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validators.NewItemValidator(),
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("email", creds.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: creds.Email, PasswordHash: passwordHash})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by exact email match and password
// digest comparison.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if no user has that email or the password differs.
//   - A wrapped storage error if the lookup fails for any other reason.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Compare(a.dummyHash, creds.Password)
		log.Info().Str("email", creds.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(foundUser.PasswordHash, creds.Password) {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token carrying the user's ID and email.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	token, err := a.tokens.Encode(models.NewSessionClaims(user))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the token and decodes its claims. Any failure
// (malformed, bad signature, undecodable payload) becomes ErrUnauthenticated.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error) {
	if tokenString == "" {
		return models.SessionClaims{}, ErrUnauthenticated
	}

	var claims models.SessionClaims
	if err := a.tokens.Decode(tokenString, &claims); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.SessionClaims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return claims, nil
}

// CurrentUser resolves the user behind a session token. The user is always
// re-read from storage; a deleted user is unauthenticated even with a
// correctly signed token.
func (a *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	claims, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", claims.UserID).Msg("error resolving current user")
		return models.User{}, fmt.Errorf("error resolving current user: %w", err)
	}

	return user, nil
}

// SeedUser inserts the account described by creds if its email is free.
// An existing account is left untouched, including its password.
func (a *authService) SeedUser(ctx context.Context, creds models.Credentials) (bool, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		return false, fmt.Errorf("error hashing password: %w", err)
	}

	inserted, err := a.userRepository.InsertUserIfAbsent(ctx, models.User{Email: creds.Email, PasswordHash: passwordHash})
	if err != nil {
		return false, fmt.Errorf("error seeding user: %w", err)
	}

	return inserted, nil
}
