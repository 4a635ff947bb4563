package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/database/accounts"
	"github.com/postboard/postboard/internal/entities"
)

// Validation patterns
var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var (
	// ErrInvalidInput is the base error for all signup constraint violations.
	// Field-specific errors wrap it, so errors.Is(err, ErrInvalidInput) holds
	// for every one of them.
	ErrInvalidInput = errors.New("invalid input")

	ErrDisplayNameRequired = fmt.Errorf("%w: display name is required", ErrInvalidInput)
	ErrUsernameRequired    = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrEmailRequired       = fmt.Errorf("%w: email is required", ErrInvalidInput)
	ErrPasswordRequired    = fmt.Errorf("%w: password is required", ErrInvalidInput)
	ErrUsernameInvalid     = fmt.Errorf("%w: username must be 3-64 characters, alphanumeric and underscore/hyphen only", ErrInvalidInput)
	ErrEmailInvalid        = fmt.Errorf("%w: invalid email format", ErrInvalidInput)

	ErrDuplicateAccount  = errors.New("account already exists")
	ErrNoSuchAccount     = errors.New("no such account")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrStoreUnavailable  = errors.New("account store unavailable")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrTokenExpired      = errors.New("token expired")
)

// AccountStore is the credential store adapter consumed by the Service.
// Implementations own Account persistence and must make CreateIfAbsent
// atomic with respect to concurrent duplicate signups.
type AccountStore interface {
	FindByUsernameOrEmail(identifier string) (*entities.Account, error)
	CreateIfAbsent(account *entities.Account) error
}

// Service owns signup, login and token verification. It holds the only
// process-wide mutable-looking state there is: the signing key and config,
// both immutable after construction.
type Service struct {
	store      AccountStore
	config     config.Auth
	signingKey []byte
}

// NewService creates the authentication service. The signing key must be a
// non-empty hex string; use GenerateSigningKey to produce one.
func NewService(store AccountStore, cfg config.Auth) (*Service, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("auth: signing key is not set")
	}
	key, err := hex.DecodeString(cfg.SigningKey)
	if err != nil {
		return nil, fmt.Errorf("auth: signing key is not valid hex: %w", err)
	}
	if cfg.TokenValidity <= 0 {
		cfg.TokenValidity = 24 * time.Hour
	}
	return &Service{
		store:      store,
		config:     cfg,
		signingKey: key,
	}, nil
}

// Signup validates the input, hashes the password and creates a new account.
// Duplicate usernames or emails fail with ErrDuplicateAccount; the store's
// unique indexes are authoritative, so two concurrent signups with the same
// username can never both succeed.
func (s *Service) Signup(displayName, username, email, password string) (*entities.Account, error) {
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	if !usernamePattern.MatchString(username) {
		return nil, ErrUsernameInvalid
	}

	// RFC 5321 length limit is 254
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		if errors.Is(err, ErrPasswordTooShort) || errors.Is(err, ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entities.Account{
		DisplayName:  displayName,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.store.CreateIfAbsent(account); err != nil {
		if errors.Is(err, accounts.ErrDuplicate) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return account, nil
}

// Login verifies the credentials and mints a session token. A missing
// account fails with ErrNoSuchAccount, a wrong password with
// ErrInvalidCredential; the two are deliberately distinct.
func (s *Service) Login(identifier, password string) (string, *entities.Account, error) {
	account, err := s.store.FindByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return "", nil, ErrNoSuchAccount
		}
		return "", nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := CheckPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return "", nil, ErrInvalidCredential
		}
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := MintToken(account.ID, s.signingKey, s.config.TokenValidity, time.Now())
	if err != nil {
		return "", nil, fmt.Errorf("failed to mint token: %w", err)
	}

	return token, account, nil
}

// VerifyToken validates a presented token against the current time and
// returns the authenticated account ID.
func (s *Service) VerifyToken(token string) (uint, error) {
	return s.VerifyTokenAt(token, time.Now())
}

// VerifyTokenAt is VerifyToken with an explicit check time.
func (s *Service) VerifyTokenAt(token string, now time.Time) (uint, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}
	return VerifyToken(token, s.signingKey, now)
}

// TokenValidity reports the configured validity window for issued tokens.
func (s *Service) TokenValidity() time.Duration {
	return s.config.TokenValidity
}
