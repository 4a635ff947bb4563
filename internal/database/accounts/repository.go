// Package accounts is the persistence boundary for Account records.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.FindByUsernameOrEmail("ada@x.com")
package accounts

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/postboard/postboard/internal/entities"
)

var (
	// ErrNotFound is returned when no account matches the identifier.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicate is returned when an account with the same username or
	// email already exists.
	ErrDuplicate = errors.New("account already exists")
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUsernameOrEmail retrieves the account whose username or email
// equals the identifier.
func (r *Repository) FindByUsernameOrEmail(identifier string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// CreateIfAbsent inserts the account, relying on the unique indexes on
// username and email for atomicity. Two concurrent inserts with the same
// username or email resolve to exactly one success and one ErrDuplicate.
func (r *Repository) CreateIfAbsent(account *entities.Account) error {
	err := r.db.Create(account).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *Repository) FindByID(id uint) (*entities.Account, error) {
	var account entities.Account
	err := r.db.First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// isUniqueConstraintError detects a unique-index violation across the GORM
// error translation setting and the raw SQLite error text.
func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
