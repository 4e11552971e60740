// Package identity persists login credentials for staff accounts.
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beyazmasa/internal/infrastructure/persistence/models"
	db "beyazmasa/internal/shared/db"
	"beyazmasa/internal/shared/errors"
)

// PasswordHasher abstracts the hash scheme so the provider does not bind to
// bcrypt directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// Account is the authentication view of a staff member, without profile data.
type Account struct {
	ID    uuid.UUID
	Email string
}

type Provider struct {
	db     *gorm.DB
	hasher PasswordHasher
}

func NewProvider(db *gorm.DB, hasher PasswordHasher) *Provider {
	return &Provider{db: db, hasher: hasher}
}

// CreateAccount stores a new credential row and returns its id. A duplicate
// email surfaces as a conflict so the caller can report it cleanly.
func (p *Provider) CreateAccount(ctx context.Context, email, password string) (uuid.UUID, error) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	model := &models.CredentialModel{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx := db.GetTxFromContext(ctx, p.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return uuid.Nil, errors.NewConflictError("bu e-posta adresi zaten kayıtlı")
		}
		return uuid.Nil, fmt.Errorf("failed to create account: %w", err)
	}

	return uuid.MustParse(model.ID), nil
}

func (p *Provider) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	tx := db.GetTxFromContext(ctx, p.db)

	result := tx.Where("id = ?", id.String()).Delete(&models.CredentialModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("account not found")
	}
	return nil
}

// Authenticate checks the email and password pair and returns the matching
// account. Unknown email and wrong password produce the same error.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	var model models.CredentialModel
	tx := db.GetTxFromContext(ctx, p.db)

	err := tx.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewUnauthorizedError("e-posta veya şifre hatalı")
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := p.hasher.Verify(password, model.PasswordHash); err != nil {
		return nil, errors.NewUnauthorizedError("e-posta veya şifre hatalı")
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("malformed account id %q: %w", model.ID, err)
	}
	return &Account{ID: id, Email: model.Email}, nil
}
