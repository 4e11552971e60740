package usecases

import (
	"context"

	"github.com/google/uuid"

	"beyazmasa/internal/application/staff/dto"
)

// IdentityProvider manages login credentials, separate from the profile row.
// CreateAccount returns the new account's id; DeleteAccount is also the
// compensating action when the profile insert fails after account creation.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password string) (uuid.UUID, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// CredentialMailer sends the initial password to a newly provisioned staff
// member. Delivery is best effort; provisioning never fails on mail errors.
type CredentialMailer interface {
	SendCredentials(ctx context.Context, email, fullName, password string) error
}

type CreateStaffExecutor interface {
	Execute(ctx context.Context, cmd CreateStaffCommand) (*CreateStaffResult, error)
}

type DeleteStaffExecutor interface {
	Execute(ctx context.Context, cmd DeleteStaffCommand) error
}

type ListStaffExecutor interface {
	Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error)
}

type ProfileStatsExecutor interface {
	Execute(ctx context.Context, query ProfileStatsQuery) (*dto.ProfileStatsDTO, error)
}
