// Package staff models the authenticated municipal identities: administrators
// with unrestricted access and department-scoped personnel. Citizens are not
// profiles; the public flows identify them by phone number only.
package staff

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"beyazmasa/internal/shared/authorization"
)

type Profile struct {
	id           uuid.UUID
	fullName     string
	role         authorization.UserRole
	departmentID *int
	createdAt    time.Time
}

// NewProfile creates a profile for a freshly provisioned identity. The id must
// be the identity provider's user id so sessions resolve to exactly one profile.
func NewProfile(id uuid.UUID, fullName string, role authorization.UserRole, departmentID *int) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("profile ID is required")
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > 200 {
		return nil, fmt.Errorf("full name exceeds maximum length of 200 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Profile{
		id:           id,
		fullName:     fullName,
		role:         role,
		departmentID: departmentID,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructProfile rebuilds a profile from persistence.
func ReconstructProfile(id uuid.UUID, fullName string, role authorization.UserRole, departmentID *int, createdAt time.Time) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("profile ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Profile{
		id:           id,
		fullName:     fullName,
		role:         role,
		departmentID: departmentID,
		createdAt:    createdAt,
	}, nil
}

func (p *Profile) ID() uuid.UUID {
	return p.id
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Role() authorization.UserRole {
	return p.role
}

func (p *Profile) DepartmentID() *int {
	return p.departmentID
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// Actor derives the authorization attributes used by the access policy.
func (p *Profile) Actor() Actor {
	return Actor{
		UserID:       p.id,
		Role:         p.role,
		DepartmentID: p.departmentID,
	}
}
