package staff

import (
	"github.com/google/uuid"

	"beyazmasa/internal/shared/authorization"
)

// CultureDepartmentID is the municipal culture unit. Besides admins, only this
// department may manage events.
const CultureDepartmentID = 6

// Actor is the resolved identity attached to every authorized operation:
// who is calling, with which role, scoped to which department.
type Actor struct {
	UserID       uuid.UUID
	Role         authorization.UserRole
	DepartmentID *int
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) HasDepartment() bool {
	return a.DepartmentID != nil
}

// InDepartment reports whether the actor belongs to the given department.
func (a Actor) InDepartment(departmentID int) bool {
	return a.DepartmentID != nil && *a.DepartmentID == departmentID
}

// CanManageEvents gates the event CRUD operations: admins and the culture
// department only.
func (a Actor) CanManageEvents() bool {
	return a.IsAdmin() || a.InDepartment(CultureDepartmentID)
}
