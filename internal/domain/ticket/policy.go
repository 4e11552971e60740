package ticket

import (
	"beyazmasa/internal/domain/staff"
)

// Scope describes how wide a caller's view of the ticket table is.
type Scope int

const (
	// ScopeNone yields an empty result set, never an error. Staff without a
	// department fall here so ticket existence is not leaked.
	ScopeNone Scope = iota
	// ScopeDepartment restricts to a single department.
	ScopeDepartment
	// ScopeAll is the admin view.
	ScopeAll
)

// ViewScope is the policy verdict for list queries: which slice of the table
// the actor may see. DepartmentID is only meaningful for ScopeDepartment.
type ViewScope struct {
	Scope        Scope
	DepartmentID int
}

// AccessPolicy centralizes every authorization predicate over tickets. All
// entry points (list, read, status change, assignment, resolution, deletion)
// consult this one type; none re-derive the rules locally.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// ViewScopeFor returns the actor's list scope: admins see everything, staff
// see their own department, staff without a department see nothing.
func (AccessPolicy) ViewScopeFor(actor staff.Actor) ViewScope {
	if actor.IsAdmin() {
		return ViewScope{Scope: ScopeAll}
	}
	if actor.DepartmentID != nil {
		return ViewScope{Scope: ScopeDepartment, DepartmentID: *actor.DepartmentID}
	}
	return ViewScope{Scope: ScopeNone}
}

// CanView reports whether the actor may read a single ticket.
func (p AccessPolicy) CanView(actor staff.Actor, t *Ticket) bool {
	scope := p.ViewScopeFor(actor)
	switch scope.Scope {
	case ScopeAll:
		return true
	case ScopeDepartment:
		return t.DepartmentID() != nil && *t.DepartmentID() == scope.DepartmentID
	default:
		return false
	}
}

// CanMutate reports whether the actor may change the ticket's status or attach
// evidence: admins, the ticket's department, or the assignee. A ticket without
// a department is only actionable by admins.
func (AccessPolicy) CanMutate(actor staff.Actor, t *Ticket) bool {
	if actor.IsAdmin() {
		return true
	}
	if t.DepartmentID() != nil && actor.InDepartment(*t.DepartmentID()) {
		return true
	}
	if t.AssignedTo() != nil && *t.AssignedTo() == actor.UserID {
		return true
	}
	return false
}

// CanAssign reports whether the actor may change assigned_to. Admin only.
func (AccessPolicy) CanAssign(actor staff.Actor) bool {
	return actor.IsAdmin()
}

// CanDelete reports whether the actor may delete a ticket. Admin only.
func (AccessPolicy) CanDelete(actor staff.Actor) bool {
	return actor.IsAdmin()
}

// CanCancel reports whether the actor may cancel a ticket. Admin only.
func (AccessPolicy) CanCancel(actor staff.Actor) bool {
	return actor.IsAdmin()
}
