package ticket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/authorization"
)

func adminActor() staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleAdmin}
}

func staffActor(departmentID *int) staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: departmentID}
}

func ticketInDepartment(t *testing.T, departmentID *int) *Ticket {
	t.Helper()
	tk, err := NewTicket("Ayşe Yılmaz", "05321234567", "cevre", "özet", "", PriorityNormal, departmentID)
	require.NoError(t, err)
	return tk
}

func TestAccessPolicy_ViewScopeFor(t *testing.T) {
	policy := NewAccessPolicy()
	dept := 4

	t.Run("admin sees everything", func(t *testing.T) {
		scope := policy.ViewScopeFor(adminActor())
		assert.Equal(t, ScopeAll, scope.Scope)
	})

	t.Run("staff sees own department", func(t *testing.T) {
		scope := policy.ViewScopeFor(staffActor(&dept))
		assert.Equal(t, ScopeDepartment, scope.Scope)
		assert.Equal(t, dept, scope.DepartmentID)
	})

	t.Run("departmentless staff sees nothing", func(t *testing.T) {
		scope := policy.ViewScopeFor(staffActor(nil))
		assert.Equal(t, ScopeNone, scope.Scope)
	})
}

func TestAccessPolicy_CanView(t *testing.T) {
	policy := NewAccessPolicy()
	dept, otherDept := 4, 5

	tests := []struct {
		name   string
		actor  staff.Actor
		ticket *Ticket
		want   bool
	}{
		{
			name:   "admin views any ticket",
			actor:  adminActor(),
			ticket: ticketInDepartment(t, &otherDept),
			want:   true,
		},
		{
			name:   "staff views own department ticket",
			actor:  staffActor(&dept),
			ticket: ticketInDepartment(t, &dept),
			want:   true,
		},
		{
			name:   "staff blocked from other department",
			actor:  staffActor(&dept),
			ticket: ticketInDepartment(t, &otherDept),
			want:   false,
		},
		{
			name:   "staff blocked from unrouted ticket",
			actor:  staffActor(&dept),
			ticket: ticketInDepartment(t, nil),
			want:   false,
		},
		{
			name:   "departmentless staff blocked",
			actor:  staffActor(nil),
			ticket: ticketInDepartment(t, &dept),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanView(tt.actor, tt.ticket))
		})
	}
}

func TestAccessPolicy_CanMutate(t *testing.T) {
	policy := NewAccessPolicy()
	dept, otherDept := 4, 5

	t.Run("admin mutates any ticket", func(t *testing.T) {
		assert.True(t, policy.CanMutate(adminActor(), ticketInDepartment(t, nil)))
	})

	t.Run("department staff mutates department ticket", func(t *testing.T) {
		assert.True(t, policy.CanMutate(staffActor(&dept), ticketInDepartment(t, &dept)))
	})

	t.Run("assignee mutates ticket outside own department", func(t *testing.T) {
		actor := staffActor(&dept)
		tk := ticketInDepartment(t, &otherDept)
		require.NoError(t, tk.AssignTo(actor.UserID))
		assert.True(t, policy.CanMutate(actor, tk))
	})

	t.Run("unrelated staff blocked", func(t *testing.T) {
		assert.False(t, policy.CanMutate(staffActor(&dept), ticketInDepartment(t, &otherDept)))
	})

	t.Run("unrouted ticket is admin only", func(t *testing.T) {
		assert.False(t, policy.CanMutate(staffActor(&dept), ticketInDepartment(t, nil)))
	})
}

func TestAccessPolicy_AdminOnlyOperations(t *testing.T) {
	policy := NewAccessPolicy()
	dept := 4

	assert.True(t, policy.CanAssign(adminActor()))
	assert.False(t, policy.CanAssign(staffActor(&dept)))

	assert.True(t, policy.CanDelete(adminActor()))
	assert.False(t, policy.CanDelete(staffActor(&dept)))

	assert.True(t, policy.CanCancel(adminActor()))
	assert.False(t, policy.CanCancel(staffActor(&dept)))
}
