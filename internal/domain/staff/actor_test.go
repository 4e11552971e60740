package staff

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"beyazmasa/internal/shared/authorization"
)

func TestActor_InDepartment(t *testing.T) {
	dept := 3

	actor := Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &dept}
	assert.True(t, actor.InDepartment(3))
	assert.False(t, actor.InDepartment(4))
	assert.True(t, actor.HasDepartment())

	unassigned := Actor{UserID: uuid.New(), Role: authorization.RoleStaff}
	assert.False(t, unassigned.InDepartment(3))
	assert.False(t, unassigned.HasDepartment())
}

func TestActor_CanManageEvents(t *testing.T) {
	culture := CultureDepartmentID
	other := 2

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{
			name:  "admin manages events",
			actor: Actor{UserID: uuid.New(), Role: authorization.RoleAdmin},
			want:  true,
		},
		{
			name:  "culture department staff manages events",
			actor: Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &culture},
			want:  true,
		},
		{
			name:  "other department staff blocked",
			actor: Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &other},
			want:  false,
		},
		{
			name:  "departmentless staff blocked",
			actor: Actor{UserID: uuid.New(), Role: authorization.RoleStaff},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanManageEvents())
		})
	}
}
