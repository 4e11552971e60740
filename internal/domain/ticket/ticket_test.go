package ticket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	deptID := 3

	tests := []struct {
		name         string
		citizenName  string
		citizenPhone string
		ticketType   string
		priority     Priority
		wantErr      string
	}{
		{
			name:         "valid ticket",
			citizenName:  "Ayşe Yılmaz",
			citizenPhone: "05321234567",
			ticketType:   "cevre",
			priority:     PriorityHigh,
		},
		{
			name:         "missing citizen name",
			citizenPhone: "05321234567",
			ticketType:   "cevre",
			priority:     PriorityNormal,
			wantErr:      "citizen name is required",
		},
		{
			name:        "missing citizen phone",
			citizenName: "Ayşe Yılmaz",
			ticketType:  "cevre",
			priority:    PriorityNormal,
			wantErr:     "citizen phone is required",
		},
		{
			name:         "missing ticket type",
			citizenName:  "Ayşe Yılmaz",
			citizenPhone: "05321234567",
			priority:     PriorityNormal,
			wantErr:      "ticket type is required",
		},
		{
			name:         "invalid priority",
			citizenName:  "Ayşe Yılmaz",
			citizenPhone: "05321234567",
			ticketType:   "cevre",
			priority:     Priority("urgent"),
			wantErr:      "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicket(tt.citizenName, tt.citizenPhone, tt.ticketType, "özet", "açıklama", tt.priority, &deptID)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, StatusOpen, got.Status())
			assert.Equal(t, SourceManual, got.Source())
			assert.Equal(t, deptID, *got.DepartmentID())
			assert.Nil(t, got.AssignedTo())
		})
	}
}

func TestNewPublicTicket_FixedFields(t *testing.T) {
	lat, lng := 40.1885, 29.0610

	got, err := NewPublicTicket("Mehmet Demir", "05419876543", nil, "yol", "çukur", "kaldırımda çukur var", &lat, &lng, nil)
	require.NoError(t, err)

	// Citizen submissions cannot choose their own status, priority or source.
	assert.Equal(t, StatusOpen, got.Status())
	assert.Equal(t, PriorityNormal, got.Priority())
	assert.Equal(t, SourceWeb, got.Source())
	assert.Nil(t, got.DepartmentID())
	assert.True(t, got.HasCoordinates())
}

func TestTicket_ChangeStatus(t *testing.T) {
	newOpenTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket("Ali Kaya", "05001112233", "park", "özet", "", PriorityNormal, nil)
		require.NoError(t, err)
		return tk
	}

	t.Run("valid transition updates status", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.ChangeStatus(StatusInProgress))
		assert.Equal(t, StatusInProgress, tk.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.ChangeStatus(StatusOpen))
		assert.Equal(t, StatusOpen, tk.Status())
	})

	t.Run("invalid transition is rejected", func(t *testing.T) {
		tk := newOpenTicket(t)
		err := tk.ChangeStatus(StatusResolved)
		assert.Error(t, err)
		assert.Equal(t, StatusOpen, tk.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		tk := newOpenTicket(t)
		assert.Error(t, tk.ChangeStatus(Status("archived")))
	})
}

func TestTicket_AttachEvidence(t *testing.T) {
	tk, err := NewTicket("Ali Kaya", "05001112233", "park", "özet", "", PriorityNormal, nil)
	require.NoError(t, err)

	assert.False(t, tk.HasEvidence())
	assert.Error(t, tk.AttachEvidence(""))

	require.NoError(t, tk.AttachEvidence("https://cdn.example.com/evidence/1.jpg"))
	assert.True(t, tk.HasEvidence())
	assert.Equal(t, "https://cdn.example.com/evidence/1.jpg", *tk.MediaURL())
}

func TestTicket_AssignTo(t *testing.T) {
	tk, err := NewTicket("Ali Kaya", "05001112233", "park", "özet", "", PriorityNormal, nil)
	require.NoError(t, err)

	assert.Error(t, tk.AssignTo(uuid.Nil))

	assignee := uuid.New()
	require.NoError(t, tk.AssignTo(assignee))
	assert.Equal(t, assignee, *tk.AssignedTo())
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("Ali Kaya", "05001112233", "park", "özet", "", PriorityNormal, nil)
	require.NoError(t, err)

	assert.Error(t, tk.SetID(0))
	require.NoError(t, tk.SetID(42))
	assert.Equal(t, uint(42), tk.ID())
	assert.Error(t, tk.SetID(43))
}
