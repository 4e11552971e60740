package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{
			name:  "valid open status",
			input: "open",
			want:  StatusOpen,
		},
		{
			name:  "valid in_progress status",
			input: "in_progress",
			want:  StatusInProgress,
		},
		{
			name:  "valid resolved status",
			input: "resolved",
			want:  StatusResolved,
		},
		{
			name:  "valid cancelled status",
			input: "cancelled",
			want:  StatusCancelled,
		},
		{
			name:    "legacy new is not accepted as API input",
			input:   "new",
			wantErr: true,
		},
		{
			name:    "invalid status",
			input:   "bogus",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{
			name:  "legacy new folds into open",
			input: "new",
			want:  StatusOpen,
		},
		{
			name:  "open stays open",
			input: "open",
			want:  StatusOpen,
		},
		{
			name:  "in_progress passes through",
			input: "in_progress",
			want:  StatusInProgress,
		},
		{
			name:    "unknown stored value is rejected",
			input:   "archived",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"open to in_progress", StatusOpen, StatusInProgress, true},
		{"open to cancelled", StatusOpen, StatusCancelled, true},
		{"open to resolved skips work", StatusOpen, StatusResolved, false},
		{"in_progress to resolved", StatusInProgress, StatusResolved, true},
		{"in_progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"in_progress back to open", StatusInProgress, StatusOpen, false},
		{"resolved is terminal", StatusResolved, StatusOpen, false},
		{"resolved cannot be cancelled", StatusResolved, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, StatusOpen.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusResolved.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}
