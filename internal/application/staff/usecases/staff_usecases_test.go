package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/application/ticket/testutil"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/errors"
)

type mockIdentityProvider struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]string
	deleted  []uuid.UUID

	createError error
	deleteError error
}

func newMockIdentityProvider() *mockIdentityProvider {
	return &mockIdentityProvider{accounts: make(map[uuid.UUID]string)}
}

func (m *mockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return uuid.Nil, m.createError
	}
	id := uuid.New()
	m.accounts[id] = email
	return id, nil
}

func (m *mockIdentityProvider) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.accounts, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockIdentityProvider) deletedIDs() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uuid.UUID, len(m.deleted))
	copy(out, m.deleted)
	return out
}

type mockMailer struct {
	mu   sync.Mutex
	sent []string
	fail error
}

func (m *mockMailer) SendCredentials(ctx context.Context, email, fullName, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *mockMailer) waitForSent(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		m.mu.Lock()
		count := len(m.sent)
		m.mu.Unlock()
		if count >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

func adminActor() staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleAdmin}
}

func staffActor(departmentID int) staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &departmentID}
}

func intPtr(v int) *int { return &v }

func TestCreateStaff_ProvisionsAccountProfileAndMail(t *testing.T) {
	identity := newMockIdentityProvider()
	staffRepo := testutil.NewMockStaffRepository()
	auditRepo := testutil.NewMockAuditRepository()
	mailer := &mockMailer{}

	uc := NewCreateStaffUseCase(identity, staffRepo, auditRepo, mailer, testutil.NewNopLogger())
	result, err := uc.Execute(context.Background(), CreateStaffCommand{
		Actor:        adminActor(),
		Email:        "fatma.kaya@belediye.gov.tr",
		Password:     "gizli-sifre-1",
		FullName:     "Fatma Kaya",
		Role:         "staff",
		DepartmentID: intPtr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, "Fatma Kaya", result.Staff.FullName)
	assert.Equal(t, "staff", result.Staff.Role)

	id, parseErr := uuid.Parse(result.Staff.ID)
	require.NoError(t, parseErr)
	_, getErr := staffRepo.GetByID(context.Background(), id)
	require.NoError(t, getErr)

	require.True(t, mailer.waitForSent(1, time.Second))
	require.Len(t, auditRepo.Entries(), 1)
	assert.Contains(t, auditRepo.Entries()[0].Description(), "Fatma Kaya")
}

func TestCreateStaff_NonAdminDenied(t *testing.T) {
	uc := NewCreateStaffUseCase(newMockIdentityProvider(), testutil.NewMockStaffRepository(), testutil.NewMockAuditRepository(), nil, testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateStaffCommand{
		Actor:    staffActor(3),
		Email:    "x@belediye.gov.tr",
		Password: "gizli-sifre-1",
		FullName: "X",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateStaff_ProfileFailureCompensatesAccount(t *testing.T) {
	identity := newMockIdentityProvider()
	staffRepo := testutil.NewMockStaffRepository()
	staffRepo.SaveError = fmt.Errorf("connection reset")

	uc := NewCreateStaffUseCase(identity, staffRepo, testutil.NewMockAuditRepository(), nil, testutil.NewNopLogger())
	_, err := uc.Execute(context.Background(), CreateStaffCommand{
		Actor:    adminActor(),
		Email:    "fatma.kaya@belediye.gov.tr",
		Password: "gizli-sifre-1",
		FullName: "Fatma Kaya",
	})

	require.Error(t, err)
	require.Len(t, identity.deletedIDs(), 1)
	assert.Empty(t, identity.accounts)
}

func TestCreateStaff_DuplicateEmailConflict(t *testing.T) {
	identity := newMockIdentityProvider()
	identity.createError = fmt.Errorf("Error 1062 (23000): Duplicate entry 'fatma.kaya@belediye.gov.tr' for key 'credentials.uniq_email'")

	uc := NewCreateStaffUseCase(identity, testutil.NewMockStaffRepository(), testutil.NewMockAuditRepository(), nil, testutil.NewNopLogger())
	_, err := uc.Execute(context.Background(), CreateStaffCommand{
		Actor:    adminActor(),
		Email:    "fatma.kaya@belediye.gov.tr",
		Password: "gizli-sifre-1",
		FullName: "Fatma Kaya",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestCreateStaff_MailFailureDoesNotFailProvisioning(t *testing.T) {
	mailer := &mockMailer{fail: fmt.Errorf("smtp unreachable")}

	uc := NewCreateStaffUseCase(newMockIdentityProvider(), testutil.NewMockStaffRepository(), testutil.NewMockAuditRepository(), mailer, testutil.NewNopLogger())
	_, err := uc.Execute(context.Background(), CreateStaffCommand{
		Actor:    adminActor(),
		Email:    "fatma.kaya@belediye.gov.tr",
		Password: "gizli-sifre-1",
		FullName: "Fatma Kaya",
	})

	require.NoError(t, err)
}

func TestDeleteStaff_RemovesProfileAndAccount(t *testing.T) {
	identity := newMockIdentityProvider()
	staffRepo := testutil.NewMockStaffRepository()
	auditRepo := testutil.NewMockAuditRepository()

	id := uuid.New()
	profile, err := staff.NewProfile(id, "Mehmet Demir", authorization.RoleStaff, intPtr(3))
	require.NoError(t, err)
	staffRepo.AddProfile(profile)
	identity.accounts[id] = "mehmet.demir@belediye.gov.tr"

	uc := NewDeleteStaffUseCase(identity, staffRepo, auditRepo, testutil.NewNopLogger())
	require.NoError(t, uc.Execute(context.Background(), DeleteStaffCommand{Actor: adminActor(), StaffID: id}))

	_, getErr := staffRepo.GetByID(context.Background(), id)
	assert.True(t, errors.IsNotFoundError(getErr))
	assert.Empty(t, identity.accounts)
	require.Len(t, auditRepo.Entries(), 1)
	assert.Contains(t, auditRepo.Entries()[0].Description(), "Mehmet Demir")
}

func TestDeleteStaff_SelfDeletionRejected(t *testing.T) {
	actor := adminActor()
	uc := NewDeleteStaffUseCase(newMockIdentityProvider(), testutil.NewMockStaffRepository(), testutil.NewMockAuditRepository(), testutil.NewNopLogger())

	err := uc.Execute(context.Background(), DeleteStaffCommand{Actor: actor, StaffID: actor.UserID})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListStaff_RoleDependentShape(t *testing.T) {
	staffRepo := testutil.NewMockStaffRepository()
	p, err := staff.NewProfile(uuid.New(), "Ali Veli", authorization.RoleStaff, intPtr(4))
	require.NoError(t, err)
	staffRepo.AddProfile(p)

	uc := NewListStaffUseCase(staffRepo, testutil.NewNopLogger())

	adminResult, err := uc.Execute(context.Background(), ListStaffQuery{Actor: adminActor()})
	require.NoError(t, err)
	require.Len(t, adminResult.Staff, 1)
	assert.Empty(t, adminResult.Names)
	assert.Equal(t, intPtr(4), adminResult.Staff[0].DepartmentID)

	staffResult, err := uc.Execute(context.Background(), ListStaffQuery{Actor: staffActor(4)})
	require.NoError(t, err)
	require.Len(t, staffResult.Names, 1)
	assert.Empty(t, staffResult.Staff)
	assert.Equal(t, "Ali Veli", staffResult.Names[0].FullName)
}

func TestProfileStats_CountsOwnAssignments(t *testing.T) {
	repo := testutil.NewMockTicketRepository()
	actor := staffActor(2)

	active, err := ticket.NewTicket("A", "+905550000001", "road", "", "", ticket.PriorityNormal, intPtr(2))
	require.NoError(t, err)
	require.NoError(t, active.SetID(1))
	require.NoError(t, active.AssignTo(actor.UserID))
	repo.AddTicket(active)

	resolved, err := ticket.NewTicket("B", "+905550000002", "road", "", "", ticket.PriorityNormal, intPtr(2))
	require.NoError(t, err)
	require.NoError(t, resolved.SetID(2))
	require.NoError(t, resolved.AssignTo(actor.UserID))
	require.NoError(t, resolved.ChangeStatus(ticket.StatusInProgress))
	require.NoError(t, resolved.ChangeStatus(ticket.StatusResolved))
	repo.AddTicket(resolved)

	uc := NewProfileStatsUseCase(repo, testutil.NewNopLogger())
	stats, err := uc.Execute(context.Background(), ProfileStatsQuery{Actor: actor})

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ActiveCount)
	assert.Equal(t, int64(1), stats.ResolvedCount)
}
