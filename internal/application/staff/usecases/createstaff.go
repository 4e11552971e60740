package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"beyazmasa/internal/application/staff/dto"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/goroutine"
	"beyazmasa/internal/shared/logger"
)

// CreateStaffCommand represents the input for provisioning a staff member.
// Admin only.
type CreateStaffCommand struct {
	Actor        staff.Actor
	Email        string
	Password     string
	FullName     string
	Role         string
	DepartmentID *int
}

// CreateStaffResult represents the output of provisioning a staff member.
type CreateStaffResult struct {
	Staff *dto.StaffDTO `json:"staff"`
}

// CreateStaffUseCase provisions a login account and its profile as a pair.
// The two stores are separate, so a failed profile insert compensates by
// deleting the just-created account instead of leaving a credential orphan.
type CreateStaffUseCase struct {
	identity  IdentityProvider
	staffRepo staff.Repository
	auditRepo audit.Repository
	mailer    CredentialMailer
	logger    logger.Interface
}

func NewCreateStaffUseCase(
	identity IdentityProvider,
	staffRepo staff.Repository,
	auditRepo audit.Repository,
	mailer CredentialMailer,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		identity:  identity,
		staffRepo: staffRepo,
		auditRepo: auditRepo,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, cmd CreateStaffCommand) (*CreateStaffResult, error) {
	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("personel oluşturma yetkiniz yok")
	}
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	accountID, err := uc.identity.CreateAccount(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("bu e-posta adresi zaten kayıtlı")
		}
		uc.logger.Errorw("failed to create account", "error", err, "email", cmd.Email)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	profile, err := staff.NewProfile(accountID, cmd.FullName, authorization.ParseUserRole(cmd.Role), cmd.DepartmentID)
	if err != nil {
		uc.compensate(ctx, accountID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Save(ctx, profile); err != nil {
		uc.compensate(ctx, accountID)
		uc.logger.Errorw("failed to save profile, account rolled back", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	uc.appendAudit(ctx, cmd.Actor, profile)
	uc.mailCredentials(cmd.Email, cmd.FullName, cmd.Password)

	uc.logger.Infow("staff provisioned",
		"account_id", accountID,
		"role", profile.Role().String(),
		"user_id", cmd.Actor.UserID,
	)
	return &CreateStaffResult{Staff: dto.FromProfile(profile)}, nil
}

func (uc *CreateStaffUseCase) validateCommand(cmd CreateStaffCommand) error {
	if !strings.Contains(cmd.Email, "@") {
		return errors.NewValidationError("geçerli bir e-posta adresi gerekli")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("şifre en az 8 karakter olmalı")
	}
	if strings.TrimSpace(cmd.FullName) == "" {
		return errors.NewValidationError("ad soyad gerekli")
	}
	return nil
}

func (uc *CreateStaffUseCase) compensate(ctx context.Context, accountID uuid.UUID) {
	if err := uc.identity.DeleteAccount(ctx, accountID); err != nil {
		uc.logger.Errorw("compensating account deletion failed, credential orphan left behind",
			"error", err,
			"account_id", accountID,
		)
	}
}

func (uc *CreateStaffUseCase) appendAudit(ctx context.Context, actor staff.Actor, profile *staff.Profile) {
	entry, err := audit.NewEntry(actor.UserID, audit.ActionUserCreate,
		fmt.Sprintf("%s adlı personel kaydı oluşturuldu.", profile.FullName()))
	if err != nil {
		uc.logger.Errorw("failed to build audit entry", "error", err)
		return
	}
	entry.WithMetadata("staff_id", profile.ID().String())
	entry.WithMetadata("role", profile.Role().String())
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry", "error", err)
	}
}

func (uc *CreateStaffUseCase) mailCredentials(email, fullName, password string) {
	if uc.mailer == nil {
		return
	}
	goroutine.SafeGo(uc.logger, "mail-credentials", func() {
		if err := uc.mailer.SendCredentials(context.Background(), email, fullName, password); err != nil {
			uc.logger.Warnw("credential mail failed", "error", err, "email", email)
		}
	})
}
