package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// DeleteStaffCommand represents the input for removing a staff member.
// Admin only; admins cannot remove themselves.
type DeleteStaffCommand struct {
	Actor   staff.Actor
	StaffID uuid.UUID
}

// DeleteStaffUseCase removes the profile first, then the login account.
// Ordering matters: a dangling profile without credentials cannot log in,
// while dangling credentials without a profile still authenticate.
type DeleteStaffUseCase struct {
	identity  IdentityProvider
	staffRepo staff.Repository
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewDeleteStaffUseCase(
	identity IdentityProvider,
	staffRepo staff.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *DeleteStaffUseCase {
	return &DeleteStaffUseCase{
		identity:  identity,
		staffRepo: staffRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (uc *DeleteStaffUseCase) Execute(ctx context.Context, cmd DeleteStaffCommand) error {
	if !cmd.Actor.IsAdmin() {
		return errors.NewForbiddenError("personel silme yetkiniz yok")
	}
	if cmd.StaffID == uuid.Nil {
		return errors.NewValidationError("staff ID is required")
	}
	if cmd.StaffID == cmd.Actor.UserID {
		return errors.NewValidationError("kendi hesabınızı silemezsiniz")
	}

	profile, err := uc.staffRepo.GetByID(ctx, cmd.StaffID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get profile", "error", err, "staff_id", cmd.StaffID)
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if err := uc.staffRepo.Delete(ctx, cmd.StaffID); err != nil {
		uc.logger.Errorw("failed to delete profile", "error", err, "staff_id", cmd.StaffID)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if err := uc.identity.DeleteAccount(ctx, cmd.StaffID); err != nil {
		// Profile is already gone, the account can no longer be used. Log and
		// continue rather than failing the whole operation.
		uc.logger.Errorw("failed to delete account after profile removal",
			"error", err,
			"staff_id", cmd.StaffID,
		)
	}

	entry, auditErr := audit.NewEntry(cmd.Actor.UserID, audit.ActionUserDelete,
		fmt.Sprintf("%s adlı personel kaydı silindi.", profile.FullName()))
	if auditErr == nil {
		entry.WithMetadata("staff_id", cmd.StaffID.String())
		if appendErr := uc.auditRepo.Append(ctx, entry); appendErr != nil {
			uc.logger.Errorw("failed to append audit entry", "error", appendErr)
		}
	}

	uc.logger.Infow("staff deleted",
		"staff_id", cmd.StaffID,
		"user_id", cmd.Actor.UserID,
	)
	return nil
}
