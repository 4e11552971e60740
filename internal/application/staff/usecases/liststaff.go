package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/application/staff/dto"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/logger"
)

// ListStaffQuery represents the input for the staff listing.
type ListStaffQuery struct {
	Actor staff.Actor
}

// ListStaffResult carries one of two shapes depending on the caller's role:
// admins get the full roster, everyone else only id and name.
type ListStaffResult struct {
	Staff []*dto.StaffDTO     `json:"staff,omitempty"`
	Names []*dto.StaffNameDTO `json:"names,omitempty"`
}

type ListStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewListStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error) {
	profiles, err := uc.staffRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	if query.Actor.IsAdmin() {
		return &ListStaffResult{Staff: dto.FromProfiles(profiles)}, nil
	}
	return &ListStaffResult{Names: dto.NamesFromProfiles(profiles)}, nil
}
