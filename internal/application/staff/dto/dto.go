package dto

import (
	"time"

	"beyazmasa/internal/domain/staff"
)

// StaffDTO is the admin-facing staff listing row.
type StaffDTO struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	DepartmentID *int   `json:"department_id"`
	CreatedAt    string `json:"created_at"`
}

// StaffNameDTO is the role-reduced variant: non-admin staff only see names,
// e.g. when picking an assignee display. Identifiers stay because assignment
// targets need them; role and department are withheld.
type StaffNameDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

func FromProfile(p *staff.Profile) *StaffDTO {
	return &StaffDTO{
		ID:           p.ID().String(),
		FullName:     p.FullName(),
		Role:         p.Role().String(),
		DepartmentID: p.DepartmentID(),
		CreatedAt:    p.CreatedAt().Format(time.RFC3339),
	}
}

func FromProfiles(profiles []*staff.Profile) []*StaffDTO {
	dtos := make([]*StaffDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = FromProfile(p)
	}
	return dtos
}

func NamesFromProfiles(profiles []*staff.Profile) []*StaffNameDTO {
	dtos := make([]*StaffNameDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = &StaffNameDTO{ID: p.ID().String(), FullName: p.FullName()}
	}
	return dtos
}

// ProfileStatsDTO summarizes a field worker's workload for their profile page.
type ProfileStatsDTO struct {
	ActiveCount   int64 `json:"active_count"`
	ResolvedCount int64 `json:"resolved_count"`
}
