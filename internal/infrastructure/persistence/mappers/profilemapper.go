package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/infrastructure/persistence/models"
	"beyazmasa/internal/shared/authorization"
)

// ProfileMapper handles the conversion between Profile domain entities and persistence models.
type ProfileMapper interface {
	ToModel(p *staff.Profile) *models.ProfileModel
	ToDomain(model *models.ProfileModel) (*staff.Profile, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToModel(p *staff.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:           p.ID().String(),
		FullName:     p.FullName(),
		Role:         p.Role().String(),
		DepartmentID: p.DepartmentID(),
		CreatedAt:    p.CreatedAt(),
	}
}

func (m *ProfileMapperImpl) ToDomain(model *models.ProfileModel) (*staff.Profile, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored profile id %q: %w", model.ID, err)
	}
	return staff.ReconstructProfile(id, model.FullName, authorization.ParseUserRole(model.Role), model.DepartmentID, model.CreatedAt)
}
