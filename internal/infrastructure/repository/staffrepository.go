package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/infrastructure/persistence/mappers"
	"beyazmasa/internal/infrastructure/persistence/models"
	db "beyazmasa/internal/shared/db"
	"beyazmasa/internal/shared/errors"
)

type StaffRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *StaffRepository) Save(ctx context.Context, profile *staff.Profile) error {
	model := r.mapper.ToModel(profile)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ProfileModel{}, "id = ?", id.String())
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("profile not found")
	}
	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*staff.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "id = ?", id.String()).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *StaffRepository) List(ctx context.Context) ([]*staff.Profile, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ProfileModel
	if err := tx.Order("full_name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*staff.Profile, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *StaffRepository) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	var rows []struct {
		ID       string
		FullName string
	}
	if err := tx.
		Model(&models.ProfileModel{}).
		Select("id", "full_name").
		Where("id IN ?", idStrings).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve profile names: %w", err)
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			continue
		}
		names[id] = row.FullName
	}
	return names, nil
}
