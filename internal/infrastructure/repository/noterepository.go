package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"beyazmasa/internal/domain/note"
	"beyazmasa/internal/infrastructure/persistence/mappers"
	"beyazmasa/internal/infrastructure/persistence/models"
	db "beyazmasa/internal/shared/db"
	"beyazmasa/internal/shared/errors"
)

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.NoteMapper
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewNoteMapper(),
	}
}

func (r *NoteRepository) Save(ctx context.Context, n *note.Note) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	if n.ID() == 0 {
		if err := n.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id uint) (*note.Note, error) {
	var model models.NoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("note not found")
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NoteRepository) List(ctx context.Context) ([]*note.Note, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.NoteModel
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]*note.Note, 0, len(modelList))
	for i := range modelList {
		n, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.NoteModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("note not found")
	}
	return nil
}
