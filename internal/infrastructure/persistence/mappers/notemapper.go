package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/note"
	"beyazmasa/internal/infrastructure/persistence/models"
)

// NoteMapper handles the conversion between Note domain entities and persistence models.
type NoteMapper interface {
	ToModel(n *note.Note) *models.NoteModel
	ToDomain(model *models.NoteModel) (*note.Note, error)
}

type NoteMapperImpl struct{}

func NewNoteMapper() NoteMapper {
	return &NoteMapperImpl{}
}

func (m *NoteMapperImpl) ToModel(n *note.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:        n.ID(),
		Content:   n.Content(),
		UserID:    n.UserID().String(),
		CreatedAt: n.CreatedAt(),
	}
}

func (m *NoteMapperImpl) ToDomain(model *models.NoteModel) (*note.Note, error) {
	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored user id %q: %w", model.UserID, err)
	}
	return note.ReconstructNote(model.ID, model.Content, userID, model.CreatedAt), nil
}
