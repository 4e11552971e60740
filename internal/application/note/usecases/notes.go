// Package usecases implements the dashboard quick notes: shared reading,
// owner-only deletion.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/note"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

type NoteDTO struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	UserID    string `json:"user_id"`
	Mine      bool   `json:"mine"`
	CreatedAt string `json:"created_at"`
}

func fromNote(n *note.Note, viewer uuid.UUID) *NoteDTO {
	return &NoteDTO{
		ID:        n.ID(),
		Content:   n.Content(),
		UserID:    n.UserID().String(),
		Mine:      n.OwnedBy(viewer),
		CreatedAt: n.CreatedAt().Format(time.RFC3339),
	}
}

// ListNotesQuery represents the input for the shared note board.
type ListNotesQuery struct {
	Actor staff.Actor
}

// AddNoteCommand represents the input for posting a note.
type AddNoteCommand struct {
	Actor   staff.Actor
	Content string
}

// DeleteNoteCommand represents the input for removing a note. Only the author
// may delete; there is no admin override.
type DeleteNoteCommand struct {
	Actor  staff.Actor
	NoteID uint
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) ([]*NoteDTO, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*NoteDTO, error)
}

type DeleteNoteExecutor interface {
	Execute(ctx context.Context, cmd DeleteNoteCommand) error
}

type ListNotesUseCase struct {
	noteRepo note.Repository
	logger   logger.Interface
}

func NewListNotesUseCase(noteRepo note.Repository, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{noteRepo: noteRepo, logger: logger}
}

func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) ([]*NoteDTO, error) {
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list notes", "error", err)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	dtos := make([]*NoteDTO, len(notes))
	for i, n := range notes {
		dtos[i] = fromNote(n, query.Actor.UserID)
	}
	return dtos, nil
}

type AddNoteUseCase struct {
	noteRepo note.Repository
	logger   logger.Interface
}

func NewAddNoteUseCase(noteRepo note.Repository, logger logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{noteRepo: noteRepo, logger: logger}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*NoteDTO, error) {
	n, err := note.NewNote(cmd.Content, cmd.Actor.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Save(ctx, n); err != nil {
		uc.logger.Errorw("failed to save note", "error", err)
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	return fromNote(n, cmd.Actor.UserID), nil
}

type DeleteNoteUseCase struct {
	noteRepo note.Repository
	logger   logger.Interface
}

func NewDeleteNoteUseCase(noteRepo note.Repository, logger logger.Interface) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{noteRepo: noteRepo, logger: logger}
}

func (uc *DeleteNoteUseCase) Execute(ctx context.Context, cmd DeleteNoteCommand) error {
	if cmd.NoteID == 0 {
		return errors.NewValidationError("note ID is required")
	}

	n, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get note", "error", err, "note_id", cmd.NoteID)
		return fmt.Errorf("failed to get note: %w", err)
	}

	if !n.OwnedBy(cmd.Actor.UserID) {
		return errors.NewForbiddenError("sadece kendi notlarınızı silebilirsiniz")
	}

	if err := uc.noteRepo.Delete(ctx, cmd.NoteID); err != nil {
		uc.logger.Errorw("failed to delete note", "error", err, "note_id", cmd.NoteID)
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
