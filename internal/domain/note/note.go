// Package note models the dashboard quick notes. Notes are owned: anyone
// authenticated may read and add, only the author may delete.
package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	id        uint
	content   string
	userID    uuid.UUID
	createdAt time.Time
}

func NewNote(content string, userID uuid.UUID) (*Note, error) {
	if len(strings.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("author user ID is required")
	}
	return &Note{
		content:   content,
		userID:    userID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNote(id uint, content string, userID uuid.UUID, createdAt time.Time) *Note {
	return &Note{
		id:        id,
		content:   content,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (n *Note) ID() uint             { return n.id }
func (n *Note) Content() string      { return n.content }
func (n *Note) UserID() uuid.UUID    { return n.userID }
func (n *Note) CreatedAt() time.Time { return n.createdAt }

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}

// OwnedBy reports whether userID authored the note.
func (n *Note) OwnedBy(userID uuid.UUID) bool {
	return n.userID == userID
}
