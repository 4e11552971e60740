package models

import "time"

type NoteModel struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"size:36;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (NoteModel) TableName() string {
	return "notes"
}
