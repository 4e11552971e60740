package models

import "time"

type TicketModel struct {
	ID                uint    `gorm:"primaryKey"`
	CitizenName       string  `gorm:"size:200;not null;index"`
	CitizenPhone      string  `gorm:"size:30;not null;index"`
	CitizenNationalID *string `gorm:"size:20"`
	TicketType        string  `gorm:"size:50;not null;index"`
	Summary           string  `gorm:"size:300"`
	Description       string  `gorm:"type:text"`
	Priority          string  `gorm:"size:20;not null;index"`
	Status            string  `gorm:"size:20;not null;index"`
	DepartmentID      *int    `gorm:"index"`
	AssignedTo        *string `gorm:"size:36;index"`
	MediaURL          *string `gorm:"size:500"`
	Latitude          *float64
	Longitude         *float64
	Location          *string   `gorm:"size:300"`
	Source            string    `gorm:"size:20;not null"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
