package models

import "time"

type ProfileModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	FullName     string    `gorm:"size:200;not null"`
	Role         string    `gorm:"size:20;not null;index"`
	DepartmentID *int      `gorm:"index"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel holds login secrets, kept apart from the profile so a
// profile wipe does not silently drop auth state or vice versa.
type CredentialModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Email        string    `gorm:"uniqueIndex;size:200;not null"`
	PasswordHash string    `gorm:"size:100;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (CredentialModel) TableName() string {
	return "credentials"
}
