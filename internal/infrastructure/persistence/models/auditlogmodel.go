package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLogModel struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      string         `gorm:"size:36;not null;index"`
	ActionType  string         `gorm:"size:30;not null;index"`
	TicketID    *uint          `gorm:"index"`
	Description string         `gorm:"type:text;not null"`
	Metadata    datatypes.JSON `gorm:"type:json"`
	CreatedAt   time.Time      `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
