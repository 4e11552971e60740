package models

import "time"

type EventModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:300;not null;index"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:300"`
	StartTime   time.Time
	EndTime     *time.Time `gorm:"index"`
	IsActive    bool       `gorm:"not null;default:true;index"`
	CreatedAt   time.Time  `gorm:"not null"`
}

func (EventModel) TableName() string {
	return "events"
}
