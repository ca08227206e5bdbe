package models

import "time"

type Note struct {
	ID        uint      `gorm:"primarykey"`
	TaskID    uint      `gorm:"not null;index"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time

	// Relationships
	Task Task `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
