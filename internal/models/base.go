package models

import "time"

// BaseModel is like gorm.Model without soft delete: every delete in this
// application is permanent and cascades down the ownership chain.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
