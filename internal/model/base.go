package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model
type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// GenerateID mints an opaque identifier for embedded children
// (goals, topics, questions). Reference fields carry these values
// uninterpreted; nothing in this package dereferences them.
func GenerateID() string {
	return uuid.New().String()
}
