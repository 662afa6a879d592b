package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogModel mirrors the 'blogs' table. Tags are stored as a jsonb array so
// tag-containment listing stays a single indexed query. The title carries the
// uniqueness invariant; author is a denormalized string, not a foreign key.
type BlogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text;not null"`
	Tags        []string  `gorm:"type:jsonb;serializer:json;not null"`
	Body        string    `gorm:"type:text;not null"`
	Author      string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
