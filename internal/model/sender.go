package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sender is an optional profile for people who create blessings. Blessings
// can be created anonymously; a profile only exists so a sender can log in
// and list the blessings they created.
type Sender struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	DefaultUPIID string    `json:"default_upi_id,omitempty" gorm:"column:default_upi_id;size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Sender) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
