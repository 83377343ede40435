package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is the credential-holding principal allowed to mutate the catalog.
// The unique index on email is what makes registration race-free: a
// concurrent duplicate insert fails at the database instead of slipping past
// a check-then-insert sequence.
type Admin struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
