package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tour is a guided tour listing. Its image is a plain URL supplied by the
// caller; tours have no upload path.
type Tour struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string                      `json:"title" gorm:"size:255;not null"`
	Description     string                      `json:"description" gorm:"type:text;not null"`
	Duration        string                      `json:"duration" gorm:"size:100;not null"`
	Price           decimal.Decimal             `json:"price" gorm:"type:decimal(10,2);not null"`
	Location        string                      `json:"location" gorm:"size:255;not null"`
	Difficulty      string                      `json:"difficulty" gorm:"size:50;default:'Easy'"`
	MaxParticipants int                         `json:"maxParticipants" gorm:"default:10"`
	Includes        datatypes.JSONSlice[string] `json:"includes"`
	Image           string                      `json:"image" gorm:"size:512"`
	CreatedAt       time.Time                   `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// GetID returns the record id.
func (t *Tour) GetID() uuid.UUID { return t.ID }

// SetID assigns the record id at creation.
func (t *Tour) SetID(id uuid.UUID) { t.ID = id }

// SetMediaRef stores an uploaded image reference. Tours take a plain URL
// field instead, so this only runs if an upload path is ever added.
func (t *Tour) SetMediaRef(ref string) { t.Image = ref }

// Apply assigns validated values. Keys absent from the map are untouched.
func (t *Tour) Apply(values map[string]any) {
	for name, v := range values {
		switch name {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "duration":
			t.Duration = v.(string)
		case "price":
			t.Price = v.(decimal.Decimal)
		case "location":
			t.Location = v.(string)
		case "difficulty":
			t.Difficulty = v.(string)
		case "maxParticipants":
			t.MaxParticipants = v.(int)
		case "includes":
			t.Includes = datatypes.NewJSONSlice(v.([]string))
		case "image":
			t.Image = v.(string)
		}
	}
}
