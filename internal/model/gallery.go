package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryItem is a captioned photo. Listing is newest first, and an image
// upload is mandatory on create but optional on update.
type GalleryItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Type        string    `json:"type" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"size:512;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GetID returns the record id.
func (g *GalleryItem) GetID() uuid.UUID { return g.ID }

// SetID assigns the record id at creation.
func (g *GalleryItem) SetID(id uuid.UUID) { g.ID = id }

// SetMediaRef stores the uploaded image reference.
func (g *GalleryItem) SetMediaRef(ref string) { g.Image = ref }

// Apply assigns validated values. Keys absent from the map are untouched.
func (g *GalleryItem) Apply(values map[string]any) {
	for name, v := range values {
		switch name {
		case "title":
			g.Title = v.(string)
		case "type":
			g.Type = v.(string)
		case "description":
			g.Description = v.(string)
		}
	}
}
