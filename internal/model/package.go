package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TourPackage bundles destinations and inclusions under one price. List
// fields arrive as comma-separated text and are split before persistence.
type TourPackage struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string                      `json:"name" gorm:"size:255;not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Duration     string                      `json:"duration" gorm:"size:100"`
	Price        decimal.Decimal             `json:"price" gorm:"type:decimal(10,2);not null"`
	Destinations datatypes.JSONSlice[string] `json:"destinations"`
	Includes     datatypes.JSONSlice[string] `json:"includes"`
	Highlights   datatypes.JSONSlice[string] `json:"highlights"`
	Image        string                      `json:"image" gorm:"size:512"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

// TableName keeps the table name plural like the other kinds.
func (TourPackage) TableName() string { return "packages" }

// BeforeCreate sets UUID before creating the record.
func (p *TourPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// GetID returns the record id.
func (p *TourPackage) GetID() uuid.UUID { return p.ID }

// SetID assigns the record id at creation.
func (p *TourPackage) SetID(id uuid.UUID) { p.ID = id }

// SetMediaRef stores the uploaded image reference.
func (p *TourPackage) SetMediaRef(ref string) { p.Image = ref }

// Apply assigns validated values. Keys absent from the map are untouched.
func (p *TourPackage) Apply(values map[string]any) {
	for name, v := range values {
		switch name {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "duration":
			p.Duration = v.(string)
		case "price":
			p.Price = v.(decimal.Decimal)
		case "destinations":
			p.Destinations = datatypes.NewJSONSlice(v.([]string))
		case "includes":
			p.Includes = datatypes.NewJSONSlice(v.([]string))
		case "highlights":
			p.Highlights = datatypes.NewJSONSlice(v.([]string))
		}
	}
}
