package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CarRental is a rentable vehicle listing. An image upload is mandatory on
// create.
type CarRental struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	VehicleName string                      `json:"vehicleName" gorm:"size:255;not null"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	VehicleType string                      `json:"vehicleType" gorm:"size:50;not null"`
	PricePerDay decimal.Decimal             `json:"pricePerDay" gorm:"type:decimal(10,2);not null"`
	Capacity    int                         `json:"capacity" gorm:"not null"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Image       string                      `json:"image" gorm:"size:512"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (r *CarRental) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// GetID returns the record id.
func (r *CarRental) GetID() uuid.UUID { return r.ID }

// SetID assigns the record id at creation.
func (r *CarRental) SetID(id uuid.UUID) { r.ID = id }

// SetMediaRef stores the uploaded image reference.
func (r *CarRental) SetMediaRef(ref string) { r.Image = ref }

// Apply assigns validated values. Keys absent from the map are untouched.
func (r *CarRental) Apply(values map[string]any) {
	for name, v := range values {
		switch name {
		case "vehicleName":
			r.VehicleName = v.(string)
		case "description":
			r.Description = v.(string)
		case "vehicleType":
			r.VehicleType = v.(string)
		case "pricePerDay":
			r.PricePerDay = v.(decimal.Decimal)
		case "capacity":
			r.Capacity = v.(int)
		case "features":
			r.Features = datatypes.NewJSONSlice(v.([]string))
		}
	}
}
