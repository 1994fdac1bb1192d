package models

import (
	"time"
)

// Property statuses and listing types.
const (
	PropertyStatusActive = "active"
	PropertyStatusSold   = "sold"
	PropertyStatusRented = "rented"

	PropertyTypeForSale    = "For Sale"
	PropertyTypeForRent    = "For Rent"
	PropertyTypeInvestment = "Investment"
)

type Property struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Price       string    `bson:"price" json:"price"`
	Location    string    `bson:"location" json:"location"`
	Bedrooms    int       `bson:"bedrooms" json:"bedrooms"`
	Parking     int       `bson:"parking" json:"parking"`
	Area        string    `bson:"area" json:"area"`
	Type        string    `bson:"type" json:"type"`
	Image       string    `bson:"image" json:"image"`
	Description *string   `bson:"description,omitempty" json:"description,omitempty"`
	Features    []string  `bson:"features,omitempty" json:"features,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type PropertyCreate struct {
	Title       string   `json:"title" validate:"required,min=5,max=200"`
	Price       string   `json:"price" validate:"required,min=1,max=50"`
	Location    string   `json:"location" validate:"required,min=5,max=200"`
	Bedrooms    int      `json:"bedrooms" validate:"required,min=1,max=20"`
	Parking     *int     `json:"parking" validate:"required,min=0,max=10"`
	Area        string   `json:"area" validate:"required,min=1,max=50"`
	Type        string   `json:"type" validate:"required,oneof='For Sale' 'For Rent' 'Investment'"`
	Image       string   `json:"image" validate:"required,min=10"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Features    []string `json:"features"`
}

// PropertyUpdate is a partial update: a nil field means "leave unchanged".
type PropertyUpdate struct {
	Title       *string  `json:"title" validate:"omitempty,min=5,max=200"`
	Price       *string  `json:"price" validate:"omitempty,min=1,max=50"`
	Location    *string  `json:"location" validate:"omitempty,min=5,max=200"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,min=1,max=20"`
	Parking     *int     `json:"parking" validate:"omitempty,min=0,max=10"`
	Area        *string  `json:"area" validate:"omitempty,min=1,max=50"`
	Type        *string  `json:"type" validate:"omitempty,oneof='For Sale' 'For Rent' 'Investment'"`
	Image       *string  `json:"image" validate:"omitempty,min=10"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Features    []string `json:"features"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active sold rented"`
}

// Fields returns the document fields this partial update intends to change.
// An empty map means the payload carried no recognized field.
func (u PropertyUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.Bedrooms != nil {
		fields["bedrooms"] = *u.Bedrooms
	}
	if u.Parking != nil {
		fields["parking"] = *u.Parking
	}
	if u.Area != nil {
		fields["area"] = *u.Area
	}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Features != nil {
		fields["features"] = u.Features
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	return fields
}

// NewProperty builds the stored record from a validated create payload.
// The caller supplies the id and clock so tests can pin both.
func NewProperty(req PropertyCreate, id string, now time.Time) Property {
	p := Property{
		ID:        id,
		Title:     req.Title,
		Price:     req.Price,
		Location:  req.Location,
		Bedrooms:  req.Bedrooms,
		Area:      req.Area,
		Type:      req.Type,
		Image:     req.Image,
		Features:  req.Features,
		Status:    PropertyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Parking != nil {
		p.Parking = *req.Parking
	}
	if req.Description != nil && *req.Description != "" {
		p.Description = req.Description
	}
	return p
}
