package models

import (
	"time"
)

// Contact statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusResolved  = "resolved"
)

type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Status    string    `bson:"status" json:"status"`
}

type ContactCreate struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Message string  `json:"message" validate:"required,min=10,max=1000"`
}

// NewContact builds the stored record from a validated create payload.
// The caller supplies the id and clock so tests can pin both.
func NewContact(req ContactCreate, id string, now time.Time) Contact {
	c := Contact{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: now,
		Status:    ContactStatusNew,
	}
	if req.Phone != nil && *req.Phone != "" {
		c.Phone = req.Phone
	}
	return c
}
