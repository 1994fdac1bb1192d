package config

import (
	"context"
	"log"
	"time"

	"github.com/Rohith16-code/velan-properties/models"
	"github.com/Rohith16-code/velan-properties/store"
)

// SeedProperties inserts the fixed example listings when the property
// collection is empty. A bootstrap convenience, not part of the API contract.
func SeedProperties(ctx context.Context, s store.Store) error {
	count, err := s.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Initializing with sample properties...")
	for _, property := range SampleProperties(time.Now().UTC()) {
		if err := s.Insert(ctx, property); err != nil {
			return err
		}
	}
	log.Println("Sample properties initialized")
	return nil
}

// SampleProperties returns the bootstrap listings with deterministic ids.
func SampleProperties(now time.Time) []models.Property {
	return []models.Property{
		{
			ID:          "sample-1",
			Title:       "Modern Family Villa",
			Price:       "₹45,00,000",
			Location:    "Hosur Main Road, TamilNadu",
			Bedrooms:    4,
			Parking:     2,
			Area:        "2,800 sq ft",
			Type:        models.PropertyTypeForSale,
			Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&w=800&q=80",
			Description: strPtr("Beautiful modern villa with all amenities"),
			Features:    []string{"Swimming Pool", "Garden", "Security", "Power Backup"},
			Status:      models.PropertyStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "sample-2",
			Title:       "Luxury Apartment",
			Price:       "₹22,000/month",
			Location:    "Hosur City Center, TamilNadu",
			Bedrooms:    2,
			Parking:     1,
			Area:        "1,200 sq ft",
			Type:        models.PropertyTypeForRent,
			Image:       "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?auto=format&fit=crop&w=800&q=80",
			Description: strPtr("Premium apartment in prime location"),
			Features:    []string{"Gym", "Security", "Parking", "Balcony"},
			Status:      models.PropertyStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "sample-3",
			Title:       "Cozy Suburban Home",
			Price:       "₹32,00,000",
			Location:    "Bagalur Road, Hosur",
			Bedrooms:    3,
			Parking:     2,
			Area:        "2,100 sq ft",
			Type:        models.PropertyTypeForSale,
			Image:       "https://images.unsplash.com/photo-1570129477492-45c003edd2be?auto=format&fit=crop&w=800&q=80",
			Description: strPtr("Perfect family home in quiet neighborhood"),
			Features:    []string{"Garden", "Security", "School Nearby", "Park"},
			Status:      models.PropertyStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
