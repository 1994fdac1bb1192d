package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rohith16-code/velan-properties/models"
	"github.com/Rohith16-code/velan-properties/store"
)

type DashboardController struct {
	contacts   store.Store
	properties store.Store
}

func NewDashboardController(contacts, properties store.Store) *DashboardController {
	return &DashboardController{
		contacts:   contacts,
		properties: properties,
	}
}

// GetDashboardStats counts totals and status subsets for both collections.
// Any count failure collapses to a single generic error.
func (dc *DashboardController) GetDashboardStats(c echo.Context) error {
	ctx := c.Request().Context()

	totalContacts, err := dc.contacts.Count(ctx, nil)
	if err != nil {
		c.Logger().Errorf("Error fetching dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	newContacts, err := dc.contacts.Count(ctx, store.Filter{"status": models.ContactStatusNew})
	if err != nil {
		c.Logger().Errorf("Error fetching dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	totalProperties, err := dc.properties.Count(ctx, nil)
	if err != nil {
		c.Logger().Errorf("Error fetching dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	activeProperties, err := dc.properties.Count(ctx, store.Filter{"status": models.PropertyStatusActive})
	if err != nil {
		c.Logger().Errorf("Error fetching dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, models.DashboardStats{
		Contacts: models.ContactStats{
			Total: totalContacts,
			New:   newContacts,
		},
		Properties: models.PropertyStats{
			Total:  totalProperties,
			Active: activeProperties,
		},
	})
}
