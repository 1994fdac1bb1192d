package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Rohith16-code/velan-properties/models"
	"github.com/Rohith16-code/velan-properties/store"
	"github.com/Rohith16-code/velan-properties/utils"
)

const (
	propertyDefaultLimit = 50
	propertyMaxLimit     = 100
)

type PropertyController struct {
	store store.Store
	now   func() time.Time
	newID func() string
}

func NewPropertyController(s store.Store) *PropertyController {
	return &PropertyController{
		store: s,
		now:   time.Now,
		newID: utils.NewID,
	}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var req models.PropertyCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "Validation failed",
			Fields: utils.FieldErrors(err),
		})
	}

	property := models.NewProperty(req, pc.newID(), pc.now().UTC())
	if err := pc.store.Insert(c.Request().Context(), property); err != nil {
		c.Logger().Errorf("Error creating property: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}

	c.Logger().Infof("New property created: %s - %s", property.ID, property.Title)
	return c.JSON(http.StatusOK, models.PropertyResponse{
		Success:    true,
		Message:    "Property created successfully",
		PropertyID: property.ID,
	})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	limit, offset, ferrs := pageParams(c, propertyDefaultLimit, propertyMaxLimit)
	if len(ferrs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "Validation failed",
			Fields: ferrs,
		})
	}

	filter := store.Filter{}
	// Listings default to active; an explicitly empty status disables the filter.
	status := models.PropertyStatusActive
	if c.QueryParams().Has("status") {
		status = c.QueryParam("status")
	}
	if status != "" {
		filter["status"] = status
	}
	if propType := c.QueryParam("type"); propType != "" {
		filter["type"] = propType
	}

	properties := []models.Property{}
	if err := pc.store.Find(c.Request().Context(), filter, offset, limit, &properties); err != nil {
		c.Logger().Errorf("Error fetching properties: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id := c.Param("id")

	var req models.PropertyUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "Validation failed",
			Fields: utils.FieldErrors(err),
		})
	}

	ctx := c.Request().Context()
	fields := req.Fields()
	if len(fields) == 0 {
		// Nothing to change; still distinguish an unknown id.
		count, err := pc.store.Count(ctx, store.Filter{"id": id})
		if err != nil {
			c.Logger().Errorf("Error updating property %s: %v", id, err)
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		}
		if count == 0 {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Property not found"})
		}
		return c.JSON(http.StatusOK, models.PropertyResponse{
			Success:    true,
			Message:    "No changes made to property",
			PropertyID: id,
		})
	}

	fields["updated_at"] = pc.now().UTC()
	res, err := pc.store.UpdateByID(ctx, id, fields)
	if err != nil {
		c.Logger().Errorf("Error updating property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	if !res.Matched {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Property not found"})
	}
	if !res.Modified {
		return c.JSON(http.StatusOK, models.PropertyResponse{
			Success:    true,
			Message:    "No changes made to property",
			PropertyID: id,
		})
	}

	c.Logger().Infof("Property updated: %s", id)
	return c.JSON(http.StatusOK, models.PropertyResponse{
		Success:    true,
		Message:    "Property updated successfully",
		PropertyID: id,
	})
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id := c.Param("id")

	deleted, err := pc.store.DeleteByID(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("Error deleting property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Property not found"})
	}

	c.Logger().Infof("Property deleted: %s", id)
	return c.JSON(http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: "Property deleted successfully",
	})
}
