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
	contactDefaultLimit = 20
	contactMaxLimit     = 100
)

type ContactController struct {
	store store.Store
	now   func() time.Time
	newID func() string
}

func NewContactController(s store.Store) *ContactController {
	return &ContactController{
		store: s,
		now:   time.Now,
		newID: utils.NewID,
	}
}

func (cc *ContactController) CreateContact(c echo.Context) error {
	var req models.ContactCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "Validation failed",
			Fields: utils.FieldErrors(err),
		})
	}

	contact := models.NewContact(req, cc.newID(), cc.now().UTC())
	if err := cc.store.Insert(c.Request().Context(), contact); err != nil {
		c.Logger().Errorf("Error creating contact: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}

	c.Logger().Infof("New contact created: %s - %s", contact.ID, contact.Name)
	return c.JSON(http.StatusOK, models.ContactResponse{
		Success:   true,
		Message:   "Thank you for your inquiry! We will contact you soon.",
		ContactID: contact.ID,
	})
}

func (cc *ContactController) ListContacts(c echo.Context) error {
	limit, offset, ferrs := pageParams(c, contactDefaultLimit, contactMaxLimit)
	if len(ferrs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "Validation failed",
			Fields: ferrs,
		})
	}

	filter := store.Filter{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	contacts := []models.Contact{}
	if err := cc.store.Find(c.Request().Context(), filter, offset, limit, &contacts); err != nil {
		c.Logger().Errorf("Error fetching contacts: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
	return c.JSON(http.StatusOK, contacts)
}
