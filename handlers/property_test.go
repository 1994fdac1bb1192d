package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohith16-code/velan-properties/models"
	"github.com/Rohith16-code/velan-properties/store"
)

func findProperty(t *testing.T, s store.Store, id string) models.Property {
	t.Helper()
	var out []models.Property
	require.NoError(t, s.Find(context.Background(), store.Filter{"id": id}, 0, 1, &out))
	require.Len(t, out, 1)
	return out[0]
}

func TestCreateProperty(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)
	pc.newID = sequenceIDs("prop")
	pc.now = sequenceClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), time.Second)

	body := `{
		"title": "Modern Family Villa",
		"price": "₹45,00,000",
		"location": "Hosur Main Road, TamilNadu",
		"bedrooms": 4,
		"parking": 2,
		"area": "2,800 sq ft",
		"type": "For Sale",
		"image": "https://example.com/villa.jpg",
		"features": ["Garden", "Security"]
	}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/properties", body)
	require.NoError(t, pc.CreateProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PropertyResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "prop-1", resp.PropertyID)
	assert.Equal(t, "Property created successfully", resp.Message)

	stored := findProperty(t, mem, "prop-1")
	assert.Equal(t, models.PropertyStatusActive, stored.Status)
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
	assert.Nil(t, stored.Description)
}

func TestCreateProperty_ValidationFailure(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)

	body := `{
		"title": "Hut",
		"price": "₹45,00,000",
		"location": "Hosur Main Road, TamilNadu",
		"bedrooms": 0,
		"parking": 2,
		"area": "2,800 sq ft",
		"type": "Lease",
		"image": "https://example.com/villa.jpg"
	}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/properties", body)
	require.NoError(t, pc.CreateProperty(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.ElementsMatch(t, []string{"title", "bedrooms", "type"}, errorFieldNames(t, rec))

	count, err := mem.Count(c.Request().Context(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListProperties_DefaultsToActive(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	active := testProperty("p1", base)
	sold := testProperty("p2", base.Add(time.Minute))
	sold.Status = models.PropertyStatusSold
	insertProperty(t, mem, active)
	insertProperty(t, mem, sold)

	c, rec := newJSONContext(e, http.MethodGet, "/api/properties", "")
	require.NoError(t, pc.ListProperties(c))

	var properties []models.Property
	decodeBody(t, rec, &properties)
	require.Len(t, properties, 1)
	assert.Equal(t, "p1", properties[0].ID)
}

func TestListProperties_EmptyStatusDisablesFilter(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sold := testProperty("p1", base)
	sold.Status = models.PropertyStatusSold
	insertProperty(t, mem, sold)
	insertProperty(t, mem, testProperty("p2", base.Add(time.Minute)))

	c, rec := newJSONContext(e, http.MethodGet, "/api/properties?status=", "")
	require.NoError(t, pc.ListProperties(c))

	var properties []models.Property
	decodeBody(t, rec, &properties)
	assert.Len(t, properties, 2)
}

func TestListProperties_TypeFilter(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rent := testProperty("p1", base)
	rent.Type = models.PropertyTypeForRent
	insertProperty(t, mem, rent)
	insertProperty(t, mem, testProperty("p2", base.Add(time.Minute)))

	c, rec := newJSONContext(e, http.MethodGet, "/api/properties?type=For+Rent", "")
	require.NoError(t, pc.ListProperties(c))

	var properties []models.Property
	decodeBody(t, rec, &properties)
	require.Len(t, properties, 1)
	assert.Equal(t, models.PropertyTypeForRent, properties[0].Type)
}

func TestUpdateProperty_PartialChange(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	pc.now = sequenceClock(created.Add(time.Hour), time.Second)

	before := testProperty("p1", created)
	insertProperty(t, mem, before)

	c, rec := newJSONContext(e, http.MethodPut, "/api/properties/p1", `{"price": "₹38,00,000"}`)
	c.SetPath("/api/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	require.NoError(t, pc.UpdateProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PropertyResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Property updated successfully", resp.Message)

	after := findProperty(t, mem, "p1")
	assert.Equal(t, "₹38,00,000", after.Price)
	assert.True(t, after.UpdatedAt.After(after.CreatedAt))

	// Everything else retains its prior value.
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Location, after.Location)
	assert.Equal(t, before.Bedrooms, after.Bedrooms)
	assert.Equal(t, before.Parking, after.Parking)
	assert.Equal(t, before.Area, after.Area)
	assert.Equal(t, before.Type, after.Type)
	assert.Equal(t, before.Image, after.Image)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateProperty_RepeatPayloadStillRefreshesUpdatedAt(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	pc.now = sequenceClock(created.Add(time.Hour), time.Second)

	insertProperty(t, mem, testProperty("p1", created))

	update := func() (*models.PropertyResponse, models.Property) {
		c, rec := newJSONContext(e, http.MethodPut, "/api/properties/p1", `{"price": "₹38,00,000"}`)
		c.SetPath("/api/properties/:id")
		c.SetParamNames("id")
		c.SetParamValues("p1")
		require.NoError(t, pc.UpdateProperty(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.PropertyResponse
		decodeBody(t, rec, &resp)
		return &resp, findProperty(t, mem, "p1")
	}

	first, afterFirst := update()
	assert.True(t, first.Success)

	second, afterSecond := update()
	assert.True(t, second.Success)
	assert.Equal(t, afterFirst.Price, afterSecond.Price)
	assert.True(t, afterSecond.UpdatedAt.After(afterFirst.UpdatedAt))
}

func TestUpdateProperty_EmptyPayloadIsNoOp(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	insertProperty(t, mem, testProperty("p1", created))

	c, rec := newJSONContext(e, http.MethodPut, "/api/properties/p1", `{}`)
	c.SetPath("/api/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	require.NoError(t, pc.UpdateProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PropertyResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "No changes made to property", resp.Message)

	after := findProperty(t, mem, "p1")
	assert.Equal(t, created, after.UpdatedAt)
}

func TestUpdateProperty_UnknownID(t *testing.T) {
	e := newEcho()
	pc := NewPropertyController(store.NewMemory())

	for _, body := range []string{`{}`, `{"price": "₹38,00,000"}`} {
		c, rec := newJSONContext(e, http.MethodPut, "/api/properties/ghost", body)
		c.SetPath("/api/properties/:id")
		c.SetParamNames("id")
		c.SetParamValues("ghost")
		require.NoError(t, pc.UpdateProperty(c))
		assert.Equal(t, http.StatusNotFound, rec.Code, body)
	}
}

func TestUpdateProperty_ValidationFailure(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)
	insertProperty(t, mem, testProperty("p1", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	c, rec := newJSONContext(e, http.MethodPut, "/api/properties/p1", `{"status": "archived"}`)
	c.SetPath("/api/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	require.NoError(t, pc.UpdateProperty(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.ElementsMatch(t, []string{"status"}, errorFieldNames(t, rec))
}

func TestDeleteProperty(t *testing.T) {
	e := newEcho()
	mem := store.NewMemory()
	pc := NewPropertyController(mem)
	insertProperty(t, mem, testProperty("p1", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	del := func() *httptest.ResponseRecorder {
		c, rec := newJSONContext(e, http.MethodDelete, "/api/properties/p1", "")
		c.SetPath("/api/properties/:id")
		c.SetParamNames("id")
		c.SetParamValues("p1")
		require.NoError(t, pc.DeleteProperty(c))
		return rec
	}

	rec := del()
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.DeleteResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Property deleted successfully", resp.Message)

	// Deleting the same id again is a not-found, not an error.
	rec = del()
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
