package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Rohith16-code/velan-properties/models"
	"github.com/Rohith16-code/velan-properties/store"
	"github.com/Rohith16-code/velan-properties/utils"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// sequenceClock hands out strictly increasing timestamps, one per call.
func sequenceClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func sequenceIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func errorFieldNames(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	names := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		names = append(names, f.Field)
	}
	return names
}

func insertProperty(t *testing.T, s store.Store, p models.Property) {
	t.Helper()
	require.NoError(t, s.Insert(context.Background(), p))
}

func insertContact(t *testing.T, s store.Store, c models.Contact) {
	t.Helper()
	require.NoError(t, s.Insert(context.Background(), c))
}

func testProperty(id string, created time.Time) models.Property {
	return models.Property{
		ID:        id,
		Title:     "Modern Family Villa",
		Price:     "₹45,00,000",
		Location:  "Hosur Main Road, TamilNadu",
		Bedrooms:  4,
		Parking:   2,
		Area:      "2,800 sq ft",
		Type:      models.PropertyTypeForSale,
		Image:     "https://example.com/villa.jpg",
		Status:    models.PropertyStatusActive,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func testContact(id, status string, created time.Time) models.Contact {
	return models.Contact{
		ID:        id,
		Name:      "Ravi Kumar",
		Email:     "ravi@example.com",
		Message:   "Interested in a 3BHK villa near Hosur Main Road.",
		CreatedAt: created,
		Status:    status,
	}
}
