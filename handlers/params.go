package handlers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Rohith16-code/velan-properties/models"
)

// pageParams validates limit/offset query parameters. Out-of-bounds values
// are reported as validation failures rather than silently clamped.
func pageParams(c echo.Context, defaultLimit, maxLimit int64) (limit, offset int64, errs []models.FieldError) {
	limit = defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > maxLimit {
			errs = append(errs, models.FieldError{
				Field:   "limit",
				Message: fmt.Sprintf("must be an integer between 1 and %d", maxLimit),
			})
		} else {
			limit = n
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			errs = append(errs, models.FieldError{
				Field:   "offset",
				Message: "must be a non-negative integer",
			})
		} else {
			offset = n
		}
	}
	return limit, offset, errs
}
