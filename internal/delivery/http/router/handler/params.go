package handler

import (
	"strconv"

	domainerrors "parfum/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter as an unsigned integer.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return uint(id), nil
}
