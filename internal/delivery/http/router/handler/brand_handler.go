package handler

import (
	"net/http"

	"parfum/internal/delivery/http/response"
	"parfum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BrandHandler holds dependencies for brand management handlers.
type BrandHandler struct {
	uc usecase.BrandUsecase
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// List returns every brand in the catalog.
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.uc.FindAllBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands, "brands retrieved successfully")
}

// Get returns a single brand by ID.
func (h *BrandHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.FindBrandByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brand, "brand retrieved successfully")
}

// Create creates a new brand.
func (h *BrandHandler) Create(c echo.Context) error {
	input := new(usecase.CreateBrandInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "invalid brand input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.uc.CreateBrand(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, brand, "brand created successfully")
}

// Update applies a partial update to a brand.
func (h *BrandHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateBrandInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "invalid brand input")
	}
	input.ID = id
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateBrand(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "brand updated successfully")
}

// Delete removes a brand.
func (h *BrandHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteBrand(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "brand deleted successfully")
}
