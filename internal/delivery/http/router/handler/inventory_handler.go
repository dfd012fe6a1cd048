package handler

import (
	"net/http"
	"strconv"

	"parfum/internal/delivery/http/response"
	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for inventory management handlers.
type InventoryHandler struct {
	uc usecase.InventoryUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List returns every inventory row with perfume and brand.
func (h *InventoryHandler) List(c echo.Context) error {
	inventory, err := h.uc.FindAllInventory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "inventory retrieved successfully")
}

// Get returns a single inventory row by ID.
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	inventory, err := h.uc.FindInventoryByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "inventory retrieved successfully")
}

// Update modifies size, price and stock of an inventory row.
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateInventoryInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "invalid inventory input")
	}
	input.ID = id
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateInventory(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "inventory updated successfully")
}

// UpdateStock sets the absolute stock quantity of an inventory row.
func (h *InventoryHandler) UpdateStock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateStockInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "invalid stock input")
	}
	input.ID = id
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStock(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "stock updated successfully")
}

// Delete removes a single inventory row.
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteInventory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "inventory deleted successfully")
}

// Search filters inventory rows by name substring, size, price range and
// stock availability. All filters combine with AND.
func (h *InventoryHandler) Search(c echo.Context) error {
	input := &usecase.SearchInventoryInput{
		Query: c.QueryParam("query"),
	}

	if raw := c.QueryParam("size"); raw != "" {
		size := entity.Size(raw)
		if !size.Valid() {
			return domainerrors.ErrValidationFailed.WithDetails("size must be one of 50, 100, 200")
		}
		input.Size = size
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || minPrice < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("minPrice must be a non-negative number")
		}
		input.MinPrice = &minPrice
	}

	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("maxPrice must be a non-negative number")
		}
		input.MaxPrice = &maxPrice
	}

	if raw := c.QueryParam("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("inStock must be a boolean")
		}
		input.InStock = inStock
	}

	inventory, err := h.uc.SearchInventory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "inventory search completed")
}
