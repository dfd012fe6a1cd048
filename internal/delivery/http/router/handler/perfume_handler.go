package handler

import (
	"net/http"

	"parfum/internal/delivery/http/response"
	"parfum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PerfumeHandler holds dependencies for perfume management handlers.
type PerfumeHandler struct {
	uc usecase.PerfumeUsecase
}

// NewPerfumeHandler is the constructor for PerfumeHandler, injected by Fx.
func NewPerfumeHandler(uc usecase.PerfumeUsecase) *PerfumeHandler {
	return &PerfumeHandler{uc: uc}
}

// List returns every perfume with its brand.
func (h *PerfumeHandler) List(c echo.Context) error {
	perfumes, err := h.uc.FindAllPerfumes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perfumes, "perfumes retrieved successfully")
}

// Get returns a single perfume by ID.
func (h *PerfumeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	perfume, err := h.uc.FindPerfumeByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perfume, "perfume retrieved successfully")
}

// Create creates a new perfume together with its size variants.
func (h *PerfumeHandler) Create(c echo.Context) error {
	input := new(usecase.CreatePerfumeInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "invalid perfume input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	perfume, err := h.uc.CreatePerfume(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, perfume, "perfume created successfully")
}

// Update applies a partial update to a perfume.
func (h *PerfumeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdatePerfumeInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "invalid perfume input")
	}
	input.ID = id
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePerfume(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "perfume updated successfully")
}

// Delete removes a perfume. Fails with a conflict while inventory rows remain.
func (h *PerfumeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeletePerfume(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "perfume deleted successfully")
}
