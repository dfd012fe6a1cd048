package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchRecorder captures the search input the handler builds from
// query parameters.
type searchRecorder struct {
	usecase.InventoryUsecase

	input *usecase.SearchInventoryInput
}

func (r *searchRecorder) SearchInventory(_ context.Context, input *usecase.SearchInventoryInput) ([]*entity.Inventory, error) {
	r.input = input

	return []*entity.Inventory{}, nil
}

func performSearch(t *testing.T, target string) (*searchRecorder, *httptest.ResponseRecorder, error) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := echo.New().NewContext(req, rec)

	uc := &searchRecorder{}
	err := NewInventoryHandler(uc).Search(c)

	return uc, rec, err
}

func TestInventoryHandler_Search_AllFilters(t *testing.T) {
	uc, rec, err := performSearch(t, "/inventory/search?query=chanel&size=100&minPrice=20&maxPrice=80&inStock=true")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.input)
	assert.Equal(t, "chanel", uc.input.Query)
	assert.Equal(t, entity.SizeMedium, uc.input.Size)
	require.NotNil(t, uc.input.MinPrice)
	assert.Equal(t, 20.0, *uc.input.MinPrice)
	require.NotNil(t, uc.input.MaxPrice)
	assert.Equal(t, 80.0, *uc.input.MaxPrice)
	assert.True(t, uc.input.InStock)
}

func TestInventoryHandler_Search_NoFilters(t *testing.T) {
	uc, rec, err := performSearch(t, "/inventory/search")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.input)
	assert.Empty(t, uc.input.Query)
	assert.Empty(t, uc.input.Size)
	assert.Nil(t, uc.input.MinPrice)
	assert.Nil(t, uc.input.MaxPrice)
	assert.False(t, uc.input.InStock)
}

func TestInventoryHandler_Search_InvalidSize(t *testing.T) {
	uc, _, err := performSearch(t, "/inventory/search?size=75")

	require.Error(t, err)
	assert.Nil(t, uc.input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestInventoryHandler_Search_InvalidPrice(t *testing.T) {
	uc, _, err := performSearch(t, "/inventory/search?minPrice=cheap")

	require.Error(t, err)
	assert.Nil(t, uc.input)
}

func TestPathID(t *testing.T) {
	e := echo.New()

	newCtx := func(param string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(param)

		return c
	}

	id, err := pathID(newCtx("42"))
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = pathID(newCtx("abc"))
	require.Error(t, err)

	_, err = pathID(newCtx("0"))
	require.Error(t, err)

	_, err = pathID(newCtx("-1"))
	require.Error(t, err)
}
