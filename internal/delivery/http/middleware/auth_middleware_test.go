package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/delivery/http/response"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID uint, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/brands", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return response.Success(c, http.StatusOK, nil, "ok")
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

	return c, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := &mockTokenService{}
	claims := &service.Claims{UserID: 7, Email: "admin@example.com"}
	tokenSvc.On("Validate", "good-token").Return(claims, nil)

	c, err := runAuthenticate(t, tokenSvc, "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, claims, c.Get(string(deliverycontext.KeyUserClaims)))
	assert.Equal(t, claims, deliverycontext.GetUserClaims(c.Request().Context()))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := &mockTokenService{}

	_, err := runAuthenticate(t, tokenSvc, "")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "you are not authenticated", appErr.Message())
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := &mockTokenService{}

	_, err := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := &mockTokenService{}
	tokenSvc.On("Validate", "stale-token").Return(nil, service.ErrTokenExpired)

	_, err := runAuthenticate(t, tokenSvc, "Bearer stale-token")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "the token has expired", appErr.Message())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := &mockTokenService{}
	tokenSvc.On("Validate", "forged-token").Return(nil, service.ErrTokenInvalid)

	_, err := runAuthenticate(t, tokenSvc, "Bearer forged-token")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "invalid token", appErr.Message())
}
