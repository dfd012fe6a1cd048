package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parfum/internal/delivery/http/validator"
	"parfum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	registered *usecase.RegisterInput
	loginOut   *usecase.LoginOutput
}

func (s *stubAuthUsecase) Register(_ context.Context, input *usecase.RegisterInput) error {
	s.registered = input

	return nil
}

func (s *stubAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, nil
}

func newAuthContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New(nil)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_RespondsOK(t *testing.T) {
	uc := &stubAuthUsecase{}
	c, rec := newAuthContext(t, "/auth/register", `{"email":"admin@example.com","password":"Str0ng!Pass"}`)

	err := NewAuthHandler(uc).Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"statusCode":200`)

	require.NotNil(t, uc.registered)
	assert.Equal(t, "admin@example.com", uc.registered.Email)
}

func TestAuthHandler_Register_WeakPasswordRejected(t *testing.T) {
	uc := &stubAuthUsecase{}
	c, _ := newAuthContext(t, "/auth/register", `{"email":"admin@example.com","password":"weak"}`)

	err := NewAuthHandler(uc).Register(c)

	require.Error(t, err)
	assert.Nil(t, uc.registered)
}

func TestAuthHandler_Login_RespondsOK(t *testing.T) {
	uc := &stubAuthUsecase{
		loginOut: &usecase.LoginOutput{
			Token: "signed.jwt.token",
			User:  usecase.UserSummary{ID: 7, Email: "admin@example.com"},
		},
	}
	c, rec := newAuthContext(t, "/auth/login", `{"email":"admin@example.com","password":"Str0ng!Pass"}`)

	err := NewAuthHandler(uc).Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}
