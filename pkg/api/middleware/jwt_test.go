package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/pkg/auth"
	"github.com/horeca-prospection/backend/pkg/models"
)

const testSecret = "test-secret"

func runRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.Success(nil))
	})
	require.NoError(t, handler(c))
	return rec, c
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	return env.Message
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, _ := runRequest(t, Authenticate(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header is required", errorMessage(t, rec))
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	rec, _ := runRequest(t, Authenticate(testSecret), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header must be 'Bearer {token}'", errorMessage(t, rec))
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateAccessToken(uuid.New(), "rep@test.fr", "rep", uuid.New(), testSecret, -1)
	require.NoError(t, err)

	rec, _ := runRequest(t, Authenticate(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired", errorMessage(t, rec))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	rec, _ := runRequest(t, Authenticate(testSecret), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rec))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()
	token, err := auth.GenerateAccessToken(userID, "rep@test.fr", "rep", companyID, testSecret, 15)
	require.NoError(t, err)

	rec, c := runRequest(t, Authenticate(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("user_id"))
	assert.Equal(t, "rep@test.fr", c.Get("user_email"))
	assert.Equal(t, "rep", c.Get("user_role"))
	assert.Equal(t, companyID, c.Get("company_id"))
}

func TestAuthorize(t *testing.T) {
	e := echo.New()

	run := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_role", role)

		handler := Authorize("admin", "manager")(func(c echo.Context) error {
			return c.JSON(http.StatusOK, models.Success(nil))
		})
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, run("admin").Code)
	assert.Equal(t, http.StatusOK, run("manager").Code)
	assert.Equal(t, http.StatusForbidden, run("rep").Code)
	assert.Equal(t, http.StatusForbidden, run("").Code)
}

func TestOptionalAuth(t *testing.T) {
	// Anonymous requests pass through
	rec, c := runRequest(t, OptionalAuth(testSecret), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, c.Get("user_id"))

	// Bad tokens are ignored rather than rejected
	rec, c = runRequest(t, OptionalAuth(testSecret), "Bearer garbage")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, c.Get("user_id"))

	// Valid tokens populate the context
	userID := uuid.New()
	token, err := auth.GenerateAccessToken(userID, "rep@test.fr", "rep", uuid.New(), testSecret, 15)
	require.NoError(t, err)

	rec, c = runRequest(t, OptionalAuth(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("user_id"))
}
