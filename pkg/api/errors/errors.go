package errors

import (
	"log"
	"net/http"

	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/labstack/echo/v4"
)

// BadRequestError returns a 400 with the given message
func BadRequestError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.Error(message))
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.Error("Invalid request data. Please check your input and try again."))
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	log.Printf("[DATABASE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.Error("A database error occurred. Please try again later."))
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.Error("An internal error occurred. Please try again later."))
}

// UnauthorizedError returns a 401 with the given message
func UnauthorizedError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, models.Error(message))
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context) error {
	return c.JSON(http.StatusForbidden, models.Error("You do not have permission to access this resource."))
}

// NotFoundError returns a 404 for the named resource
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.Error(resource+" not found"))
}

// ConflictError returns a 409 with the given message
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.Error(message))
}
