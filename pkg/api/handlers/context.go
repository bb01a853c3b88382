package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's id from the context
func currentUserID(c echo.Context) uuid.UUID {
	id, _ := c.Get("user_id").(uuid.UUID)
	return id
}

// currentUserRole returns the authenticated user's role from the context
func currentUserRole(c echo.Context) string {
	role, _ := c.Get("user_role").(string)
	return role
}

// currentCompanyID returns the authenticated user's company from the context
func currentCompanyID(c echo.Context) uuid.UUID {
	id, _ := c.Get("company_id").(uuid.UUID)
	return id
}
