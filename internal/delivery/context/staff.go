package context

import (
	"github.com/labstack/echo/v4"
)

const keyStaff = "staff"

// Staff identifies the authenticated staff member of an admin request.
type Staff struct {
	UserID   int64
	Username string
	Roles    []string
}

// SetStaff stores the authenticated staff member on echo.Context.
func SetStaff(c echo.Context, staff *Staff) {
	c.Set(keyStaff, staff)
}

// GetStaff returns the authenticated staff member, or nil on public routes.
func GetStaff(c echo.Context) *Staff {
	staff, _ := c.Get(keyStaff).(*Staff)

	return staff
}
