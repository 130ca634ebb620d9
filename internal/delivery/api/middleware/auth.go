package middleware

import (
	"slices"
	"strconv"
	"strings"

	deliverycontext "studio/internal/delivery/context"
	domainerrors "studio/internal/domain/errors"
	"studio/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the staff identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails(err.Error())
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid subject")
		}

		deliverycontext.SetStaff(c, &deliverycontext.Staff{
			UserID:   userID,
			Username: claims.Username,
			Roles:    claims.Roles,
		})

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			staff := deliverycontext.GetStaff(c)
			if staff == nil || !slices.Contains(staff.Roles, requiredRole) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
