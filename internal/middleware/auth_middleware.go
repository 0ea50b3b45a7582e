package middleware

import (
	"net/http"

	"horeca_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuthMiddleware.
const (
	CtxBusinessID = "businessID"
	CtxHorecaName = "horecaName"
	CtxEmail      = "email"
)

// SessionAuthMiddleware creates a Gin middleware that authenticates requests
// via the session cookie. On success the business identity from the token is
// placed into the request context; handlers must take the tenant id from
// there and never from request input.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(utils.SessionCookieName)
		if err != nil || tokenString == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired session.", ""))
			return
		}

		c.Set(CtxBusinessID, claims.BusinessID)
		c.Set(CtxHorecaName, claims.HorecaName)
		c.Set(CtxEmail, claims.Email)

		c.Next()
	}
}

// BusinessIDFromContext extracts the authenticated tenant id set by
// SessionAuthMiddleware.
func BusinessIDFromContext(c *gin.Context) (int64, bool) {
	raw, exists := c.Get(CtxBusinessID)
	if !exists {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok
}
