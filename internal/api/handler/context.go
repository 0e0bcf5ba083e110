package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sujithrababu/attendance-system/internal/api/middleware"
	"github.com/Sujithrababu/attendance-system/pkg/jwt"
)

// currentClaims returns the JWT claims set by the auth middleware.
// Only called on authenticated routes, where the middleware guarantees them.
func currentClaims(c *gin.Context) *jwt.Claims {
	v, _ := c.Get(middleware.CtxClaims)
	claims, _ := v.(*jwt.Claims)
	return claims
}

// currentUserID returns the authenticated user's id.
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}
