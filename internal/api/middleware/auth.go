package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sujithrababu/attendance-system/pkg/jwt"
	"github.com/Sujithrababu/attendance-system/pkg/redis"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxClaims = "claims"
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth validates the Bearer token and stores its claims in the request
// context. Refresh tokens are not accepted on API routes. When Redis is
// available, revoked tokens are rejected; a blacklist lookup failure does not
// block the request.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			msg := "invalid token"
			if err == jwt.ErrTokenExpired {
				msg = "token expired"
			}
			response.Unauthorized(c, 10002, msg)
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "access token required")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RoleAuth restricts a route to the given roles. Must run after JWTAuth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, 10003, "insufficient permissions")
		c.Abort()
	}
}
