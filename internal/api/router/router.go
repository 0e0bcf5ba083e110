// Package router assembles the gin engine: middleware chain, health and
// metrics endpoints, and the /api/v1 route groups.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/config"
	"github.com/Sujithrababu/attendance-system/internal/api/handler"
	"github.com/Sujithrababu/attendance-system/internal/api/middleware"
	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/pkg/jwt"
	"github.com/Sujithrababu/attendance-system/pkg/redis"
)

// New builds the HTTP engine.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(&cfg.Server.CORS))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.JWTAuth(jwtMgr, rdb)
	studentOnly := middleware.RoleAuth(model.RoleStudent)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	uploadLimit := middleware.BodyLimit(cfg.Upload.MaxSizeMB << 20)

	v1 := r.Group("/api/v1")
	{
		// the recognition preview is the kiosk's pre-mark check
		v1.POST("/recognize", uploadLimit, h.Attendance.Recognize)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login",
				middleware.RateLimit(rdb, logger, 10, time.Minute),
				h.Auth.Login,
			)
			authGroup.POST("/logout", auth, h.Auth.Logout)
			authGroup.GET("/me", auth, h.Auth.Me)
		}

		v1.GET("/activities", auth, h.Activity.List)

		student := v1.Group("/student", auth, studentOnly)
		{
			student.GET("/dashboard", h.Dashboard.Student)
			student.POST("/attendance", uploadLimit, h.Attendance.Mark)
			student.GET("/od-requests", h.OD.ListMine)
			student.POST("/od-requests", uploadLimit, h.OD.Submit)
		}

		admin := v1.Group("/admin", auth, adminOnly)
		{
			admin.GET("/dashboard", h.Dashboard.Admin)
			admin.GET("/od-requests", h.OD.List)
			admin.GET("/od-requests/:id", h.OD.Get)
			admin.POST("/od-requests/:id/approve", h.OD.Approve)
			admin.POST("/od-requests/:id/reject", h.OD.Reject)
			admin.GET("/export/attendance", h.Export.Attendance)
		}
	}

	return r
}
