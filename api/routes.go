package api

import (
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"

	"github.com/chatterbox-hq/chatterbox-backend/api/middleware"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
)

const maxRequestBodySize = 1 * 1024 * 1024 // 1MB

func addRoutes(r *gin.Engine, conf Configuration, auth Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", middleware.MetricsHandler())
	}

	r.POST("/register", limits.RequestSizeLimiter(maxRequestBodySize), handleRegister(uc))
	r.POST("/login", limits.RequestSizeLimiter(maxRequestBodySize), handleLogin(conf, uc))

	router := r.Use(auth.Middleware)

	router.POST("/logout", handleLogout(conf, uc))
	router.GET("/credentials", handleGetCredentials())

	router.GET("/messages", handleListMessages(uc))
	router.POST("/messages", limits.RequestSizeLimiter(maxRequestBodySize), handlePostMessage(uc))

	router.GET("/users/me", handleGetCurrentUser(uc))
	router.PATCH("/users/me", limits.RequestSizeLimiter(maxRequestBodySize), handlePatchCurrentUser(uc))
	router.GET("/users/:username", handleGetUserProfile(uc))
}
