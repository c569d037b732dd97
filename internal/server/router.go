package server

import (
	"net/http"

	"crm-backend/internal/config"
	"crm-backend/internal/handlers"
	"crm-backend/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("crm_session", store))

	api := r.Group("/api")

	// AUTH; logout нарочно не под guard'ом — чистить пустую сессию можно
	api.POST("/login", handlers.Login)
	api.POST("/logout", handlers.Logout)

	auth := api.Group("")
	auth.Use(middleware.RequireAuth())

	// ПРОФИЛЬ
	auth.GET("/user/info", handlers.UserInfo)
	auth.POST("/user/update", handlers.UpdateUser)

	// КЛИЕНТЫ
	auth.GET("/customers", handlers.ListCustomers)
	auth.POST("/customers", handlers.CreateCustomer)
	auth.GET("/customers/:id", handlers.GetCustomer)
	auth.PUT("/customers/:id", handlers.UpdateCustomer)
	auth.DELETE("/customers/:id", handlers.DeleteCustomer)

	// ИСТОРИЯ КОНТАКТОВ
	auth.GET("/followups", handlers.ListFollowups)
	auth.POST("/followups", handlers.CreateFollowup)
	auth.DELETE("/followups/:id", handlers.DeleteFollowup)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
