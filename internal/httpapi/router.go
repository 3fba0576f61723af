package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scam165/anti-scam-platform/internal/chat"
	"github.com/scam165/anti-scam-platform/internal/common"
	"github.com/scam165/anti-scam-platform/internal/config"
	"github.com/scam165/anti-scam-platform/internal/httpapi/handlers"
	"github.com/scam165/anti-scam-platform/internal/httpapi/middleware"
	"github.com/scam165/anti-scam-platform/internal/store/redisstore"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, cfg config.Config, cache *redisstore.Store, dispatcher chat.Dispatcher) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h := handlers.NewHandler(db, cfg, cache, dispatcher)

	r.GET("/ping", h.Ping)

	// registration and login are the only open endpoints
	r.POST("/users", h.CreateUser)
	r.POST("/login", h.Login)

	authGroup := r.Group("/")
	authGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	authGroup.GET("/me", h.Me)

	authGroup.GET("/articles", h.ListArticles)
	authGroup.GET("/articles/:id", h.GetArticle)

	authGroup.POST("/conversations", h.CreateConversation)
	authGroup.GET("/conversations", h.ListConversations)
	authGroup.GET("/conversations/:id", h.GetConversation)

	adminGroup := authGroup.Group("/")
	adminGroup.Use(middleware.AdminRequired())
	adminGroup.POST("/articles", h.CreateArticle)
	adminGroup.PUT("/articles/:id", h.UpdateArticle)

	return r
}
