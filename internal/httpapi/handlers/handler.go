package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/scam165/anti-scam-platform/internal/article"
	"github.com/scam165/anti-scam-platform/internal/chat"
	"github.com/scam165/anti-scam-platform/internal/common"
	"github.com/scam165/anti-scam-platform/internal/config"
	"github.com/scam165/anti-scam-platform/internal/httpapi/middleware"
	"github.com/scam165/anti-scam-platform/internal/store/redisstore"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Cfg      config.Config
	Cache    *redisstore.Store // nil disables caching
	Articles *article.Repo
	ChatSvc  *chat.Service
}

func NewHandler(db *gorm.DB, cfg config.Config, cache *redisstore.Store, dispatcher chat.Dispatcher) *Handler {
	return &Handler{
		DB:       db,
		Cfg:      cfg,
		Cache:    cache,
		Articles: article.NewRepo(db),
		ChatSvc:  chat.NewService(chat.NewRepo(db), dispatcher),
	}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}

func callerFromContext(c *gin.Context) (uint64, bool, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return 0, false, false
	}
	id, ok := v.(uint64)
	if !ok {
		return 0, false, false
	}
	isAdmin, _ := c.Get(middleware.IsAdminKey)
	admin, _ := isAdmin.(bool)
	return id, admin, true
}
