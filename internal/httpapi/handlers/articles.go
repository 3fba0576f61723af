package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scam165/anti-scam-platform/internal/article"
	"github.com/scam165/anti-scam-platform/internal/common"
	"gorm.io/gorm"
)

func (h *Handler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, err := h.Cache.GetArticleList(ctx); err == nil {
			common.OK(c, json.RawMessage(cached))
			return
		}
	}

	arts, err := h.Articles.List(ctx)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	if h.Cache != nil {
		if body, err := json.Marshal(arts); err == nil {
			_ = h.Cache.SetArticleList(ctx, string(body))
		}
	}

	common.OK(c, arts)
}

func (h *Handler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40402, "article not found")
		return
	}

	a, err := h.Articles.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40402, "article not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	common.OK(c, a)
}

type articleWriteReq struct {
	Title   string    `json:"title" binding:"required"`
	Time    time.Time `json:"time" binding:"required"`
	Content string    `json:"content" binding:"required"`
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req articleWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	a := &article.Article{
		Title:   req.Title,
		Time:    req.Time,
		Content: req.Content,
	}
	if err := h.Articles.Create(c.Request.Context(), a); err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	if h.Cache != nil {
		_ = h.Cache.InvalidateArticleList(c.Request.Context())
	}

	common.Created(c, a)
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40402, "article not found")
		return
	}

	var req articleWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	// id comes from the path only; the body cannot move the record
	a, err := h.Articles.UpdateFields(c.Request.Context(), id, req.Title, req.Time, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40402, "article not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	if h.Cache != nil {
		_ = h.Cache.InvalidateArticleList(c.Request.Context())
	}

	common.OK(c, a)
}
