package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scam165/anti-scam-platform/internal/common"
	"gorm.io/gorm"
)

type createConversationReq struct {
	Question string `json:"question" binding:"required"`
}

func (h *Handler) CreateConversation(c *gin.Context) {
	uid, _, ok := callerFromContext(c)
	if !ok {
		common.Fail(c, http.StatusForbidden, 40300, "forbidden")
		return
	}

	var req createConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	conv, err := h.ChatSvc.Create(c.Request.Context(), uid, req.Question)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create conversation")
		return
	}

	common.Created(c, gin.H{
		"id":       conv.ID,
		"question": conv.Question,
		"status":   conv.Status,
		"task_id":  conv.TaskID,
	})
}

func (h *Handler) ListConversations(c *gin.Context) {
	uid, admin, ok := callerFromContext(c)
	if !ok {
		common.Fail(c, http.StatusForbidden, 40300, "forbidden")
		return
	}

	convs, err := h.ChatSvc.List(c.Request.Context(), uid, admin)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	common.OK(c, convs)
}

func (h *Handler) GetConversation(c *gin.Context) {
	uid, admin, ok := callerFromContext(c)
	if !ok {
		common.Fail(c, http.StatusForbidden, 40300, "forbidden")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.Fail(c, http.StatusNotFound, 40403, "conversation not found")
		return
	}

	conv, err := h.ChatSvc.Get(c.Request.Context(), uid, admin, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40403, "conversation not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	common.OK(c, conv)
}
