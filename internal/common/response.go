package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Uniform JSON envelope. code 0 means success; non-zero codes are
// application error codes (1xxxx validation, 2xxxx internal,
// 4xxxx resource/authorization).

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "ok",
		"data":    data,
	})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "ok",
		"data":    data,
	})
}

func Fail(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
		"data":    nil,
	})
}
