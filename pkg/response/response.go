package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper returned by every API operation.
// Code mirrors the HTTP status: 200 success, 400 validation failure,
// 401 unauthorized, 404 not found, 409 conflict, 500 unhandled error.
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Code:      status,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Code:      status,
		Message:   message,
		Data:      nil,
		Timestamp: time.Now().UnixMilli(),
	})
}
