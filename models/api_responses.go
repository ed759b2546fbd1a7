package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Context keys shared between middleware, services and response helpers.
const (
	ContextKeyRateLimiter  = "rateLimiter"
	ContextKeyNotification = "notification"
	ContextKeySession      = "session"
)

type ApiResponse struct {
	Message         string        `json:"message"`
	Data            any           `json:"data,omitempty"`
	Error           bool          `json:"error,omitempty"`
	Meta            *ResultMeta   `json:"meta"`
	Rate            *RateLimiter  `json:"rate_limit,omitempty"`
	RequestedEntity string        `json:"requested_entity,omitempty"`
	Notification    *Notification `json:"notification,omitempty"`
}

// ResultMeta describes a result set. There is no pagination; Total is the
// number of items returned.
type ResultMeta struct {
	Total int `json:"total" example:"6"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get(ContextKeyRateLimiter); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func getNotificationFromContext(c *gin.Context) *Notification {
	if c == nil {
		return nil
	}
	if n, exists := c.Get(ContextKeyNotification); exists {
		if note, ok := n.(*Notification); ok {
			return note
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
		Notification:    getNotificationFromContext(c),
	}
}

func ListResponse(c *gin.Context, message string, data any, total int) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            &ResultMeta{Total: total},
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
		Notification:    getNotificationFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
		Notification:    getNotificationFromContext(c),
	}
}

// ErrorResponseWithData is ErrorResponse carrying a payload, used for display
// branches such as "product not found" that still need links.
func ErrorResponseWithData(c *gin.Context, message string, data any) ApiResponse {
	resp := ErrorResponse(c, message)
	resp.Data = data
	return resp
}
