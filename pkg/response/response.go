package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries a stable machine-readable code plus optional details.
type ErrorBody struct {
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func build[T any](ctx *gin.Context, status int, success bool, message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   success,
		Message:   message,
		Data:      data,
	}
}

// Success writes a successful envelope. A zero status means 200.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	resp := build(ctx, status, true, message, data)
	resp.Meta = meta
	ctx.JSON(status, resp)
}

// Error writes a failure envelope. A zero status means 400.
func Error(ctx *gin.Context, status int, message, code string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := build[any](ctx, status, false, message, nil)
	resp.Error = &ErrorBody{Code: code, Details: details}
	ctx.JSON(status, resp)
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(ctx *gin.Context, status int, message, code string, details interface{}) {
	Error(ctx, status, message, code, details)
	ctx.Abort()
}
