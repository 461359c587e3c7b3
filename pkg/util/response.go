package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

func HandleSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
		Meta:    nil,
	})
}

func HandleSuccessMeta(c *gin.Context, statusCode int, message string, data, meta interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

type ErrorResponse struct {
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	Status int               `json:"status"`
}

func HandleError(c *gin.Context, statusCode int, err error) {
	Logger.Warn("request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", statusCode),
		zap.Error(err))
	c.JSON(statusCode, ErrorResponse{
		Error:  err.Error(),
		Status: statusCode,
	})
}

// HandleFieldErrors responds with per-field validation messages.
func HandleFieldErrors(c *gin.Context, statusCode int, message string, fields map[string]string) {
	Logger.Debug("validation failed",
		zap.String("path", c.FullPath()),
		zap.Any("fields", fields))
	c.JSON(statusCode, ErrorResponse{
		Error:  message,
		Fields: fields,
		Status: statusCode,
	})
}

type PaginationArgs struct {
	Sort  string
	Limit int
	Skip  int
}

type Pagination struct {
	Limit int   `json:"limit"`
	Skip  int   `json:"skip"`
	Count int64 `json:"count"`
}

// Page slices items per args. A limit <= 0 returns everything after skip.
func Page[T any](items []T, args PaginationArgs) []T {
	skip := min(max(args.Skip, 0), len(items))
	end := len(items)
	if args.Limit > 0 && skip+args.Limit < end {
		end = skip + args.Limit
	}
	return items[skip:end]
}
