package api

import (
	"errors"
	"log"

	"budgetbook/config"
	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// respondLedgerError 把门面返回的错误映射为 HTTP 状态码
func respondLedgerError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNoIdentity):
		Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidCategory):
		BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrBudgetExists):
		Conflict(c, err.Error())
	default:
		log.Printf("[%s] %s: %v", middleware.GetRequestID(c), fallback, err)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
