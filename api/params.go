package api

import (
	"errors"
	"strconv"
	"time"

	"budgetbook/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidDate = errors.New("日期格式错误，应为: 2006-01-02")

// parseID 解析路径中的 :id
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// parseDate 解析 YYYY-MM-DD，空字符串视为今天
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// toAmount 金额保留两位小数
func toAmount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
