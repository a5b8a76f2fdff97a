package api

import (
	"strconv"

	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

const maxRecentLimit = 100

// DashboardHandler 首页统计处理器
type DashboardHandler struct {
	ledger       *service.Ledger
	defaultLimit int
}

// NewDashboardHandler 创建首页统计处理器，defaultLimit 为最近记录默认条数
func NewDashboardHandler(ledger *service.Ledger, defaultLimit int) *DashboardHandler {
	if defaultLimit <= 0 {
		defaultLimit = 5
	}
	return &DashboardHandler{ledger: ledger, defaultLimit: defaultLimit}
}

// Totals 收支合计
// @Summary 收支合计
// @Description 总收入、总支出与结余（收入 - 支出）
// @Tags 首页
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=stats.DashboardTotals} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/dashboard/totals [get]
func (h *DashboardHandler) Totals(c *gin.Context) {
	totals, err := h.ledger.GetDashboardTotals(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "统计失败")
		return
	}
	Success(c, totals)
}

// Recent 最近收支
// @Summary 最近收支
// @Description 合并收入与支出按日期倒序取前 limit 条，同一天收入在前
// @Tags 首页
// @Produce json
// @Security BearerAuth
// @Param limit query int false "条数" default(5)
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/dashboard/recent [get]
func (h *DashboardHandler) Recent(c *gin.Context) {
	limit := h.defaultLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			BadRequest(c, "limit 必须是非负整数")
			return
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	list, err := h.ledger.GetRecentTransactions(c.Request.Context(), middleware.GetCurrentIdentity(c), limit)
	if err != nil {
		respondLedgerError(c, err, "查询最近记录失败")
		return
	}
	Success(c, list)
}
