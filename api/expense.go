package api

import (
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出处理器
type ExpenseHandler struct {
	ledger *service.Ledger
}

// NewExpenseHandler 创建支出处理器
func NewExpenseHandler(ledger *service.Ledger) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// CreateExpenseRequest 新增支出请求
type CreateExpenseRequest struct {
	Category    models.Category `json:"category" binding:"required" example:"Food & Dining"`
	Description string          `json:"description" binding:"required,max=255" example:"Grocery Shopping"`
	Amount      *float64        `json:"amount" binding:"required,gte=0" example:"99.99"`
	Date        string          `json:"date" example:"2024-01-15"` // 为空时取今天
}

// Create 新增支出
// @Summary 新增支出
// @Description 为当前用户新增一条支出记录，类别必须是固定类别之一
// @Tags 支出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expense, err := h.ledger.AddExpense(c.Request.Context(), middleware.GetCurrentIdentity(c), service.ExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      toAmount(*req.Amount),
		Date:        date,
	})
	if err != nil {
		respondLedgerError(c, err, "创建支出失败")
		return
	}
	SuccessWithMessage(c, "创建成功", expense)
}

// List 支出列表
// @Summary 支出列表
// @Description 当前用户的全部支出，按日期倒序
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.ledger.ListExpenses(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "查询支出失败")
		return
	}
	Success(c, list)
}

// Summary 支出汇总
// @Summary 支出汇总
// @Description 支出总额及每个固定类别的金额与占比
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=stats.ExpenseSummary} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses/summary [get]
func (h *ExpenseHandler) Summary(c *gin.Context) {
	summary, err := h.ledger.GetExpenseSummary(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "统计支出失败")
		return
	}
	Success(c, summary)
}

// Delete 删除支出
// @Summary 删除支出
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.ledger.DeleteExpense(c.Request.Context(), middleware.GetCurrentIdentity(c), id); err != nil {
		respondLedgerError(c, err, "删除支出失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
