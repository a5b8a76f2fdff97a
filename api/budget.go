package api

import (
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 预算处理器
type BudgetHandler struct {
	ledger *service.Ledger
}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler(ledger *service.Ledger) *BudgetHandler {
	return &BudgetHandler{ledger: ledger}
}

// CreateBudgetRequest 新增预算请求
type CreateBudgetRequest struct {
	Category     models.Category `json:"category" binding:"required" example:"Food & Dining"`
	MonthlyLimit *float64        `json:"monthly_limit" binding:"required,gte=0" example:"500"`
}

// Create 设置预算
// @Summary 设置预算
// @Description 为一个类别设置月度预算，每个类别只能设置一次
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 409 {object} Response "该类别已设置预算"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	budget, err := h.ledger.AddBudget(c.Request.Context(), middleware.GetCurrentIdentity(c), service.BudgetInput{
		Category:     req.Category,
		MonthlyLimit: toAmount(*req.MonthlyLimit),
	})
	if err != nil {
		respondLedgerError(c, err, "创建预算失败")
		return
	}
	SuccessWithMessage(c, "创建成功", budget)
}

// List 预算列表
// @Summary 预算列表
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Budget} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	list, err := h.ledger.ListBudgets(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "查询预算失败")
		return
	}
	Success(c, list)
}

// Report 预算执行情况
// @Summary 预算执行情况
// @Description 每个预算的已花费、剩余、百分比与等级（ok/warning/danger），以及总体统计
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=stats.BudgetReport} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/report [get]
func (h *BudgetHandler) Report(c *gin.Context) {
	report, err := h.ledger.GetBudgetReport(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "统计预算失败")
		return
	}
	Success(c, report)
}

// AvailableCategories 可设置预算的类别
// @Summary 可设置预算的类别
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/available-categories [get]
func (h *BudgetHandler) AvailableCategories(c *gin.Context) {
	cats, err := h.ledger.AvailableCategories(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "查询可用类别失败")
		return
	}
	Success(c, cats)
}

// Delete 删除预算
// @Summary 删除预算
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.ledger.DeleteBudget(c.Request.Context(), middleware.GetCurrentIdentity(c), id); err != nil {
		respondLedgerError(c, err, "删除预算失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
