package api

import (
	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入处理器
type IncomeHandler struct {
	ledger *service.Ledger
}

func NewIncomeHandler(ledger *service.Ledger) *IncomeHandler {
	return &IncomeHandler{ledger: ledger}
}

type CreateIncomeRequest struct {
	Source string   `json:"source" binding:"required,max=100" example:"Salary"`
	Amount *float64 `json:"amount" binding:"required,gte=0" example:"5000.00"`
	Date   string   `json:"date" example:"2024-01-15"` // 为空时取今天
}

// Create 新增收入
// @Summary 新增收入
// @Description 为当前用户新增一条收入记录
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	in, err := h.ledger.AddIncome(c.Request.Context(), middleware.GetCurrentIdentity(c), service.IncomeInput{
		Source: req.Source,
		Amount: toAmount(*req.Amount),
		Date:   date,
	})
	if err != nil {
		respondLedgerError(c, err, "创建收入失败")
		return
	}
	SuccessWithMessage(c, "创建成功", in)
}

// List 收入列表
// @Summary 收入列表
// @Description 当前用户的全部收入，按日期倒序
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Income} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	list, err := h.ledger.ListIncome(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "查询收入失败")
		return
	}
	Success(c, list)
}

// Delete 删除收入
// @Summary 删除收入
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.ledger.DeleteIncome(c.Request.Context(), middleware.GetCurrentIdentity(c), id); err != nil {
		respondLedgerError(c, err, "删除收入失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
