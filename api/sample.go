package api

import (
	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// SampleDataHandler 示例数据处理器
type SampleDataHandler struct {
	ledger *service.Ledger
}

func NewSampleDataHandler(ledger *service.Ledger) *SampleDataHandler {
	return &SampleDataHandler{ledger: ledger}
}

// Seed 写入示例数据
// @Summary 写入示例数据
// @Description 写入一条收入、三条支出（日期为今天），并为尚未设置预算的类别补充示例预算
// @Tags 示例数据
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.SeedResult} "写入成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/sample-data [post]
func (h *SampleDataHandler) Seed(c *gin.Context) {
	res, err := h.ledger.SeedSampleData(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "写入示例数据失败")
		return
	}
	SuccessWithMessage(c, "示例数据已添加", res)
}
