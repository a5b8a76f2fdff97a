package api

import (
	"budgetbook/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 支出类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 获取支出类别
// @Summary 获取支出类别
// @Description 固定的 10 个支出类别，顺序固定
// @Tags 类别
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	Success(c, models.GetCategories())
}
