package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"budgetbook/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetInput 新增预算参数
type BudgetInput struct {
	Category     models.Category
	MonthlyLimit decimal.Decimal
}

// ListBudgets 当前用户的预算，按创建顺序。未登录返回空列表。
func (l *Ledger) ListBudgets(ctx context.Context, id Identity) ([]models.Budget, error) {
	budgets := []models.Budget{}
	if !id.Present() {
		return budgets, nil
	}

	if err := l.conn(ctx).Scopes(ownedBy(id)).Order("id ASC").Find(&budgets).Error; err != nil {
		log.Printf("查询预算失败 user=%d: %v", id.UserID, err)
		return []models.Budget{}, fmt.Errorf("查询预算失败: %w", err)
	}
	return budgets, nil
}

// AddBudget 为类别设置月度预算，同一类别只能设置一次
func (l *Ledger) AddBudget(ctx context.Context, id Identity, in BudgetInput) (*models.Budget, error) {
	if !id.Present() {
		return nil, ErrNoIdentity
	}
	if in.MonthlyLimit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !in.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	var existing models.Budget
	err := l.conn(ctx).Scopes(ownedBy(id)).Where("category = ?", in.Category).First(&existing).Error
	if err == nil {
		return nil, ErrBudgetExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("检查预算失败 user=%d: %v", id.UserID, err)
		return nil, fmt.Errorf("检查预算失败: %w", err)
	}

	budget := models.Budget{
		UserID:       id.UserID,
		Category:     in.Category,
		MonthlyLimit: in.MonthlyLimit,
		CreatedAt:    l.now(),
	}
	if err := l.conn(ctx).Create(&budget).Error; err != nil {
		// 并发设置同一类别时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrBudgetExists
		}
		log.Printf("新增预算失败 user=%d: %v", id.UserID, err)
		return nil, fmt.Errorf("新增预算失败: %w", err)
	}
	return &budget, nil
}

// DeleteBudget 按 ID 删除预算（物理删除）
func (l *Ledger) DeleteBudget(ctx context.Context, id Identity, budgetID uint) (bool, error) {
	if !id.Present() {
		return false, ErrNoIdentity
	}
	tx := l.conn(ctx).Scopes(ownedBy(id)).Where("id = ?", budgetID).Delete(&models.Budget{})
	return deleteResult("预算", budgetID, tx)
}
