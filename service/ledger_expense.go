package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// ExpenseInput 新增支出参数
type ExpenseInput struct {
	Category    models.Category
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// ListExpenses 当前用户的支出，按日期倒序。未登录返回空列表。
func (l *Ledger) ListExpenses(ctx context.Context, id Identity) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if !id.Present() {
		return expenses, nil
	}

	if err := l.conn(ctx).Scopes(ownedBy(id), newestFirst).Find(&expenses).Error; err != nil {
		log.Printf("查询支出失败 user=%d: %v", id.UserID, err)
		return []models.Expense{}, fmt.Errorf("查询支出失败: %w", err)
	}
	return expenses, nil
}

// AddExpense 新增支出
func (l *Ledger) AddExpense(ctx context.Context, id Identity, in ExpenseInput) (*models.Expense, error) {
	if !id.Present() {
		return nil, ErrNoIdentity
	}
	if in.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !in.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	expense := models.Expense{
		UserID:      id.UserID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        models.NewDate(in.Date),
		CreatedAt:   l.now(),
	}
	if err := l.conn(ctx).Create(&expense).Error; err != nil {
		log.Printf("新增支出失败 user=%d: %v", id.UserID, err)
		return nil, fmt.Errorf("新增支出失败: %w", err)
	}
	return &expense, nil
}

// DeleteExpense 按 ID 删除支出
func (l *Ledger) DeleteExpense(ctx context.Context, id Identity, expenseID uint) (bool, error) {
	if !id.Present() {
		return false, ErrNoIdentity
	}
	tx := l.conn(ctx).Scopes(ownedBy(id)).Where("id = ?", expenseID).Delete(&models.Expense{})
	return deleteResult("支出", expenseID, tx)
}
