package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// IncomeInput 新增收入参数
type IncomeInput struct {
	Source string
	Amount decimal.Decimal
	Date   time.Time
}

// ListIncome 当前用户的收入，按日期倒序。未登录返回空列表。
func (l *Ledger) ListIncome(ctx context.Context, id Identity) ([]models.Income, error) {
	incomes := []models.Income{}
	if !id.Present() {
		return incomes, nil
	}

	if err := l.conn(ctx).Scopes(ownedBy(id), newestFirst).Find(&incomes).Error; err != nil {
		log.Printf("查询收入失败 user=%d: %v", id.UserID, err)
		return []models.Income{}, fmt.Errorf("查询收入失败: %w", err)
	}
	return incomes, nil
}

// AddIncome 新增收入，返回带 ID 的记录
func (l *Ledger) AddIncome(ctx context.Context, id Identity, in IncomeInput) (*models.Income, error) {
	if !id.Present() {
		return nil, ErrNoIdentity
	}
	if in.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	income := models.Income{
		UserID:    id.UserID,
		Source:    in.Source,
		Amount:    in.Amount,
		Date:      models.NewDate(in.Date),
		CreatedAt: l.now(),
	}
	if err := l.conn(ctx).Create(&income).Error; err != nil {
		log.Printf("新增收入失败 user=%d: %v", id.UserID, err)
		return nil, fmt.Errorf("新增收入失败: %w", err)
	}
	return &income, nil
}

// DeleteIncome 按 ID 删除收入
func (l *Ledger) DeleteIncome(ctx context.Context, id Identity, incomeID uint) (bool, error) {
	if !id.Present() {
		return false, ErrNoIdentity
	}
	tx := l.conn(ctx).Scopes(ownedBy(id)).Where("id = ?", incomeID).Delete(&models.Income{})
	return deleteResult("收入", incomeID, tx)
}
