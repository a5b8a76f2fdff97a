package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget 类别月度预算
// (user_id, category) 唯一；删除为物理删除，删除后可重新设置同一类别
type Budget struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_budget_user_category"`
	Category     Category        `json:"category" gorm:"size:50;not null;uniqueIndex:idx_budget_user_category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
	User         User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}
