package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType 交易类型
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction 收入与支出合并后的展示视图，不落库
type Transaction struct {
	ID        uint            `json:"id"`
	Type      TransactionType `json:"type"`
	Title     string          `json:"title"` // 收入取来源，支出取描述
	Category  Category        `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// IncomeTransaction 收入转为交易视图
func IncomeTransaction(in Income) Transaction {
	return Transaction{
		ID:        in.ID,
		Type:      TransactionIncome,
		Title:     in.Source,
		Amount:    in.Amount,
		Date:      in.Date,
		CreatedAt: in.CreatedAt,
	}
}

// ExpenseTransaction 支出转为交易视图
func ExpenseTransaction(ex Expense) Transaction {
	return Transaction{
		ID:        ex.ID,
		Type:      TransactionExpense,
		Title:     ex.Description,
		Category:  ex.Category,
		Amount:    ex.Amount,
		Date:      ex.Date,
		CreatedAt: ex.CreatedAt,
	}
}
