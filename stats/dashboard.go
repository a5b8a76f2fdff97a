package stats

import (
	"sort"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// DashboardTotals 仪表盘合计
type DashboardTotals struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// Totals 收入、支出合计及结余
func Totals(incomes []models.Income, expenses []models.Expense) DashboardTotals {
	income := SumIncome(incomes)
	expense := SumExpenses(expenses)
	return DashboardTotals{
		TotalIncome:   income,
		TotalExpenses: expense,
		Balance:       income.Sub(expense),
	}
}

// MergeRecent 合并收入与支出并按日期倒序取前 limit 条。
// 先放收入再放支出后做稳定排序：同一天收入排在支出前，各自保持传入顺序。
func MergeRecent(incomes []models.Income, expenses []models.Expense, limit int) []models.Transaction {
	if limit <= 0 {
		return []models.Transaction{}
	}

	all := make([]models.Transaction, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		all = append(all, models.IncomeTransaction(in))
	}
	for _, ex := range expenses {
		all = append(all, models.ExpenseTransaction(ex))
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date.Time)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}
