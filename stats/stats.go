// Package stats 对已取出的记录做纯内存聚合：合计、分类汇总、占比、预算进度
package stats

import (
	"budgetbook/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SumIncome 收入合计
func SumIncome(incomes []models.Income) decimal.Decimal {
	total := decimal.Zero
	for _, in := range incomes {
		total = total.Add(in.Amount)
	}
	return total
}

// SumExpenses 支出合计
func SumExpenses(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, ex := range expenses {
		total = total.Add(ex.Amount)
	}
	return total
}

// CategoryTotals 一次遍历得到 类别 -> 合计，固定类别总会出现（无支出时为 0）
func CategoryTotals(expenses []models.Expense) map[models.Category]decimal.Decimal {
	cats := models.GetCategories()
	totals := make(map[models.Category]decimal.Decimal, len(cats))
	for _, c := range cats {
		totals[c] = decimal.Zero
	}
	for _, ex := range expenses {
		totals[ex.Category] = totals[ex.Category].Add(ex.Amount)
	}
	return totals
}

// CategoryTotal 指定类别的支出合计
func CategoryTotal(expenses []models.Expense, category models.Category) decimal.Decimal {
	return CategoryTotals(expenses)[category]
}

// Share part 占 total 的百分比，total 为 0 时返回 0
func Share(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(hundred).InexactFloat64()
}

// CategoryStat 单个类别的支出汇总
type CategoryStat struct {
	Category   models.Category `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage float64         `json:"percentage"`
}

// ExpenseSummary 支出汇总：总额 + 按固定类别顺序的分类占比
type ExpenseSummary struct {
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryStat  `json:"categories"`
}

// BuildExpenseSummary 生成支出汇总
func BuildExpenseSummary(expenses []models.Expense) ExpenseSummary {
	totals := CategoryTotals(expenses)
	total := SumExpenses(expenses)

	cats := models.GetCategories()
	summary := ExpenseSummary{
		Total:      total,
		Categories: make([]CategoryStat, 0, len(cats)),
	}
	for _, c := range cats {
		summary.Categories = append(summary.Categories, CategoryStat{
			Category:   c,
			Total:      totals[c],
			Percentage: Share(totals[c], total),
		})
	}
	return summary
}
