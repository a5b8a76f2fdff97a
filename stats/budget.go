package stats

import (
	"math"

	"budgetbook/models"

	"github.com/shopspring/decimal"
)

// Tier 预算进度等级
type Tier string

const (
	TierOK      Tier = "ok"
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
)

// 进度阈值：70 属于 warning，90 属于 danger
const (
	warningThreshold = 70.0
	dangerThreshold  = 90.0
)

// Remaining 预算剩余，超支时为负数
func Remaining(limit, spent decimal.Decimal) decimal.Decimal {
	return limit.Sub(spent)
}

// ProgressPercentage 预算使用百分比，上限 100；limit 为 0 时返回 0
func ProgressPercentage(spent, limit decimal.Decimal) float64 {
	if !limit.IsPositive() {
		return 0
	}
	return math.Min(Share(spent, limit), 100)
}

// ProgressTier 根据百分比给出等级
func ProgressTier(pct float64) Tier {
	switch {
	case pct < warningThreshold:
		return TierOK
	case pct < dangerThreshold:
		return TierWarning
	default:
		return TierDanger
	}
}

// AvailableCategories 尚未设置预算的类别，保持固定顺序
func AvailableCategories(budgets []models.Budget) []models.Category {
	used := make(map[models.Category]struct{}, len(budgets))
	for _, b := range budgets {
		used[b.Category] = struct{}{}
	}
	available := make([]models.Category, 0, len(models.GetCategories()))
	for _, c := range models.GetCategories() {
		if _, ok := used[c]; !ok {
			available = append(available, c)
		}
	}
	return available
}

// BudgetStatus 单个预算的执行情况
type BudgetStatus struct {
	Budget     models.Budget   `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Tier       Tier            `json:"tier"`
}

// BudgetReport 全部预算的执行情况及总体统计
type BudgetReport struct {
	Budgets     []BudgetStatus    `json:"budgets"`
	TotalBudget decimal.Decimal   `json:"total_budget"`
	TotalSpent  decimal.Decimal   `json:"total_spent"`
	Remaining   decimal.Decimal   `json:"remaining"`
	Percentage  float64           `json:"percentage"` // 总体百分比不封顶
	Available   []models.Category `json:"available_categories"`
}

// BuildBudgetReport 汇总预算与支出
func BuildBudgetReport(budgets []models.Budget, expenses []models.Expense) BudgetReport {
	totals := CategoryTotals(expenses)

	report := BudgetReport{
		Budgets:     make([]BudgetStatus, 0, len(budgets)),
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
		Available:   AvailableCategories(budgets),
	}
	for _, b := range budgets {
		spent := totals[b.Category]
		pct := ProgressPercentage(spent, b.MonthlyLimit)
		report.Budgets = append(report.Budgets, BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Remaining:  Remaining(b.MonthlyLimit, spent),
			Percentage: pct,
			Tier:       ProgressTier(pct),
		})
		report.TotalBudget = report.TotalBudget.Add(b.MonthlyLimit)
		report.TotalSpent = report.TotalSpent.Add(spent)
	}
	report.Remaining = Remaining(report.TotalBudget, report.TotalSpent)
	report.Percentage = Share(report.TotalSpent, report.TotalBudget)
	return report
}
