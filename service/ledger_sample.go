package service

import (
	"context"

	"budgetbook/models"
	"budgetbook/stats"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedResult 示例数据写入条数
type SeedResult struct {
	Incomes  int `json:"incomes"`
	Expenses int `json:"expenses"`
	Budgets  int `json:"budgets"`
}

var (
	sampleIncomes = []IncomeInput{
		{Source: "Salary", Amount: decimal.NewFromInt(5000)},
	}
	sampleExpenses = []ExpenseInput{
		{Category: models.CategoryFoodDining, Description: "Grocery Shopping", Amount: decimal.NewFromInt(300)},
		{Category: models.CategoryUtilities, Description: "Electricity Bill", Amount: decimal.NewFromInt(150)},
		{Category: models.CategoryTransport, Description: "Fuel", Amount: decimal.NewFromInt(100)},
	}
	sampleBudgets = []BudgetInput{
		{Category: models.CategoryFoodDining, MonthlyLimit: decimal.NewFromInt(500)},
		{Category: models.CategoryTransport, MonthlyLimit: decimal.NewFromInt(200)},
		{Category: models.CategoryEntertainment, MonthlyLimit: decimal.NewFromInt(100)},
	}
)

// SeedSampleData 写入一组以今天为日期的示例收支，并为尚无预算的类别补充示例预算。
// 在同一事务内完成，任一步失败全部回滚。
func (l *Ledger) SeedSampleData(ctx context.Context, id Identity) (SeedResult, error) {
	var res SeedResult
	if !id.Present() {
		return res, ErrNoIdentity
	}

	today := l.now()
	err := l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		txl := &Ledger{db: tx, now: l.now}

		for _, in := range sampleIncomes {
			in.Date = today
			if _, err := txl.AddIncome(ctx, id, in); err != nil {
				return err
			}
			res.Incomes++
		}
		for _, ex := range sampleExpenses {
			ex.Date = today
			if _, err := txl.AddExpense(ctx, id, ex); err != nil {
				return err
			}
			res.Expenses++
		}

		budgets, err := txl.ListBudgets(ctx, id)
		if err != nil {
			return err
		}
		available := make(map[models.Category]bool)
		for _, c := range stats.AvailableCategories(budgets) {
			available[c] = true
		}
		for _, b := range sampleBudgets {
			if !available[b.Category] {
				continue
			}
			// 唯一索引冲突会中止 PostgreSQL 事务，不能跳过后继续，整体回滚
			if _, err := txl.AddBudget(ctx, id, b); err != nil {
				return err
			}
			res.Budgets++
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
