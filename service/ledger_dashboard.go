package service

import (
	"context"

	"budgetbook/models"
	"budgetbook/stats"

	"golang.org/x/sync/errgroup"
)

// fetchIncomeAndExpenses 并发取收入与支出；一方失败时另一方结果照常返回
func (l *Ledger) fetchIncomeAndExpenses(ctx context.Context, id Identity) ([]models.Income, []models.Expense, error) {
	var (
		incomes  []models.Income
		expenses []models.Expense
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		incomes, err = l.ListIncome(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = l.ListExpenses(ctx, id)
		return err
	})
	err := g.Wait()
	return incomes, expenses, err
}

// GetDashboardTotals 收入合计、支出合计与结余
func (l *Ledger) GetDashboardTotals(ctx context.Context, id Identity) (stats.DashboardTotals, error) {
	incomes, expenses, err := l.fetchIncomeAndExpenses(ctx, id)
	return stats.Totals(incomes, expenses), err
}

// GetRecentTransactions 最近 limit 条收支记录
func (l *Ledger) GetRecentTransactions(ctx context.Context, id Identity, limit int) ([]models.Transaction, error) {
	incomes, expenses, err := l.fetchIncomeAndExpenses(ctx, id)
	return stats.MergeRecent(incomes, expenses, limit), err
}

// GetExpenseSummary 支出总额与分类占比
func (l *Ledger) GetExpenseSummary(ctx context.Context, id Identity) (stats.ExpenseSummary, error) {
	expenses, err := l.ListExpenses(ctx, id)
	return stats.BuildExpenseSummary(expenses), err
}

// GetBudgetReport 预算执行情况
func (l *Ledger) GetBudgetReport(ctx context.Context, id Identity) (stats.BudgetReport, error) {
	var (
		budgets  []models.Budget
		expenses []models.Expense
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		budgets, err = l.ListBudgets(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = l.ListExpenses(ctx, id)
		return err
	})
	err := g.Wait()
	return stats.BuildBudgetReport(budgets, expenses), err
}

// AvailableCategories 还可以设置预算的类别
func (l *Ledger) AvailableCategories(ctx context.Context, id Identity) ([]models.Category, error) {
	budgets, err := l.ListBudgets(ctx, id)
	return stats.AvailableCategories(budgets), err
}
