package service

import (
	"context"

	"budgetbook/models"

	"golang.org/x/sync/errgroup"
)

// Snapshot 当前用户的全部收入、支出与预算（导出用）
type Snapshot struct {
	Incomes  []models.Income
	Expenses []models.Expense
	Budgets  []models.Budget
}

// Snapshot 并发读取三类记录，任一失败即返回错误
func (l *Ledger) Snapshot(ctx context.Context, id Identity) (*Snapshot, error) {
	if !id.Present() {
		return nil, ErrNoIdentity
	}

	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Incomes, err = l.ListIncome(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Expenses, err = l.ListExpenses(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Budgets, err = l.ListBudgets(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
