package service

import (
	"context"
	"errors"
	"testing"

	"budgetbook/models"
	"budgetbook/stats"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// expectScenario 收入 5000，支出 300/150/100
func expectScenario(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT .* FROM `income`").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(1, 1, "Salary", "5000.00", day("2024-01-01"), fixedNow, nil))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(4, 1, "Transportation", "Fuel", "100.00", day("2024-01-02"), fixedNow, nil).
			AddRow(3, 1, "Utilities", "Electricity Bill", "150.00", day("2024-01-02"), fixedNow, nil).
			AddRow(2, 1, "Food & Dining", "Grocery Shopping", "300.00", day("2024-01-03"), fixedNow, nil))
}

func TestGetDashboardTotals(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)
	expectScenario(mock)

	totals, err := l.GetDashboardTotals(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "5000", totals.TotalIncome.String())
	assert.Equal(t, "550", totals.TotalExpenses.String())
	assert.Equal(t, "4450", totals.Balance.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardTotals_NoIdentity(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	totals, err := l.GetDashboardTotals(context.Background(), nobody)
	require.NoError(t, err)
	assert.True(t, totals.TotalIncome.IsZero())
	assert.True(t, totals.Balance.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardTotals_PartialFailure(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT .* FROM `income`").
		WillReturnError(errors.New("timeout"))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(2, 1, "Food & Dining", "Lunch", "20.00", day("2024-01-03"), fixedNow, nil))

	totals, err := l.GetDashboardTotals(context.Background(), alice)
	assert.Error(t, err)
	assert.True(t, totals.TotalIncome.IsZero())
	assert.Equal(t, "20", totals.TotalExpenses.String())
	assert.Equal(t, "-20", totals.Balance.String())
}

func TestGetRecentTransactions(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)
	expectScenario(mock)

	recent, err := l.GetRecentTransactions(context.Background(), alice, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, models.TransactionExpense, recent[0].Type)
	assert.Equal(t, "Grocery Shopping", recent[0].Title)
	assert.Equal(t, models.TransactionExpense, recent[1].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExpenseSummary(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(2, 1, "Food & Dining", "Grocery Shopping", "300.00", day("2024-01-03"), fixedNow, nil).
			AddRow(3, 1, "Utilities", "Electricity Bill", "100.00", day("2024-01-02"), fixedNow, nil))

	summary, err := l.GetExpenseSummary(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "400", summary.Total.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBudgetReport(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows(budgetColumns).
			AddRow(1, 1, "Food & Dining", "500.00", fixedNow))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(2, 1, "Food & Dining", "Grocery Shopping", "450.00", day("2024-01-03"), fixedNow, nil))

	report, err := l.GetBudgetReport(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, report.Budgets, 1)
	assert.Equal(t, stats.TierDanger, report.Budgets[0].Tier)
	assert.InDelta(t, 90.0, report.Budgets[0].Percentage, 1e-9)
	assert.Equal(t, "50", report.Remaining.String())
	assert.Len(t, report.Available, len(models.GetCategories())-1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableCategories(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows(budgetColumns).
			AddRow(1, 1, "Food & Dining", "500.00", fixedNow).
			AddRow(2, 1, "Other", "50.00", fixedNow))

	cats, err := l.AvailableCategories(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, cats, 8)
	assert.NotContains(t, cats, models.CategoryFoodDining)
	assert.NotContains(t, cats, models.CategoryOther)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `income`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(3, 1))
	// 已有 Food & Dining 预算
	mock.ExpectQuery("SELECT .* FROM `budgets` WHERE user_id = \\? ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows(budgetColumns).
			AddRow(1, 1, "Food & Dining", "800.00", fixedNow))
	mock.ExpectQuery("SELECT .* FROM `budgets` WHERE user_id = \\? AND category = \\?").
		WillReturnRows(sqlmock.NewRows(budgetColumns))
	mock.ExpectExec("INSERT INTO `budgets`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery("SELECT .* FROM `budgets` WHERE user_id = \\? AND category = \\?").
		WillReturnRows(sqlmock.NewRows(budgetColumns))
	mock.ExpectExec("INSERT INTO `budgets`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	res, err := l.SeedSampleData(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Incomes: 1, Expenses: 3, Budgets: 2}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData_RollsBack(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `income`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	res, err := l.SeedSampleData(context.Background(), alice)
	assert.Error(t, err)
	assert.Equal(t, SeedResult{}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData_BudgetConflictRollsBack(t *testing.T) {
	l, mock, cleanup := setupLedger(t, &gorm.Config{TranslateError: true})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `income`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO `expenses`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT .* FROM `budgets` WHERE user_id = \\? ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows(budgetColumns))
	// 预检查之后另一个请求抢先写入了同类别预算
	mock.ExpectQuery("SELECT .* FROM `budgets` WHERE user_id = \\? AND category = \\?").
		WillReturnRows(sqlmock.NewRows(budgetColumns))
	mock.ExpectExec("INSERT INTO `budgets`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	res, err := l.SeedSampleData(context.Background(), alice)
	assert.ErrorIs(t, err, ErrBudgetExists)
	assert.Equal(t, SeedResult{}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData_NoIdentity(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	_, err := l.SeedSampleData(context.Background(), nobody)
	assert.ErrorIs(t, err, ErrNoIdentity)
	require.NoError(t, mock.ExpectationsWereMet())
}
