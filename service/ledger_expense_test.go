package service

import (
	"context"
	"errors"
	"testing"

	"budgetbook/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExpenses(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `expenses` WHERE user_id = \\? .*ORDER BY date DESC").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(3, 1, "Utilities", "Electricity Bill", "80.00", day("2024-01-02"), fixedNow, nil))

	expenses, err := l.ListExpenses(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, models.CategoryUtilities, expenses[0].Category)
	assert.Equal(t, "Electricity Bill", expenses[0].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExpense(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	ex, err := l.AddExpense(context.Background(), alice, ExpenseInput{
		Category:    models.CategoryFoodDining,
		Description: "Lunch",
		Amount:      decimal.RequireFromString("12.50"),
		Date:        day("2024-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), ex.ID)
	assert.Equal(t, uint(1), ex.UserID)
	assert.Equal(t, fixedNow, ex.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExpense_InvalidCategory(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	ex, err := l.AddExpense(context.Background(), alice, ExpenseInput{
		Category: "Groceries",
		Amount:   decimal.NewFromInt(1),
	})
	assert.Nil(t, ex)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpense(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := l.DeleteExpense(context.Background(), alice, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpense_StoreFailure(t *testing.T) {
	l, mock, cleanup := setupLedger(t, nil)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	ok, err := l.DeleteExpense(context.Background(), alice, 3)
	assert.False(t, ok)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
