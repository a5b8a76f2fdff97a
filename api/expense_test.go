package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expenseColumns = []string{"id", "user_id", "category", "description", "amount", "date", "created_at", "deleted_at"}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expenses", NewExpenseHandler(newTestLedger()).Create)

	w := postJSON(router, "/expenses", `{"amount":99.99,"category":"Food & Dining","description":"午餐","date":"2024-01-15"}`)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "创建成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 99.99, data["amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_InvalidCategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expenses", NewExpenseHandler(newTestLedger()).Create)

	w := postJSON(router, "/expenses", `{"amount":99,"category":"无效类别","description":"x","date":"2024-01-15"}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "无效的类别", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Summary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	d := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, 1, "Food & Dining", "Groceries", "75.00", d, time.Now(), nil).
			AddRow(2, 1, "Utilities", "Water", "25.00", d, time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/expenses/summary", NewExpenseHandler(newTestLedger()).Summary)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/expenses/summary", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["total"])
	cats := data["categories"].([]interface{})
	require.Len(t, cats, 10)
	food := cats[0].(map[string]interface{})
	assert.Equal(t, "Food & Dining", food["category"])
	assert.Equal(t, float64(75), food["percentage"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/expenses/:id", NewExpenseHandler(newTestLedger()).Delete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/expenses/77", nil))
	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
