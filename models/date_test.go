package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_KeepsCalendarDay(t *testing.T) {
	east := time.FixedZone("UTC+8", 8*3600)
	west := time.FixedZone("UTC-5", -5*3600)

	assert.Equal(t, "2024-01-15", NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, east)).String())
	assert.Equal(t, "2024-01-15", NewDate(time.Date(2024, 1, 15, 23, 59, 0, 0, west)).String())
	assert.Equal(t, "2024-01-15", NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).String())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	// MySQL loc=Local 读回的是本地零点
	require.NoError(t, d.Scan(time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))))
	assert.Equal(t, "2024-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-02-29")))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan("2024-03-01 00:00:00"))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan("15/01/2024"))
	assert.Error(t, d.Scan(42))
}

func TestDate_ValueIndependentOfLocalZone(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("UTC-5", -5*3600)
	defer func() { time.Local = saved }()

	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_JSON(t *testing.T) {
	var stored Date
	require.NoError(t, stored.Scan(time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))))

	tx := IncomeTransaction(Income{ID: 1, Source: "Salary", Amount: decimal.NewFromInt(5000), Date: stored})
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2024-01-15"`)

	var back struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, stored, back.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &back))
	assert.True(t, back.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"2024-01-15T00:00:00Z"}`), &back))

	data, err = json.Marshal(struct {
		Date Date `json:"date"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":null}`, string(data))
}
