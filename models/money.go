package models

import "github.com/shopspring/decimal"

func init() {
	// 金额以 JSON 数字输出，与前端约定一致
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout 日期格式
const DateLayout = "2006-01-02"
