package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/service"
	"budgetbook/stats"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出处理器
type ExportHandler struct {
	ledger *service.Ledger
}

// NewExportHandler 创建导出处理器
func NewExportHandler(ledger *service.Ledger) *ExportHandler {
	return &ExportHandler{ledger: ledger}
}

var transactionTypeNames = map[models.TransactionType]string{
	models.TransactionIncome:  "收入",
	models.TransactionExpense: "支出",
}

// ExportCSV 导出收支记录为 CSV
// @Summary 导出收支记录
// @Description 收入与支出合并后按日期倒序导出为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	snap, err := h.ledger.Snapshot(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "查询数据失败")
		return
	}
	all := stats.MergeRecent(snap.Incomes, snap.Expenses, len(snap.Incomes)+len(snap.Expenses))

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")
	writer := csv.NewWriter(buf)

	rows := make([][]string, 0, len(all)+1)
	rows = append(rows, []string{"日期", "类型", "标题", "类别", "金额"})
	for _, tx := range all {
		rows = append(rows, []string{
			tx.Date.Format(models.DateLayout),
			transactionTypeNames[tx.Type],
			csvText(tx.Title),
			csvText(string(tx.Category)),
			tx.Amount.StringFixed(2),
		})
	}
	if err := writer.WriteAll(rows); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// csvText 以公式字符开头的文本前加单引号，Excel 打开时按文本显示
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// ExportExcel 导出收入、支出、预算为 Excel
// @Summary 导出 Excel
// @Description 生成包含收入、支出、预算三个工作表的 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	snap, err := h.ledger.Snapshot(c.Request.Context(), middleware.GetCurrentIdentity(c))
	if err != nil {
		respondLedgerError(c, err, "查询数据失败")
		return
	}

	buf, err := buildWorkbook(snap)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("budget_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// buildWorkbook 每类记录一个工作表
func buildWorkbook(snap *service.Snapshot) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	incomeRows := make([][]interface{}, 0, len(snap.Incomes))
	for _, in := range snap.Incomes {
		incomeRows = append(incomeRows, []interface{}{
			in.ID, in.Date.Format(models.DateLayout), in.Source, in.Amount.InexactFloat64(),
		})
	}
	expenseRows := make([][]interface{}, 0, len(snap.Expenses))
	for _, ex := range snap.Expenses {
		expenseRows = append(expenseRows, []interface{}{
			ex.ID, ex.Date.Format(models.DateLayout), string(ex.Category), ex.Description, ex.Amount.InexactFloat64(),
		})
	}
	report := stats.BuildBudgetReport(snap.Budgets, snap.Expenses)
	budgetRows := make([][]interface{}, 0, len(report.Budgets))
	for _, b := range report.Budgets {
		budgetRows = append(budgetRows, []interface{}{
			string(b.Budget.Category),
			b.Budget.MonthlyLimit.InexactFloat64(),
			b.Spent.InexactFloat64(),
			b.Remaining.InexactFloat64(),
			fmt.Sprintf("%.1f%%", b.Percentage),
		})
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{"收入", []string{"ID", "日期", "来源", "金额"}, incomeRows},
		{"支出", []string{"ID", "日期", "类别", "描述", "金额"}, expenseRows},
		{"预算", []string{"类别", "月度预算", "已花费", "剩余", "进度"}, budgetRows},
	}
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, s.name, s.headers, s.rows, headerStyle); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
