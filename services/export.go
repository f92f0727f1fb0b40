package services

import (
	"bytes"
	"fmt"

	"law_office_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportCasesWorkbook builds an Excel workbook listing every case
func ExportCasesWorkbook(db *gorm.DB) (*bytes.Buffer, error) {
	var cases []models.Case
	if err := db.Order("filing_date DESC").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cases: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Cases"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Case Number", "Case Name", "Client", "Attorney", "Court",
		"Practice Area", "Status", "Filing Date", "Expected Expense"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, c := range cases {
		values := []interface{}{
			c.CaseNumber, c.CaseName, c.ClientName, c.AttorneyName, c.CourtName,
			c.PracticeArea, c.Status, c.FilingDate.Format("2006-01-02"), c.ExpectedExpense,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// ExportExpenseLedger builds an Excel ledger of one case's expenses with a
// total row at the bottom
func ExportExpenseLedger(db *gorm.DB, caseID string) (*bytes.Buffer, error) {
	var caseRecord models.Case
	if err := db.First(&caseRecord, "id = ?", caseID).Error; err != nil {
		return nil, fmt.Errorf("case not found: %w", err)
	}

	var expenses []models.CaseExpense
	if err := db.Where("case_id = ?", caseID).Order("incurred_at ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Expenses"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Expense Ledger - %s (%s)", caseRecord.CaseName, caseRecord.CaseNumber))
	f.SetCellValue(sheet, "A3", "Date")
	f.SetCellValue(sheet, "B3", "Name")
	f.SetCellValue(sheet, "C3", "Amount")

	total := 0.0
	for i, e := range expenses {
		row := i + 4
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.IncurredAt.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Amount)
		total += e.Amount
	}

	totalRow := len(expenses) + 5
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), total)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
