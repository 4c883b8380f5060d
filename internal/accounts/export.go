package accounts

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var registerHeaders = []string{
	"Serial No", "Date", "Work Order", "Company", "Material", "Grade",
	"Thickness", "Width", "Length", "Qty", "Unit Weight", "Total Weight",
	"Stock Due (days)", "Billing",
}

// BuildRegisterWorkbook renders the inward register as an XLSX workbook.
func BuildRegisterWorkbook(rows []RegisterRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inward Register"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []string{
			row.SerialNumber, row.IntakeDate, row.WorkOrderNo, row.CompanyName,
			row.MaterialType, row.Grade, row.Thickness, row.Width, row.Length,
			row.Quantity, row.UnitWeight, row.TotalWeight, row.StockDueDays,
			row.BillingStatus,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf, nil
}
