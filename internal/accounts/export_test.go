package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestBuildRegisterWorkbook(t *testing.T) {
	rows := []RegisterRow{
		{
			SerialNumber:  "0042",
			IntakeDate:    "2025-11-14",
			WorkOrderNo:   "WO-1182",
			CompanyName:   "Sakthi Engineering",
			MaterialType:  "MS",
			Grade:         "IS2062",
			Thickness:     "2",
			Width:         "10",
			Length:        "20",
			Quantity:      "10",
			UnitWeight:    "3.12",
			TotalWeight:   "31.2",
			StockDueDays:  "1",
			BillingStatus: "pending",
		},
		{
			SerialNumber:  "0043",
			WorkOrderNo:   "WO-1190",
			CompanyName:   "Sakthi Engineering",
			MaterialType:  "Aluminium",
			TotalWeight:   "204.5",
			StockDueDays:  "5",
			BillingStatus: "billed",
		},
	}

	buf, err := BuildRegisterWorkbook(rows)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	const sheet = "Inward Register"
	assert.Contains(t, f.GetSheetList(), sheet)

	header, err := f.GetCellValue(sheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Serial No", header)

	serial, err := f.GetCellValue(sheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "0042", serial)

	weight, err := f.GetCellValue(sheet, "L2")
	assert.NoError(t, err)
	assert.Equal(t, "31.2", weight)

	billing, err := f.GetCellValue(sheet, "N3")
	assert.NoError(t, err)
	assert.Equal(t, "billed", billing)
}

func TestBuildRegisterWorkbookEmpty(t *testing.T) {
	buf, err := BuildRegisterWorkbook(nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inward Register")
	assert.NoError(t, err)
	assert.Len(t, rows, 1, "header row only")
}
