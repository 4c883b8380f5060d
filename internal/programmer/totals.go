package programmer

import (
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/shopspring/decimal"
)

// RecalculateTotals derives the five total_* fields from the per-sheet
// inputs weighted by the sheet count, mirroring how the material calculator
// treats incomplete input: a total stays empty until both of its operands
// parse as numbers.
func RecalculateTotals(d models.ProgramDraft) models.ProgramDetail {
	detail := models.ProgramDetail{
		IntakeID:        d.IntakeID,
		MaterialRowID:   d.MaterialRowID,
		ProgramNumber:   d.ProgramNumber,
		ProgramDate:     d.ProgramDate,
		ProcessedQty:    d.ProcessedQty,
		UsedWeight:      d.UsedWeight,
		SheetCount:      d.SheetCount,
		CutLength:       d.CutLength,
		PierceCount:     d.PierceCount,
		MinutesPerSheet: d.MinutesPerSheet,
	}

	sheets, err := decimal.NewFromString(d.SheetCount)
	if err != nil || !sheets.IsPositive() {
		return detail
	}

	detail.TotalProcessedQty = weighted(sheets, d.ProcessedQty)
	detail.TotalUsedWeight = weighted(sheets, d.UsedWeight)
	detail.TotalCutLength = weighted(sheets, d.CutLength)
	detail.TotalPierceCount = weighted(sheets, d.PierceCount)
	detail.TotalMinutes = weighted(sheets, d.MinutesPerSheet)

	return detail
}

func weighted(sheets decimal.Decimal, perSheet string) string {
	v, err := decimal.NewFromString(perSheet)
	if err != nil || v.IsNegative() {
		return ""
	}
	return sheets.Mul(v).Round(3).String()
}
