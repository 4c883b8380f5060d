package programmer

import (
	"testing"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateTotals(t *testing.T) {
	draft := models.ProgramDraft{
		IntakeID:        3,
		MaterialRowID:   7,
		ProgramNumber:   "2511AD-008",
		ProgramDate:     "2025-11-14",
		ProcessedQty:    "4",
		UsedWeight:      "3.12",
		SheetCount:      "10",
		CutLength:       "1250.5",
		PierceCount:     "36",
		MinutesPerSheet: "12.5",
	}

	got := RecalculateTotals(draft)

	assert.Equal(t, "40", got.TotalProcessedQty)
	assert.Equal(t, "31.2", got.TotalUsedWeight)
	assert.Equal(t, "12505", got.TotalCutLength)
	assert.Equal(t, "360", got.TotalPierceCount)
	assert.Equal(t, "125", got.TotalMinutes)

	// Inputs pass through untouched.
	assert.Equal(t, "2511AD-008", got.ProgramNumber)
	assert.Equal(t, "10", got.SheetCount)
}

func TestRecalculateTotalsWithoutSheetCount(t *testing.T) {
	tests := []struct {
		name       string
		sheetCount string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"negative", "-3"},
		{"non numeric", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecalculateTotals(models.ProgramDraft{
				SheetCount:   tt.sheetCount,
				ProcessedQty: "4",
				UsedWeight:   "3.12",
			})

			assert.Empty(t, got.TotalProcessedQty)
			assert.Empty(t, got.TotalUsedWeight)
			assert.Empty(t, got.TotalMinutes)
		})
	}
}

func TestRecalculateTotalsPartialInputs(t *testing.T) {
	got := RecalculateTotals(models.ProgramDraft{
		SheetCount:   "5",
		ProcessedQty: "2",
		// the remaining per-sheet inputs are still blank
	})

	assert.Equal(t, "10", got.TotalProcessedQty)
	assert.Empty(t, got.TotalUsedWeight)
	assert.Empty(t, got.TotalCutLength)
	assert.Empty(t, got.TotalPierceCount)
	assert.Empty(t, got.TotalMinutes)
}
