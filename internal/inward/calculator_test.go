package inward

import (
	"testing"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/stretchr/testify/assert"
)

func row(thickness, width, length, density, quantity string) models.MaterialRow {
	return models.MaterialRow{
		Type:      "MS",
		Thickness: thickness,
		Width:     width,
		Length:    length,
		Density:   density,
		Quantity:  quantity,
	}
}

func TestRecalculateDerivesWeights(t *testing.T) {
	got := Recalculate(row("2", "10", "20", "0.0078", "10"))

	assert.Equal(t, "3.12", got.UnitWeight)
	assert.Equal(t, "31.2", got.TotalWeight)
	assert.Equal(t, "1", got.StockDueDays)
}

func TestRecalculateRoundsToThreeDecimals(t *testing.T) {
	got := Recalculate(row("1.5", "12.7", "33.3", "0.00786", "3"))

	// 1.5 * 12.7 * 33.3 * 0.00786 = 4.98657...
	assert.Equal(t, "4.987", got.UnitWeight)
	assert.Equal(t, "14.961", got.TotalWeight)
}

func TestRecalculateIncompleteInput(t *testing.T) {
	tests := []struct {
		name string
		row  models.MaterialRow
	}{
		{"missing thickness", row("", "10", "20", "0.0078", "10")},
		{"missing density", row("2", "10", "20", "", "10")},
		{"non numeric width", row("2", "abc", "20", "0.0078", "10")},
		{"zero length", row("2", "10", "0", "0.0078", "10")},
		{"negative thickness", row("-2", "10", "20", "0.0078", "10")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recalculate(tt.row)

			assert.Empty(t, got.UnitWeight)
			assert.Empty(t, got.TotalWeight)
			assert.Empty(t, got.StockDueDays)
		})
	}
}

func TestRecalculateMissingQuantityLeavesTotalsEmpty(t *testing.T) {
	got := Recalculate(row("2", "10", "20", "0.0078", ""))

	assert.Equal(t, "3.12", got.UnitWeight)
	assert.Empty(t, got.TotalWeight)
	assert.Empty(t, got.StockDueDays)
}

func TestRecalculateClearsStaleDerivedFields(t *testing.T) {
	stale := row("", "10", "20", "0.0078", "10")
	stale.UnitWeight = "3.12"
	stale.TotalWeight = "31.2"
	stale.StockDueDays = "1"

	got := Recalculate(stale)

	assert.Empty(t, got.UnitWeight)
	assert.Empty(t, got.TotalWeight)
	assert.Empty(t, got.StockDueDays)
}

func TestStockDueTierBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		weight   string // thickness chosen so unit weight is exactly this
		expected string
	}{
		{"just below fifty", "1", "49.999", "1"},
		{"exactly fifty", "1", "50", "3"},
		{"just below two hundred", "1", "199.999", "3"},
		{"exactly two hundred", "1", "200", "5"},
		{"well above two hundred", "1", "512.5", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// width, length and density of 1 make total weight equal thickness.
			got := Recalculate(row(tt.weight, "1", "1", "1", tt.quantity))

			assert.Equal(t, tt.weight, got.TotalWeight)
			assert.Equal(t, tt.expected, got.StockDueDays)
		})
	}
}

func TestRecalculateDoesNotMutateInput(t *testing.T) {
	in := row("2", "10", "20", "0.0078", "10")
	_ = Recalculate(in)

	assert.Empty(t, in.UnitWeight)
	assert.Empty(t, in.TotalWeight)
}
