package inward

import (
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/shopspring/decimal"
)

// Recalculate derives unit weight, total weight and the stock-due tier from
// a material row's dimensional inputs. Pure function: the input row is not
// mutated, a copy with refreshed derived fields is returned.
//
// Incomplete or non-numeric input is not an error, it just leaves the
// derived fields empty. Empty means "not yet computable" and is distinct
// from a computed zero; step validation decides later whether that is a
// problem.
func Recalculate(row models.MaterialRow) models.MaterialRow {
	row.UnitWeight = ""
	row.TotalWeight = ""
	row.StockDueDays = ""

	thickness, ok := positiveDecimal(row.Thickness)
	if !ok {
		return row
	}
	width, ok := positiveDecimal(row.Width)
	if !ok {
		return row
	}
	length, ok := positiveDecimal(row.Length)
	if !ok {
		return row
	}
	density, ok := positiveDecimal(row.Density)
	if !ok {
		return row
	}

	unitWeight := thickness.Mul(width).Mul(length).Mul(density).Round(3)
	row.UnitWeight = unitWeight.String()

	quantity, ok := positiveDecimal(row.Quantity)
	if !ok || !unitWeight.IsPositive() {
		return row
	}

	totalWeight := quantity.Mul(unitWeight).Round(3)
	row.TotalWeight = totalWeight.String()
	row.StockDueDays = stockDueTier(totalWeight)

	return row
}

// stockDueTier maps a total weight onto the lead-time tier in days.
// Lower bounds are inclusive: exactly 50 is "3", exactly 200 is "5".
func stockDueTier(totalWeight decimal.Decimal) string {
	fifty := decimal.NewFromInt(50)
	twoHundred := decimal.NewFromInt(200)

	switch {
	case !totalWeight.IsPositive():
		return ""
	case totalWeight.LessThan(fifty):
		return "1"
	case totalWeight.LessThan(twoHundred):
		return "3"
	default:
		return "5"
	}
}

func positiveDecimal(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
