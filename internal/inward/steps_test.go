package inward

import (
	"testing"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/stretchr/testify/assert"
)

func validIntakeDraft() models.IntakeDraft {
	material := Recalculate(models.MaterialRow{
		Type:      "MS",
		Thickness: "2",
		Width:     "10",
		Length:    "20",
		Density:   "0.0078",
		Quantity:  "10",
	})

	return models.IntakeDraft{
		SlipNumber:    "4521",
		SlipColor:     "white",
		IntakeDate:    "2025-11-14",
		WorkOrderNo:   "WO-1182",
		CompanyName:   "Sakthi Engineering",
		CustomerName:  "Ravi Kumar",
		CustomerPhone: "9876543210",
		Materials:     []models.MaterialRow{material},
	}
}

func TestValidateIdentity(t *testing.T) {
	steps := Steps()

	draft := validIntakeDraft()
	assert.Empty(t, steps[0].Validate(&draft))

	tests := []struct {
		name   string
		mutate func(*models.IntakeDraft)
		field  string
	}{
		{"missing company", func(d *models.IntakeDraft) { d.CompanyName = "" }, "company_name"},
		{"missing customer", func(d *models.IntakeDraft) { d.CustomerName = "" }, "customer_name"},
		{"phone too short", func(d *models.IntakeDraft) { d.CustomerPhone = "98765" }, "customer_phone"},
		{"phone bad leading digit", func(d *models.IntakeDraft) { d.CustomerPhone = "1876543210" }, "customer_phone"},
		{"slip number with letters", func(d *models.IntakeDraft) { d.SlipNumber = "45A1" }, "slip_number"},
		{"unknown slip color", func(d *models.IntakeDraft) { d.SlipColor = "green" }, "slip_color"},
		{"missing date", func(d *models.IntakeDraft) { d.IntakeDate = "" }, "intake_date"},
		{"missing work order", func(d *models.IntakeDraft) { d.WorkOrderNo = "" }, "work_order_no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validIntakeDraft()
			tt.mutate(&draft)

			errs := steps[0].Validate(&draft)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateMaterialsRequiresARow(t *testing.T) {
	steps := Steps()

	draft := validIntakeDraft()
	draft.Materials = nil

	errs := steps[1].Validate(&draft)
	assert.Contains(t, errs, "materials")
}

func TestValidateMaterialsPerRowErrors(t *testing.T) {
	steps := Steps()

	draft := validIntakeDraft()
	draft.Materials = append(draft.Materials, Recalculate(models.MaterialRow{
		Type:     "MS",
		Width:    "10",
		Length:   "20",
		Density:  "0.0078",
		Quantity: "5",
		// thickness left blank, so no derived weights either
	}))

	errs := steps[1].Validate(&draft)
	assert.Contains(t, errs, "materials[1].thickness")
	assert.Contains(t, errs, "materials[1].total_weight")
	assert.NotContains(t, errs, "materials[0].thickness")
}

func TestValidateMaterialsQuantityMustBeWhole(t *testing.T) {
	steps := Steps()

	draft := validIntakeDraft()
	draft.Materials[0].Quantity = "2.5"

	errs := steps[1].Validate(&draft)
	assert.Contains(t, errs, "materials[0].quantity")
}
