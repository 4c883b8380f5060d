package inward

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/validation"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/wizard"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"
)

// Steps returns the three inward wizard steps: identity, material rows and
// the final review. The review step has no fields of its own; Submit
// re-validates everything anyway.
func Steps() []wizard.Step[models.IntakeDraft] {
	return []wizard.Step[models.IntakeDraft]{
		{Name: "identity", Validate: validateIdentity},
		{Name: "materials", Validate: validateMaterials},
		{Name: "review", Validate: func(*models.IntakeDraft) wizard.FieldErrors { return nil }},
	}
}

func validateIdentity(d *models.IntakeDraft) wizard.FieldErrors {
	errs := wizard.FieldErrors{}

	if d.CompanyName == "" {
		errs["company_name"] = "company name is required"
	}
	if d.CustomerName == "" {
		errs["customer_name"] = "customer name is required"
	}
	if !validation.IsMobileNumber(d.CustomerPhone) {
		errs["customer_phone"] = "phone must be 10 digits starting with 6-9"
	}
	if !validation.IsDigits(d.SlipNumber) {
		errs["slip_number"] = "slip number must contain only digits"
	}
	if !models.SlipColor(d.SlipColor).IsValid() {
		errs["slip_color"] = fmt.Sprintf("slip color must be %s or %s", models.SlipWhite, models.SlipPink)
	}
	if d.IntakeDate == "" {
		errs["intake_date"] = "intake date is required"
	}
	if d.WorkOrderNo == "" {
		errs["work_order_no"] = "work order number is required"
	}

	return errs
}

func validateMaterials(d *models.IntakeDraft) wizard.FieldErrors {
	errs := wizard.FieldErrors{}

	if len(d.Materials) == 0 {
		errs["materials"] = "at least one material row is required"
		return errs
	}

	for i, row := range d.Materials {
		field := func(name string) string { return fmt.Sprintf("materials[%d].%s", i, name) }

		if row.Type == "" {
			errs[field("type")] = "material type is required"
		}
		if !validation.IsPositiveNumeric(row.Thickness) {
			errs[field("thickness")] = "thickness must be a positive number"
		}
		if !validation.IsPositiveNumeric(row.Width) {
			errs[field("width")] = "width must be a positive number"
		}
		if !validation.IsPositiveNumeric(row.Length) {
			errs[field("length")] = "length must be a positive number"
		}
		if !validation.IsPositiveNumeric(row.Density) {
			errs[field("density")] = "density must be a positive number"
		}
		if !validation.IsDigits(row.Quantity) || !validation.IsPositiveNumeric(row.Quantity) {
			errs[field("quantity")] = "quantity must be a positive whole number"
		}
		if row.UnitWeight == "" || row.TotalWeight == "" {
			errs[field("total_weight")] = "weights are not derived yet, complete the row"
		}
	}

	return errs
}
