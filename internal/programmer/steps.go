package programmer

import (
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/validation"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/wizard"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"
)

// Steps returns the two programmer wizard steps: program identity, then the
// production figures.
func Steps() []wizard.Step[models.ProgramDraft] {
	return []wizard.Step[models.ProgramDraft]{
		{Name: "program", Validate: validateProgram},
		{Name: "production", Validate: validateProduction},
	}
}

func validateProgram(d *models.ProgramDraft) wizard.FieldErrors {
	errs := wizard.FieldErrors{}

	if d.MaterialRowID <= 0 {
		errs["material_row_id"] = "a material must be selected"
	}
	if d.ProgramNumber == "" {
		errs["program_number"] = "program number is required"
	}
	if d.ProgramDate == "" {
		errs["program_date"] = "program date is required"
	}

	return errs
}

func validateProduction(d *models.ProgramDraft) wizard.FieldErrors {
	errs := wizard.FieldErrors{}

	numeric := map[string]string{
		"processed_qty":     d.ProcessedQty,
		"used_weight":       d.UsedWeight,
		"cut_length":        d.CutLength,
		"pierce_count":      d.PierceCount,
		"minutes_per_sheet": d.MinutesPerSheet,
	}
	for field, value := range numeric {
		if !validation.IsNonNegativeNumeric(value) {
			errs[field] = field + " must be a number"
		}
	}

	if !validation.IsDigits(d.SheetCount) || !validation.IsPositiveNumeric(d.SheetCount) {
		errs["sheet_count"] = "sheet count must be a positive whole number"
	}

	return errs
}
