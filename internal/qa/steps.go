package qa

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/wizard"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"
)

// Cycle time bounds in minutes, inclusive.
const (
	MinCycleTime = 1
	MaxCycleTime = 600
)

// Steps returns the two QA wizard steps: allotment/inspection, then the
// per-process run records.
func Steps() []wizard.Step[models.QADraft] {
	return []wizard.Step[models.QADraft]{
		{Name: "inspection", Validate: validateInspection},
		{Name: "processes", Validate: validateProcesses},
	}
}

func validateInspection(d *models.QADraft) wizard.FieldErrors {
	errs := wizard.FieldErrors{}

	if d.ProgramNumber == "" {
		errs["program_number"] = "program number is required"
	}
	if len(d.MachineIDs) == 0 {
		errs["machine_ids"] = "at least one machine allotment is required"
	}
	if len(d.InspectionItems) == 0 {
		errs["inspection_items"] = "at least one inspection parameter must be checked"
	}

	return errs
}

func validateProcesses(d *models.QADraft) wizard.FieldErrors {
	errs := wizard.FieldErrors{}

	byName := make(map[string]models.ProcessRow, len(d.Processes))
	for _, row := range d.Processes {
		byName[row.Process] = row
	}

	for _, name := range models.ProcessNames {
		row, ok := byName[name]
		if !ok {
			errs["processes."+name] = fmt.Sprintf("%s process row is missing", name)
			continue
		}
		if row.ProcessDate == "" {
			errs["processes."+name+".process_date"] = "process date is required"
		}
		if row.CycleTime < MinCycleTime || row.CycleTime > MaxCycleTime {
			errs["processes."+name+".cycle_time"] = fmt.Sprintf("cycle time must be between %d and %d minutes", MinCycleTime, MaxCycleTime)
		}
	}

	return errs
}
