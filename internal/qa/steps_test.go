package qa

import (
	"testing"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/stretchr/testify/assert"
)

func validQADraft() models.QADraft {
	return models.QADraft{
		ProgramNumber:   "2511AD-008",
		MachineIDs:      []int{1, 3},
		InspectionItems: []string{"dimension check", "burr check"},
		Processes: []models.ProcessRow{
			{Process: models.ProcessLaser, ProcessDate: "2025-11-15", CycleTime: 12},
			{Process: models.ProcessFolding, ProcessDate: "2025-11-16", CycleTime: 8},
			{Process: models.ProcessForming, ProcessDate: "2025-11-16", CycleTime: 20},
		},
	}
}

func TestValidateInspection(t *testing.T) {
	steps := Steps()

	draft := validQADraft()
	assert.Empty(t, steps[0].Validate(&draft))

	empty := models.QADraft{}
	errs := steps[0].Validate(&empty)
	assert.Contains(t, errs, "program_number")
	assert.Contains(t, errs, "machine_ids")
	assert.Contains(t, errs, "inspection_items")
}

func TestValidateProcessesRequiresEveryProcess(t *testing.T) {
	steps := Steps()

	draft := validQADraft()
	draft.Processes = draft.Processes[:2] // FORMING row dropped

	errs := steps[1].Validate(&draft)
	assert.Contains(t, errs, "processes.FORMING")
	assert.NotContains(t, errs, "processes.LASER")
}

func TestValidateProcessesCycleTimeBounds(t *testing.T) {
	tests := []struct {
		name      string
		cycleTime int
		valid     bool
	}{
		{"below minimum", 0, false},
		{"at minimum", 1, true},
		{"typical", 45, true},
		{"at maximum", 600, true},
		{"above maximum", 601, false},
		{"negative", -5, false},
	}

	steps := Steps()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validQADraft()
			draft.Processes[0].CycleTime = tt.cycleTime

			errs := steps[1].Validate(&draft)
			if tt.valid {
				assert.NotContains(t, errs, "processes.LASER.cycle_time")
			} else {
				assert.Contains(t, errs, "processes.LASER.cycle_time")
			}
		})
	}
}

func TestValidateProcessesMissingDate(t *testing.T) {
	steps := Steps()

	draft := validQADraft()
	draft.Processes[1].ProcessDate = ""

	errs := steps[1].Validate(&draft)
	assert.Contains(t, errs, "processes.FOLDING.process_date")
}
