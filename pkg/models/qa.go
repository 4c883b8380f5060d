package models

import "time"

// Process names are a fixed set; every QA detail carries one row per process.
const (
	ProcessLaser   = "LASER"
	ProcessFolding = "FOLDING"
	ProcessForming = "FORMING"
)

// ProcessNames in the order QA records them.
var ProcessNames = []string{ProcessLaser, ProcessFolding, ProcessForming}

// ProcessRow is one production process check within a QA detail.
type ProcessRow struct {
	ID          int    `json:"id,omitempty" db:"id"`
	Process     string `json:"process" db:"process"`
	ProcessDate string `json:"process_date" db:"process_date"`
	// CycleTime is in whole minutes, valid range 1..600.
	CycleTime  int    `json:"cycle_time" db:"cycle_time"`
	OperatorID int    `json:"operator_id,omitempty" db:"operator_id"`
	Remarks    string `json:"remarks" db:"remarks"`
}

// QADetail records inspection and machine-run details for one program.
type QADetail struct {
	ID              int          `json:"id" db:"id"`
	ProgramNumber   string       `json:"program_number" db:"program_number"`
	MachineIDs      []int        `json:"machine_ids"`
	InspectionItems []string     `json:"inspection_items"`
	Processes       []ProcessRow `json:"processes"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
}

func (q *QADetail) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   q.ID,
		ResourceType: "qa_detail",
	}
}

// QADraft is the payload a QA wizard session accumulates.
type QADraft struct {
	ProgramNumber   string       `json:"program_number"`
	MachineIDs      []int        `json:"machine_ids"`
	InspectionItems []string     `json:"inspection_items"`
	Processes       []ProcessRow `json:"processes"`
}
