package models

import "time"

// ProgramDetail records the cutting plan a programmer prepares for one
// intake material. The five total_* fields are derived: each per-sheet value
// multiplied by the sheet count. They are recomputed server-side whenever any
// of the six inputs changes and are never accepted from the client.
type ProgramDetail struct {
	ID                int       `json:"id" db:"id"`
	IntakeID          int       `json:"intake_id" db:"intake_id"`
	MaterialRowID     int       `json:"material_row_id" db:"material_row_id"`
	ProgramNumber     string    `json:"program_number" db:"program_number"`
	ProgramDate       string    `json:"program_date" db:"program_date"`
	ProcessedQty      string    `json:"processed_qty" db:"processed_qty"`
	UsedWeight        string    `json:"used_weight" db:"used_weight"`
	SheetCount        string    `json:"sheet_count" db:"sheet_count"`
	CutLength         string    `json:"cut_length" db:"cut_length"`
	PierceCount       string    `json:"pierce_count" db:"pierce_count"`
	MinutesPerSheet   string    `json:"minutes_per_sheet" db:"minutes_per_sheet"`
	TotalProcessedQty string    `json:"total_processed_qty" db:"total_processed_qty"`
	TotalUsedWeight   string    `json:"total_used_weight" db:"total_used_weight"`
	TotalCutLength    string    `json:"total_cut_length" db:"total_cut_length"`
	TotalPierceCount  string    `json:"total_pierce_count" db:"total_pierce_count"`
	TotalMinutes      string    `json:"total_minutes" db:"total_minutes"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

func (p *ProgramDetail) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   p.ID,
		ResourceType: "program_detail",
	}
}

// ProgramDraft is the payload a programmer wizard session accumulates.
type ProgramDraft struct {
	IntakeID        int    `json:"intake_id"`
	MaterialRowID   int    `json:"material_row_id"`
	ProgramNumber   string `json:"program_number"`
	ProgramDate     string `json:"program_date"`
	ProcessedQty    string `json:"processed_qty"`
	UsedWeight      string `json:"used_weight"`
	SheetCount      string `json:"sheet_count"`
	CutLength       string `json:"cut_length"`
	PierceCount     string `json:"pierce_count"`
	MinutesPerSheet string `json:"minutes_per_sheet"`
}
