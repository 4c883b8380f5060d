package models

// MaterialType is one catalog entry mapping a material name to its density.
// Density is kept as text so catalog edits round-trip without float drift.
type MaterialType struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Density string `json:"density" db:"density"`
}

func (m *MaterialType) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   m.ID,
		ResourceType: "material_type",
	}
}

// MaterialRow is one line item of stock within a product intake. Dimensional
// inputs arrive as strings because a row under construction may be partially
// filled; derived fields stay empty until every input they need is present.
type MaterialRow struct {
	ID           int    `json:"id,omitempty" db:"id"`
	Key          string `json:"key,omitempty" db:"-"`
	Type         string `json:"type" db:"material_type"`
	Grade        string `json:"grade" db:"grade"`
	Thickness    string `json:"thickness" db:"thickness"`
	Width        string `json:"width" db:"width"`
	Length       string `json:"length" db:"length"`
	Density      string `json:"density" db:"density"`
	Quantity     string `json:"quantity" db:"quantity"`
	UnitWeight   string `json:"unit_weight" db:"unit_weight"`
	TotalWeight  string `json:"total_weight" db:"total_weight"`
	StockDueDays string `json:"stock_due_days" db:"stock_due_days"`
	Remarks      string `json:"remarks" db:"remarks"`
}
