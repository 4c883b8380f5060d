package models

type Machine struct {
	ID     int    `json:"id" db:"id"`
	Code   string `json:"code" db:"code"`
	Name   string `json:"name" db:"name"`
	Active bool   `json:"active" db:"active"`
}

func (m *Machine) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   m.ID,
		ResourceType: "machine",
	}
}

type Operator struct {
	ID     int    `json:"id" db:"id"`
	Code   string `json:"code" db:"code"`
	Name   string `json:"name" db:"name"`
	Active bool   `json:"active" db:"active"`
}

func (o *Operator) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   o.ID,
		ResourceType: "operator",
	}
}
