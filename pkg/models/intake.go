package models

import "time"

// SlipColor is the color of the physical intake slip.
type SlipColor string

const (
	SlipWhite SlipColor = "white"
	SlipPink  SlipColor = "pink"
)

func (s SlipColor) IsValid() bool {
	return s == SlipWhite || s == SlipPink
}

// ProductIntake is a single inward transaction: identity fields plus one or
// more material rows. SerialNumber is assigned by the data layer on create.
type ProductIntake struct {
	ID            int           `json:"id" db:"id"`
	SerialNumber  string        `json:"serial_number" db:"serial_number"`
	SlipNumber    string        `json:"slip_number" db:"slip_number"`
	SlipColor     string        `json:"slip_color" db:"slip_color"`
	IntakeDate    string        `json:"intake_date" db:"intake_date"`
	WorkOrderNo   string        `json:"work_order_no" db:"work_order_no"`
	CompanyName   string        `json:"company_name" db:"company_name"`
	CustomerName  string        `json:"customer_name" db:"customer_name"`
	CustomerPhone string        `json:"customer_phone" db:"customer_phone"`
	BillingStatus string        `json:"billing_status" db:"billing_status"`
	BillingNotes  string        `json:"billing_notes" db:"billing_notes"`
	Materials     []MaterialRow `json:"materials"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

func (p *ProductIntake) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   p.ID,
		ResourceType: "product_intake",
	}
}

// IntakeDraft is the payload a single inward wizard session accumulates.
type IntakeDraft struct {
	SlipNumber    string        `json:"slip_number"`
	SlipColor     string        `json:"slip_color"`
	IntakeDate    string        `json:"intake_date"`
	WorkOrderNo   string        `json:"work_order_no"`
	CompanyName   string        `json:"company_name"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Materials     []MaterialRow `json:"materials"`
}
