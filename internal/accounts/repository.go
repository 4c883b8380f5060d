package accounts

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"

	"github.com/doug-martin/goqu/v9"
)

// RegisterRow is one line of the inward register: intake identity plus one
// material row, as it appears in the exported sheet.
type RegisterRow struct {
	SerialNumber  string `db:"serial_number"`
	IntakeDate    string `db:"intake_date"`
	WorkOrderNo   string `db:"work_order_no"`
	CompanyName   string `db:"company_name"`
	MaterialType  string `db:"material_type"`
	Grade         string `db:"grade"`
	Thickness     string `db:"thickness"`
	Width         string `db:"width"`
	Length        string `db:"length"`
	Quantity      string `db:"quantity"`
	UnitWeight    string `db:"unit_weight"`
	TotalWeight   string `db:"total_weight"`
	StockDueDays  string `db:"stock_due_days"`
	BillingStatus string `db:"billing_status"`
}

type AccountsRepository interface {
	UpdateBilling(intakeID int, status, notes string) error
	GetRegisterRows() ([]RegisterRow, error)
}

type accountsRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) AccountsRepository {
	return &accountsRepositoryImpl{repository: r}
}

func (r *accountsRepositoryImpl) UpdateBilling(intakeID int, status, notes string) error {
	query := r.repository.GoquDBWrapper.Update("product_intakes").
		Set(goqu.Record{"billing_status": status, "billing_notes": notes}).
		Where(goqu.Ex{"id": intakeID})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update billing: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("intake %d not found", intakeID)
	}

	return nil
}

func (r *accountsRepositoryImpl) GetRegisterRows() ([]RegisterRow, error) {
	var rows []RegisterRow

	query := r.repository.GoquDBWrapper.
		Select(
			goqu.I("product_intakes.serial_number").As("serial_number"),
			goqu.I("product_intakes.intake_date").As("intake_date"),
			goqu.I("product_intakes.work_order_no").As("work_order_no"),
			goqu.I("product_intakes.company_name").As("company_name"),
			goqu.I("material_rows.material_type").As("material_type"),
			goqu.I("material_rows.grade").As("grade"),
			goqu.I("material_rows.thickness").As("thickness"),
			goqu.I("material_rows.width").As("width"),
			goqu.I("material_rows.length").As("length"),
			goqu.I("material_rows.quantity").As("quantity"),
			goqu.I("material_rows.unit_weight").As("unit_weight"),
			goqu.I("material_rows.total_weight").As("total_weight"),
			goqu.I("material_rows.stock_due_days").As("stock_due_days"),
			goqu.I("product_intakes.billing_status").As("billing_status"),
		).
		From("product_intakes").
		Join(goqu.T("material_rows"), goqu.On(goqu.I("material_rows.intake_id").Eq(goqu.I("product_intakes.id")))).
		Order(goqu.I("product_intakes.id").Asc(), goqu.I("material_rows.id").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("failed to read inward register: %w", err)
	}

	return rows, nil
}
