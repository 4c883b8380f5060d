package inward

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type IntakeQuery struct {
	WorkOrderNo string
	CompanyName string
	Page        int
	Limit       int
}

type IntakeRepository interface {
	PersistIntake(draft models.IntakeDraft) (*models.ProductIntake, error)
	GetIntake(id int) (*models.ProductIntake, error)
	ListIntakes(q IntakeQuery) ([]models.ProductIntake, int64, error)
}

type intakeRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) IntakeRepository {
	return &intakeRepositoryImpl{repository: r}
}

// PersistIntake writes the intake and all its material rows in one
// transaction. The serial number comes from a database sequence so that
// concurrent sessions can never be issued the same value.
func (r *intakeRepositoryImpl) PersistIntake(draft models.IntakeDraft) (*models.ProductIntake, error) {
	var intake models.ProductIntake

	err := repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		var serial int64
		if _, err := tx.Select(goqu.L("nextval('intake_serial_seq')")).Executor().ScanVal(&serial); err != nil {
			return fmt.Errorf("failed to assign serial number: %w", err)
		}

		intake = models.ProductIntake{
			SerialNumber:  fmt.Sprintf("%04d", serial),
			SlipNumber:    draft.SlipNumber,
			SlipColor:     draft.SlipColor,
			IntakeDate:    draft.IntakeDate,
			WorkOrderNo:   draft.WorkOrderNo,
			CompanyName:   draft.CompanyName,
			CustomerName:  draft.CustomerName,
			CustomerPhone: draft.CustomerPhone,
			BillingStatus: "pending",
		}

		insert := tx.Insert("product_intakes").Rows(goqu.Record{
			"serial_number":  intake.SerialNumber,
			"slip_number":    intake.SlipNumber,
			"slip_color":     intake.SlipColor,
			"intake_date":    intake.IntakeDate,
			"work_order_no":  intake.WorkOrderNo,
			"company_name":   intake.CompanyName,
			"customer_name":  intake.CustomerName,
			"customer_phone": intake.CustomerPhone,
			"billing_status": intake.BillingStatus,
		}).Returning("id")

		if _, err := insert.Executor().ScanVal(&intake.ID); err != nil {
			return fmt.Errorf("failed to insert intake: %w", err)
		}

		rows := make([]interface{}, 0, len(draft.Materials))
		for _, m := range draft.Materials {
			rows = append(rows, goqu.Record{
				"intake_id":      intake.ID,
				"material_type":  m.Type,
				"grade":          m.Grade,
				"thickness":      m.Thickness,
				"width":          m.Width,
				"length":         m.Length,
				"density":        m.Density,
				"quantity":       m.Quantity,
				"unit_weight":    m.UnitWeight,
				"total_weight":   m.TotalWeight,
				"stock_due_days": m.StockDueDays,
				"remarks":        m.Remarks,
			})
		}

		if _, err := tx.Insert("material_rows").Rows(rows...).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert material rows: %w", err)
		}

		intake.Materials = draft.Materials
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &intake, nil
}

func (r *intakeRepositoryImpl) GetIntake(id int) (*models.ProductIntake, error) {
	var intake models.ProductIntake

	query := r.repository.GoquDBWrapper.
		Select("id", "serial_number", "slip_number", "slip_color", "intake_date",
			"work_order_no", "company_name", "customer_name", "customer_phone",
			"billing_status", "billing_notes", "created_at").
		From("product_intakes").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&intake)
	if err != nil {
		return nil, fmt.Errorf("failed to get intake: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("intake %d not found", id)
	}

	rows, err := r.materialRows(id)
	if err != nil {
		return nil, err
	}
	intake.Materials = rows

	return &intake, nil
}

func (r *intakeRepositoryImpl) materialRows(intakeID int) ([]models.MaterialRow, error) {
	var rows []models.MaterialRow

	query := r.repository.GoquDBWrapper.
		Select("id", "material_type", "grade", "thickness", "width", "length",
			"density", "quantity", "unit_weight", "total_weight", "stock_due_days", "remarks").
		From("material_rows").
		Where(goqu.Ex{"intake_id": intakeID}).
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("failed to get material rows: %w", err)
	}

	return rows, nil
}

func (r *intakeRepositoryImpl) ListIntakes(q IntakeQuery) ([]models.ProductIntake, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	conditions := goqu.Ex{}
	if q.WorkOrderNo != "" {
		conditions["work_order_no"] = q.WorkOrderNo
	}
	if q.CompanyName != "" {
		conditions["company_name"] = q.CompanyName
	}

	var total int64
	count := r.repository.GoquDBWrapper.
		From("product_intakes").
		Where(conditions).
		Select(goqu.COUNT("*"))
	if _, err := count.Executor().ScanVal(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count intakes: %w", err)
	}

	var intakes []models.ProductIntake
	query := r.repository.GoquDBWrapper.
		Select("id", "serial_number", "slip_number", "slip_color", "intake_date",
			"work_order_no", "company_name", "customer_name", "customer_phone",
			"billing_status", "billing_notes", "created_at").
		From("product_intakes").
		Where(conditions).
		Order(goqu.I("id").Desc()).
		Limit(uint(q.Limit)).
		Offset(uint((q.Page - 1) * q.Limit))

	if err := query.Executor().ScanStructs(&intakes); err != nil {
		return nil, 0, fmt.Errorf("failed to list intakes: %w", err)
	}

	return intakes, total, nil
}
