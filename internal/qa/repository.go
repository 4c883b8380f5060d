package qa

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// BillingInfo is the accounts-side summary shown next to a QA detail.
type BillingInfo struct {
	IntakeID      int    `json:"intake_id" db:"intake_id"`
	SerialNumber  string `json:"serial_number" db:"serial_number"`
	WorkOrderNo   string `json:"work_order_no" db:"work_order_no"`
	BillingStatus string `json:"billing_status" db:"billing_status"`
	BillingNotes  string `json:"billing_notes" db:"billing_notes"`
}

type QARepository interface {
	PersistQADetail(draft models.QADraft) (*models.QADetail, error)
	GetQADetail(id int) (*models.QADetail, error)
	ListQADetails(programNumber string) ([]models.QADetail, error)
	GetBillingForProgram(programNumber string) (*BillingInfo, error)
}

type qaRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) QARepository {
	return &qaRepositoryImpl{repository: r}
}

func (r *qaRepositoryImpl) PersistQADetail(draft models.QADraft) (*models.QADetail, error) {
	detail := models.QADetail{
		ProgramNumber:   draft.ProgramNumber,
		MachineIDs:      draft.MachineIDs,
		InspectionItems: draft.InspectionItems,
		Processes:       draft.Processes,
	}

	err := repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		insert := tx.Insert("qa_details").
			Rows(goqu.Record{"program_number": draft.ProgramNumber}).
			Returning("id")

		if _, err := insert.Executor().ScanVal(&detail.ID); err != nil {
			return fmt.Errorf("failed to insert QA detail: %w", err)
		}

		machineRows := make([]interface{}, 0, len(draft.MachineIDs))
		for _, machineID := range draft.MachineIDs {
			machineRows = append(machineRows, goqu.Record{"qa_detail_id": detail.ID, "machine_id": machineID})
		}
		if _, err := tx.Insert("qa_machine_allotments").Rows(machineRows...).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert machine allotments: %w", err)
		}

		inspectionRows := make([]interface{}, 0, len(draft.InspectionItems))
		for _, item := range draft.InspectionItems {
			inspectionRows = append(inspectionRows, goqu.Record{"qa_detail_id": detail.ID, "parameter": item})
		}
		if _, err := tx.Insert("qa_inspection_items").Rows(inspectionRows...).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert inspection items: %w", err)
		}

		processRows := make([]interface{}, 0, len(draft.Processes))
		for _, p := range draft.Processes {
			processRows = append(processRows, goqu.Record{
				"qa_detail_id": detail.ID,
				"process":      p.Process,
				"process_date": p.ProcessDate,
				"cycle_time":   p.CycleTime,
				"operator_id":  nullableID(p.OperatorID),
				"remarks":      p.Remarks,
			})
		}
		if _, err := tx.Insert("qa_process_rows").Rows(processRows...).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert process rows: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func nullableID(id int) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

func (r *qaRepositoryImpl) GetQADetail(id int) (*models.QADetail, error) {
	var detail models.QADetail

	query := r.repository.GoquDBWrapper.
		Select("id", "program_number", "created_at").
		From("qa_details").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&detail)
	if err != nil {
		return nil, fmt.Errorf("failed to get QA detail: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("QA detail %d not found", id)
	}

	if err := r.repository.GoquDBWrapper.
		Select("machine_id").
		From("qa_machine_allotments").
		Where(goqu.Ex{"qa_detail_id": id}).
		Executor().ScanVals(&detail.MachineIDs); err != nil {
		return nil, fmt.Errorf("failed to get machine allotments: %w", err)
	}

	if err := r.repository.GoquDBWrapper.
		Select("parameter").
		From("qa_inspection_items").
		Where(goqu.Ex{"qa_detail_id": id}).
		Executor().ScanVals(&detail.InspectionItems); err != nil {
		return nil, fmt.Errorf("failed to get inspection items: %w", err)
	}

	if err := r.repository.GoquDBWrapper.
		Select("id", "process", "process_date", "cycle_time",
			goqu.COALESCE(goqu.I("operator_id"), 0).As("operator_id"), "remarks").
		From("qa_process_rows").
		Where(goqu.Ex{"qa_detail_id": id}).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructs(&detail.Processes); err != nil {
		return nil, fmt.Errorf("failed to get process rows: %w", err)
	}

	return &detail, nil
}

func (r *qaRepositoryImpl) ListQADetails(programNumber string) ([]models.QADetail, error) {
	var details []models.QADetail

	query := r.repository.GoquDBWrapper.
		Select("id", "program_number", "created_at").
		From("qa_details").
		Order(goqu.I("id").Desc())

	if programNumber != "" {
		query = query.Where(goqu.Ex{"program_number": programNumber})
	}

	if err := query.Executor().ScanStructs(&details); err != nil {
		return nil, fmt.Errorf("failed to list QA details: %w", err)
	}

	return details, nil
}

// GetBillingForProgram joins the program back to its intake so the QA
// overview can show the accounts side of the job.
func (r *qaRepositoryImpl) GetBillingForProgram(programNumber string) (*BillingInfo, error) {
	var info BillingInfo

	query := r.repository.GoquDBWrapper.
		Select(
			goqu.I("product_intakes.id").As("intake_id"),
			goqu.I("product_intakes.serial_number").As("serial_number"),
			goqu.I("product_intakes.work_order_no").As("work_order_no"),
			goqu.I("product_intakes.billing_status").As("billing_status"),
			goqu.I("product_intakes.billing_notes").As("billing_notes"),
		).
		From("program_details").
		Join(goqu.T("product_intakes"), goqu.On(goqu.I("program_details.intake_id").Eq(goqu.I("product_intakes.id")))).
		Where(goqu.Ex{"program_details.program_number": programNumber})

	found, err := query.Executor().ScanStruct(&info)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing info: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no intake found for program %s", programNumber)
	}

	return &info, nil
}
