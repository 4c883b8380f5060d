package programmer

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	custom_error "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/errors"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ProgramRepository interface {
	NextProgramNumber(prefix string) (string, error)
	PersistProgramDetail(detail models.ProgramDetail) (*models.ProgramDetail, error)
	GetProgramDetail(id int) (*models.ProgramDetail, error)
	ListProgramDetails(intakeID int) ([]models.ProgramDetail, error)
}

type programRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) ProgramRepository {
	return &programRepositoryImpl{repository: r}
}

// NextProgramNumber issues the next value of the per-prefix counter with a
// single atomic upsert, so two sessions asking at once can never be handed
// the same number.
func (r *programRepositoryImpl) NextProgramNumber(prefix string) (string, error) {
	var value int

	err := r.repository.DB.QueryRow(`
		INSERT INTO program_sequences (prefix, counter)
		VALUES ($1, 1)
		ON CONFLICT (prefix)
		DO UPDATE SET counter = program_sequences.counter + 1
		RETURNING counter`, prefix).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("failed to issue program number: %w", err)
	}

	return FormatProgramNumber(prefix, value), nil
}

func (r *programRepositoryImpl) PersistProgramDetail(detail models.ProgramDetail) (*models.ProgramDetail, error) {
	query := r.repository.GoquDBWrapper.Insert("program_details").
		Rows(goqu.Record{
			"intake_id":           detail.IntakeID,
			"material_row_id":     detail.MaterialRowID,
			"program_number":      detail.ProgramNumber,
			"program_date":        detail.ProgramDate,
			"processed_qty":       detail.ProcessedQty,
			"used_weight":         detail.UsedWeight,
			"sheet_count":         detail.SheetCount,
			"cut_length":          detail.CutLength,
			"pierce_count":        detail.PierceCount,
			"minutes_per_sheet":   detail.MinutesPerSheet,
			"total_processed_qty": detail.TotalProcessedQty,
			"total_used_weight":   detail.TotalUsedWeight,
			"total_cut_length":    detail.TotalCutLength,
			"total_pierce_count":  detail.TotalPierceCount,
			"total_minutes":       detail.TotalMinutes,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&detail.ID); err != nil {
		return nil, custom_error.FromPq(err)
	}

	return &detail, nil
}

func (r *programRepositoryImpl) GetProgramDetail(id int) (*models.ProgramDetail, error) {
	var detail models.ProgramDetail

	query := r.repository.GoquDBWrapper.
		Select("id", "intake_id", "material_row_id", "program_number", "program_date",
			"processed_qty", "used_weight", "sheet_count", "cut_length", "pierce_count",
			"minutes_per_sheet", "total_processed_qty", "total_used_weight",
			"total_cut_length", "total_pierce_count", "total_minutes", "created_at").
		From("program_details").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&detail)
	if err != nil {
		return nil, fmt.Errorf("failed to get program detail: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("program detail %d not found", id)
	}

	return &detail, nil
}

func (r *programRepositoryImpl) ListProgramDetails(intakeID int) ([]models.ProgramDetail, error) {
	var details []models.ProgramDetail

	query := r.repository.GoquDBWrapper.
		Select("id", "intake_id", "material_row_id", "program_number", "program_date",
			"processed_qty", "used_weight", "sheet_count", "cut_length", "pierce_count",
			"minutes_per_sheet", "total_processed_qty", "total_used_weight",
			"total_cut_length", "total_pierce_count", "total_minutes", "created_at").
		From("program_details").
		Order(goqu.I("id").Desc())

	if intakeID > 0 {
		query = query.Where(goqu.Ex{"intake_id": intakeID})
	}

	if err := query.Executor().ScanStructs(&details); err != nil {
		return nil, fmt.Errorf("failed to list program details: %w", err)
	}

	return details, nil
}
