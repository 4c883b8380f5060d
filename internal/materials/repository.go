package materials

import (
	"fmt"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	custom_error "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/errors"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type MaterialTypeRepository interface {
	GetMaterialTypes() ([]models.MaterialType, error)
	GetMaterialType(id int) (*models.MaterialType, error)
	DensityFor(name string) (string, bool, error)
	PersistMaterialType(name, density string) (*models.MaterialType, error)
	UpdateMaterialType(id int, name, density string) error
	DeleteMaterialType(id int) error
}

type materialTypeRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) MaterialTypeRepository {
	return &materialTypeRepositoryImpl{repository: r}
}

func (r *materialTypeRepositoryImpl) GetMaterialTypes() ([]models.MaterialType, error) {
	var types []models.MaterialType

	query := r.repository.GoquDBWrapper.
		Select("id", "name", "density").
		From("material_types").
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanStructs(&types); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return types, nil
}

func (r *materialTypeRepositoryImpl) GetMaterialType(id int) (*models.MaterialType, error) {
	var mt models.MaterialType

	query := r.repository.GoquDBWrapper.
		Select("id", "name", "density").
		From("material_types").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&mt)
	if err != nil {
		return nil, fmt.Errorf("failed to get material type: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("material type %d not found", id)
	}

	return &mt, nil
}

// DensityFor resolves a catalog name to its density. The second return is
// false when the name is not in the catalog.
func (r *materialTypeRepositoryImpl) DensityFor(name string) (string, bool, error) {
	var density string

	query := r.repository.GoquDBWrapper.
		Select("density").
		From("material_types").
		Where(goqu.Ex{"name": name})

	found, err := query.Executor().ScanVal(&density)
	if err != nil {
		return "", false, fmt.Errorf("failed to look up density: %w", err)
	}

	return density, found, nil
}

func (r *materialTypeRepositoryImpl) PersistMaterialType(name, density string) (*models.MaterialType, error) {
	mt := models.MaterialType{Name: name, Density: density}

	query := r.repository.GoquDBWrapper.Insert("material_types").
		Rows(goqu.Record{"name": name, "density": density}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&mt.ID); err != nil {
		return nil, custom_error.FromPq(err)
	}

	return &mt, nil
}

func (r *materialTypeRepositoryImpl) UpdateMaterialType(id int, name, density string) error {
	query := r.repository.GoquDBWrapper.Update("material_types").
		Set(goqu.Record{"name": name, "density": density}).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return custom_error.FromPq(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("material type %d not found", id)
	}

	return nil
}

// DeleteMaterialType refuses to remove a type that intake rows still name.
// material_rows stores the type name, not an id, so the check is explicit
// rather than a foreign key.
func (r *materialTypeRepositoryImpl) DeleteMaterialType(id int) error {
	mt, err := r.GetMaterialType(id)
	if err != nil {
		return err
	}

	var references int64
	count := r.repository.GoquDBWrapper.
		From("material_rows").
		Where(goqu.Ex{"material_type": mt.Name}).
		Select(goqu.COUNT("*"))
	if _, err := count.Executor().ScanVal(&references); err != nil {
		return fmt.Errorf("failed to check material type references: %w", err)
	}
	if references > 0 {
		return custom_error.WrapDBError(fmt.Sprintf("material type %q", mt.Name), "23503")
	}

	query := r.repository.GoquDBWrapper.Delete("material_types").
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return custom_error.FromPq(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("material type %d not found", id)
	}

	return nil
}
