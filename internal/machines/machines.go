package machines

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	custom_error "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/errors"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/roles"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/security"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

type MachineRepository interface {
	GetMachines(activeOnly bool) ([]models.Machine, error)
	PersistMachine(code, name string) (*models.Machine, error)
	SetMachineActive(id int, active bool) error
}

type machineRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) MachineRepository {
	return &machineRepositoryImpl{repository: r}
}

func (r *machineRepositoryImpl) GetMachines(activeOnly bool) ([]models.Machine, error) {
	var machines []models.Machine

	query := r.repository.GoquDBWrapper.
		Select("id", "code", "name", "active").
		From("machines").
		Order(goqu.I("code").Asc())

	if activeOnly {
		query = query.Where(goqu.Ex{"active": true})
	}

	if err := query.Executor().ScanStructs(&machines); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return machines, nil
}

func (r *machineRepositoryImpl) PersistMachine(code, name string) (*models.Machine, error) {
	machine := models.Machine{Code: code, Name: name, Active: true}

	query := r.repository.GoquDBWrapper.Insert("machines").
		Rows(goqu.Record{"code": code, "name": name, "active": true}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&machine.ID); err != nil {
		return nil, custom_error.FromPq(err)
	}

	return &machine, nil
}

func (r *machineRepositoryImpl) SetMachineActive(id int, active bool) error {
	query := r.repository.GoquDBWrapper.Update("machines").
		Set(goqu.Record{"active": active}).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update machine: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("machine %d not found", id)
	}

	return nil
}

type MachineHandler struct {
	Repository MachineRepository
}

func NewHandler(r MachineRepository) *MachineHandler {
	return &MachineHandler{Repository: r}
}

func (h *MachineHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/machines", h.GetMachines)
	router.POST("/machines", security.Authorize(roles.Admin), h.CreateMachine)
	router.PATCH("/machines/:id/active", security.Authorize(roles.Admin), h.SetActive)
}

func (h *MachineHandler) GetMachines(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	machines, err := h.Repository.GetMachines(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain list of machines", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, machines)
}

func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	machine, err := h.Repository.PersistMachine(req.Code, req.Name)
	if err != nil {
		status := http.StatusInternalServerError
		if custom_error.IsConflict(err) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to create machine", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, machine)
}

func (h *MachineHandler) SetActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID", "details": err.Error()})
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.Repository.SetMachineActive(id, *req.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update machine", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Machine updated successfully"})
}
