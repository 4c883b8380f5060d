package operators

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

type OperatorRepository interface {
	GetOperators(activeOnly bool) ([]models.Operator, error)
	PersistOperator(code, name string) (*models.Operator, error)
	SetOperatorActive(id int, active bool) error
}

type operatorRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) OperatorRepository {
	return &operatorRepositoryImpl{repository: r}
}

func (r *operatorRepositoryImpl) GetOperators(activeOnly bool) ([]models.Operator, error) {
	var operators []models.Operator

	query := r.repository.GoquDBWrapper.
		Select("id", "code", "name", "active").
		From("operators").
		Order(goqu.I("code").Asc())

	if activeOnly {
		query = query.Where(goqu.Ex{"active": true})
	}

	if err := query.Executor().ScanStructs(&operators); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return operators, nil
}

func (r *operatorRepositoryImpl) PersistOperator(code, name string) (*models.Operator, error) {
	operator := models.Operator{Code: code, Name: name, Active: true}

	query := r.repository.GoquDBWrapper.Insert("operators").
		Rows(goqu.Record{"code": code, "name": name, "active": true}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&operator.ID); err != nil {
		return nil, custom_error.FromPq(err)
	}

	return &operator, nil
}

func (r *operatorRepositoryImpl) SetOperatorActive(id int, active bool) error {
	query := r.repository.GoquDBWrapper.Update("operators").
		Set(goqu.Record{"active": active}).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update operator: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("operator %d not found", id)
	}

	return nil
}

type OperatorHandler struct {
	Repository OperatorRepository
}

func NewHandler(r OperatorRepository) *OperatorHandler {
	return &OperatorHandler{Repository: r}
}

func (h *OperatorHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/operators", h.GetOperators)
	router.POST("/operators", security.Authorize(roles.Admin), h.CreateOperator)
	router.PATCH("/operators/:id/active", security.Authorize(roles.Admin), h.SetActive)
}

func (h *OperatorHandler) GetOperators(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	operators, err := h.Repository.GetOperators(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain list of operators", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, operators)
}

func (h *OperatorHandler) CreateOperator(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	operator, err := h.Repository.PersistOperator(req.Code, req.Name)
	if err != nil {
		status := http.StatusInternalServerError
		if custom_error.IsConflict(err) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to create operator", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, operator)
}

func (h *OperatorHandler) SetActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operator ID", "details": err.Error()})
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.Repository.SetOperatorActive(id, *req.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update operator", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Operator updated successfully"})
}
