package materials

import (
	"net/http"
	"strconv"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/validation"
	custom_error "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/errors"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/roles"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/security"

	"github.com/gin-gonic/gin"
)

type MaterialTypeHandler struct {
	Repository MaterialTypeRepository
}

func NewHandler(r MaterialTypeRepository) *MaterialTypeHandler {
	return &MaterialTypeHandler{Repository: r}
}

func (h *MaterialTypeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/material-types", h.GetMaterialTypes)
	router.GET("/material-types/:id", h.GetMaterialType)
	router.POST("/material-types", security.Authorize(roles.Admin), h.CreateMaterialType)
	router.PUT("/material-types/:id", security.Authorize(roles.Admin), h.UpdateMaterialType)
	router.DELETE("/material-types/:id", security.Authorize(roles.Admin), h.DeleteMaterialType)
}

type MaterialTypeRequest struct {
	Name    string `json:"name" binding:"required"`
	Density string `json:"density" binding:"required"`
}

func (h *MaterialTypeHandler) GetMaterialTypes(c *gin.Context) {
	types, err := h.Repository.GetMaterialTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain material types", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *MaterialTypeHandler) GetMaterialType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material type ID", "details": err.Error()})
		return
	}

	mt, err := h.Repository.GetMaterialType(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find material type", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mt)
}

func (h *MaterialTypeHandler) CreateMaterialType(c *gin.Context) {
	var req MaterialTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if !validation.IsPositiveNumeric(req.Density) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Density must be a positive number"})
		return
	}

	mt, err := h.Repository.PersistMaterialType(req.Name, req.Density)
	if err != nil {
		status := http.StatusInternalServerError
		if custom_error.IsConflict(err) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to create material type", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, mt)
}

func (h *MaterialTypeHandler) UpdateMaterialType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material type ID", "details": err.Error()})
		return
	}

	var req MaterialTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if !validation.IsPositiveNumeric(req.Density) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Density must be a positive number"})
		return
	}

	if err := h.Repository.UpdateMaterialType(id, req.Name, req.Density); err != nil {
		status := http.StatusInternalServerError
		if custom_error.IsConflict(err) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to update material type", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material type updated successfully"})
}

func (h *MaterialTypeHandler) DeleteMaterialType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material type ID", "details": err.Error()})
		return
	}

	if err := h.Repository.DeleteMaterialType(id); err != nil {
		status := http.StatusInternalServerError
		if custom_error.IsConflict(err) {
			// Still referenced by intake rows.
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "Failed to delete material type", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material type deleted successfully"})
}
