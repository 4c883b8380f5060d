package accounts

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/auditlog"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/roles"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/security"

	"github.com/gin-gonic/gin"
)

var billingStatuses = map[string]bool{
	"pending": true,
	"billed":  true,
	"hold":    true,
}

type AccountsHandler struct {
	Repository AccountsRepository
	AuditLog   *auditlog.Auditlog
}

func NewHandler(r AccountsRepository, a *auditlog.Auditlog) *AccountsHandler {
	return &AccountsHandler{Repository: r, AuditLog: a}
}

func (h *AccountsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PATCH("/accounts/intakes/:id/billing", security.Authorize(roles.Accounts), h.UpdateBilling)
	router.GET("/accounts/register/export", security.Authorize(roles.Accounts), h.ExportRegister)
}

func (h *AccountsHandler) UpdateBilling(c *gin.Context) {
	intakeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intake ID", "details": err.Error()})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if !billingStatuses[req.Status] {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Billing status must be pending, billed or hold"})
		return
	}

	if err := h.Repository.UpdateBilling(intakeID, req.Status, req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update billing", "details": err.Error()})
		return
	}

	intake := models.ProductIntake{ID: intakeID}
	go h.AuditLog.Log("billing_update", map[string]interface{}{
		"status": req.Status,
		"msg":    "Billing status changed",
	}, &intake)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Billing updated successfully",
		"intake_id": intakeID,
		"status":    req.Status,
	})
}

func (h *AccountsHandler) ExportRegister(c *gin.Context) {
	rows, err := h.Repository.GetRegisterRows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read inward register", "details": err.Error()})
		return
	}

	buf, err := BuildRegisterWorkbook(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to render register", "details": err.Error()})
		return
	}

	filename := fmt.Sprintf("inward-register-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
