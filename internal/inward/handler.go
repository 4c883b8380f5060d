package inward

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/metrics"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/wizard"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/auditlog"
	custom_error "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/errors"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/roles"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/security"

	"github.com/gin-gonic/gin"
)

// DensityLookup resolves a material type name to its catalog density.
type DensityLookup interface {
	DensityFor(name string) (string, bool, error)
}

type IntakeHandler struct {
	Repository IntakeRepository
	Densities  DensityLookup
	AuditLog   *auditlog.Auditlog
	sessions   *wizard.Store[models.IntakeDraft]
}

func NewHandler(r IntakeRepository, d DensityLookup, a *auditlog.Auditlog) *IntakeHandler {
	return &IntakeHandler{
		Repository: r,
		Densities:  d,
		AuditLog:   a,
		sessions:   wizard.NewStore[models.IntakeDraft](30 * time.Minute),
	}
}

func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/inward/records", security.Authorize(roles.Store, roles.Programmer, roles.QA, roles.Accounts), h.ListIntakes)
	router.GET("/inward/records/:id", security.Authorize(roles.Store, roles.Programmer, roles.QA, roles.Accounts), h.GetIntake)

	router.POST("/inward/wizard", security.Authorize(roles.Store), h.StartWizard)
	router.GET("/inward/wizard/:id", security.Authorize(roles.Store), h.GetWizard)
	router.PUT("/inward/wizard/:id", security.Authorize(roles.Store), h.UpdateWizard)
	router.POST("/inward/wizard/:id/next", security.Authorize(roles.Store), h.NextStep)
	router.POST("/inward/wizard/:id/back", security.Authorize(roles.Store), h.BackStep)
	router.POST("/inward/wizard/:id/submit", security.Authorize(roles.Store), h.SubmitWizard)
	router.DELETE("/inward/wizard/:id", security.Authorize(roles.Store), h.CancelWizard)
}

func (h *IntakeHandler) StartWizard(c *gin.Context) {
	id, ctrl := h.sessions.Create(Steps(), models.IntakeDraft{})

	c.JSON(http.StatusCreated, gin.H{
		"session_id":  id,
		"step":        ctrl.Step(),
		"total_steps": ctrl.TotalSteps(),
	})
}

func (h *IntakeHandler) GetWizard(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"step":        ctrl.Step(),
		"step_name":   ctrl.StepName(),
		"total_steps": ctrl.TotalSteps(),
		"draft":       ctrl.Draft(),
	})
}

// MaterialRowInput is one editable material row as the client sends it.
// Derived fields are never accepted, they are recomputed here.
type MaterialRowInput struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	Grade     string `json:"grade"`
	Thickness string `json:"thickness"`
	Width     string `json:"width"`
	Length    string `json:"length"`
	Density   string `json:"density"`
	Quantity  string `json:"quantity"`
	Remarks   string `json:"remarks"`
}

type UpdateDraftRequest struct {
	SlipNumber    *string             `json:"slip_number"`
	SlipColor     *string             `json:"slip_color"`
	IntakeDate    *string             `json:"intake_date"`
	WorkOrderNo   *string             `json:"work_order_no"`
	CompanyName   *string             `json:"company_name"`
	CustomerName  *string             `json:"customer_name"`
	CustomerPhone *string             `json:"customer_phone"`
	Materials     *[]MaterialRowInput `json:"materials"`
}

func (h *IntakeHandler) UpdateWizard(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	err := ctrl.Update(func(d *models.IntakeDraft) {
		applyString(&d.SlipNumber, req.SlipNumber)
		applyString(&d.SlipColor, req.SlipColor)
		applyString(&d.IntakeDate, req.IntakeDate)
		applyString(&d.WorkOrderNo, req.WorkOrderNo)
		applyString(&d.CompanyName, req.CompanyName)
		applyString(&d.CustomerName, req.CustomerName)
		applyString(&d.CustomerPhone, req.CustomerPhone)

		if req.Materials != nil {
			d.Materials = h.applyMaterialRows(d.Materials, *req.Materials)
		}
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": ctrl.Draft(), "step": ctrl.Step()})
}

// applyMaterialRows merges the incoming rows over the draft's rows. When a
// row's material type changes the catalog density for the new type replaces
// whatever density was there before, then the derived fields are recomputed.
// Rows are matched to their previous version by the client-chosen key; rows
// sent without a key are matched by position.
func (h *IntakeHandler) applyMaterialRows(current []models.MaterialRow, inputs []MaterialRowInput) []models.MaterialRow {
	byKey := make(map[string]models.MaterialRow, len(current))
	for _, row := range current {
		if row.Key != "" {
			byKey[row.Key] = row
		}
	}

	rows := make([]models.MaterialRow, 0, len(inputs))

	for i, in := range inputs {
		row := models.MaterialRow{
			Key:       in.Key,
			Type:      in.Type,
			Grade:     in.Grade,
			Thickness: in.Thickness,
			Width:     in.Width,
			Length:    in.Length,
			Density:   in.Density,
			Quantity:  in.Quantity,
			Remarks:   in.Remarks,
		}

		prev, hasPrev := byKey[in.Key]
		if in.Key == "" && i < len(current) {
			prev, hasPrev = current[i], true
		}

		typeChanged := !hasPrev || prev.Type != in.Type
		if typeChanged && in.Type != "" {
			density, found, err := h.Densities.DensityFor(in.Type)
			if err == nil && found {
				row.Density = density
			} else {
				row.Density = ""
			}
		}

		rows = append(rows, Recalculate(row))
	}

	return rows
}

func (h *IntakeHandler) NextStep(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	if errs, advanced := ctrl.Next(); !advanced {
		metrics.WizardStepRejections.WithLabelValues("inward").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Please correct the highlighted fields",
			"fields": errs,
			"step":   ctrl.Step(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": ctrl.Step(), "step_name": ctrl.StepName()})
}

func (h *IntakeHandler) BackStep(c *gin.Context) {
	sessionID := c.Param("id")
	ctrl, ok := h.sessions.Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	if !ctrl.Back() {
		// Back on step 1 leaves the wizard entirely.
		h.sessions.Delete(sessionID)
		c.JSON(http.StatusOK, gin.H{"exited": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exited": false, "step": ctrl.Step(), "step_name": ctrl.StepName()})
}

func (h *IntakeHandler) SubmitWizard(c *gin.Context) {
	sessionID := c.Param("id")
	ctrl, ok := h.sessions.Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	var intake *models.ProductIntake

	errs, err := ctrl.Submit(c.Request.Context(), func(_ context.Context, draft *models.IntakeDraft) error {
		created, err := h.Repository.PersistIntake(*draft)
		if err != nil {
			return err
		}
		intake = created
		return nil
	})

	if len(errs) > 0 {
		metrics.WizardSubmissions.WithLabelValues("inward", "rejected").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please correct the highlighted fields", "fields": errs})
		return
	}

	if err != nil {
		switch err {
		case wizard.ErrSubmitInProgress:
			c.JSON(http.StatusConflict, gin.H{"error": "Submission already in progress"})
		case wizard.ErrNotTerminalStep, wizard.ErrFinished:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			metrics.WizardSubmissions.WithLabelValues("inward", "error").Inc()
			status := http.StatusInternalServerError
			if custom_error.IsConflict(custom_error.FromPq(err)) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": "Unable to save intake", "details": err.Error()})
		}
		return
	}

	metrics.WizardSubmissions.WithLabelValues("inward", "success").Inc()
	h.sessions.Delete(sessionID)

	go h.AuditLog.Log("create", map[string]interface{}{
		"serial_number": intake.SerialNumber,
		"work_order_no": intake.WorkOrderNo,
		"rows":          len(intake.Materials),
		"msg":           "Product intake registered",
	}, intake)

	c.JSON(http.StatusCreated, intake)
}

func (h *IntakeHandler) CancelWizard(c *gin.Context) {
	sessionID := c.Param("id")
	if ctrl, ok := h.sessions.Get(sessionID); ok {
		ctrl.Cancel()
		h.sessions.Delete(sessionID)
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *IntakeHandler) GetIntake(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intake ID", "details": err.Error()})
		return
	}

	intake, err := h.Repository.GetIntake(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find intake", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, intake)
}

func (h *IntakeHandler) ListIntakes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	intakes, total, err := h.Repository.ListIntakes(IntakeQuery{
		WorkOrderNo: c.Query("work_order_no"),
		CompanyName: c.Query("company_name"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain list of intakes", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": intakes, "total": total, "page": page, "limit": limit})
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
