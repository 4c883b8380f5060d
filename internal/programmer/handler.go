package programmer

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

type ProgramHandler struct {
	Repository ProgramRepository
	AuditLog   *auditlog.Auditlog
	sessions   *wizard.Store[models.ProgramDraft]
	now        func() time.Time
}

func NewHandler(r ProgramRepository, a *auditlog.Auditlog) *ProgramHandler {
	return &ProgramHandler{
		Repository: r,
		AuditLog:   a,
		sessions:   wizard.NewStore[models.ProgramDraft](30 * time.Minute),
		now:        time.Now,
	}
}

func (h *ProgramHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/programs", security.Authorize(roles.Programmer, roles.QA, roles.Accounts), h.ListPrograms)
	router.GET("/programs/:id", security.Authorize(roles.Programmer, roles.QA, roles.Accounts), h.GetProgram)

	router.POST("/programmer/wizard", security.Authorize(roles.Programmer), h.StartWizard)
	router.GET("/programmer/wizard/:id", security.Authorize(roles.Programmer), h.GetWizard)
	router.PUT("/programmer/wizard/:id", security.Authorize(roles.Programmer), h.UpdateWizard)
	router.POST("/programmer/wizard/:id/next", security.Authorize(roles.Programmer), h.NextStep)
	router.POST("/programmer/wizard/:id/back", security.Authorize(roles.Programmer), h.BackStep)
	router.POST("/programmer/wizard/:id/submit", security.Authorize(roles.Programmer), h.SubmitWizard)
	router.DELETE("/programmer/wizard/:id", security.Authorize(roles.Programmer), h.CancelWizard)
}

// StartWizard opens a session and pre-assigns the program number from the
// server-side sequence. The client only displays the value, it never
// generates one.
func (h *ProgramHandler) StartWizard(c *gin.Context) {
	raw, _ := c.Get("initials")
	initials, _ := raw.(string)
	if initials == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No initials in token"})
		return
	}

	prefix := SequencePrefix(h.now(), initials)
	programNumber, err := h.Repository.NextProgramNumber(prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to assign program number", "details": err.Error()})
		return
	}
	metrics.ProgramNumbersIssued.Inc()

	id, ctrl := h.sessions.Create(Steps(), models.ProgramDraft{ProgramNumber: programNumber})

	c.JSON(http.StatusCreated, gin.H{
		"session_id":     id,
		"step":           ctrl.Step(),
		"total_steps":    ctrl.TotalSteps(),
		"program_number": programNumber,
	})
}

func (h *ProgramHandler) GetWizard(c *gin.Context) {
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

type UpdateProgramDraftRequest struct {
	IntakeID        *int    `json:"intake_id"`
	MaterialRowID   *int    `json:"material_row_id"`
	ProgramDate     *string `json:"program_date"`
	ProcessedQty    *string `json:"processed_qty"`
	UsedWeight      *string `json:"used_weight"`
	SheetCount      *string `json:"sheet_count"`
	CutLength       *string `json:"cut_length"`
	PierceCount     *string `json:"pierce_count"`
	MinutesPerSheet *string `json:"minutes_per_sheet"`
}

func (h *ProgramHandler) UpdateWizard(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	var req UpdateProgramDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	err := ctrl.Update(func(d *models.ProgramDraft) {
		if req.IntakeID != nil {
			d.IntakeID = *req.IntakeID
		}
		if req.MaterialRowID != nil {
			d.MaterialRowID = *req.MaterialRowID
		}
		applyString(&d.ProgramDate, req.ProgramDate)
		applyString(&d.ProcessedQty, req.ProcessedQty)
		applyString(&d.UsedWeight, req.UsedWeight)
		applyString(&d.SheetCount, req.SheetCount)
		applyString(&d.CutLength, req.CutLength)
		applyString(&d.PierceCount, req.PierceCount)
		applyString(&d.MinutesPerSheet, req.MinutesPerSheet)
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// Totals follow every input edit so the client always sees fresh values.
	c.JSON(http.StatusOK, gin.H{
		"draft":  ctrl.Draft(),
		"totals": RecalculateTotals(ctrl.Draft()),
		"step":   ctrl.Step(),
	})
}

func (h *ProgramHandler) NextStep(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	if errs, advanced := ctrl.Next(); !advanced {
		metrics.WizardStepRejections.WithLabelValues("programmer").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Please correct the highlighted fields",
			"fields": errs,
			"step":   ctrl.Step(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": ctrl.Step(), "step_name": ctrl.StepName()})
}

func (h *ProgramHandler) BackStep(c *gin.Context) {
	sessionID := c.Param("id")
	ctrl, ok := h.sessions.Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	if !ctrl.Back() {
		h.sessions.Delete(sessionID)
		c.JSON(http.StatusOK, gin.H{"exited": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exited": false, "step": ctrl.Step(), "step_name": ctrl.StepName()})
}

func (h *ProgramHandler) SubmitWizard(c *gin.Context) {
	sessionID := c.Param("id")
	ctrl, ok := h.sessions.Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	var detail *models.ProgramDetail

	errs, err := ctrl.Submit(c.Request.Context(), func(_ context.Context, draft *models.ProgramDraft) error {
		created, err := h.Repository.PersistProgramDetail(RecalculateTotals(*draft))
		if err != nil {
			return err
		}
		detail = created
		return nil
	})

	if len(errs) > 0 {
		metrics.WizardSubmissions.WithLabelValues("programmer", "rejected").Inc()
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
			metrics.WizardSubmissions.WithLabelValues("programmer", "error").Inc()
			status := http.StatusInternalServerError
			if custom_error.IsConflict(custom_error.FromPq(err)) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": "Unable to save program detail", "details": err.Error()})
		}
		return
	}

	metrics.WizardSubmissions.WithLabelValues("programmer", "success").Inc()
	h.sessions.Delete(sessionID)

	go h.AuditLog.Log("create", map[string]interface{}{
		"program_number": detail.ProgramNumber,
		"intake_id":      detail.IntakeID,
		"msg":            "Program detail recorded",
	}, detail)

	c.JSON(http.StatusCreated, detail)
}

func (h *ProgramHandler) CancelWizard(c *gin.Context) {
	sessionID := c.Param("id")
	if ctrl, ok := h.sessions.Get(sessionID); ok {
		ctrl.Cancel()
		h.sessions.Delete(sessionID)
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *ProgramHandler) GetProgram(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid program ID", "details": err.Error()})
		return
	}

	detail, err := h.Repository.GetProgramDetail(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find program detail", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	intakeID, _ := strconv.Atoi(c.DefaultQuery("intake_id", "0"))

	details, err := h.Repository.ListProgramDetails(intakeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain list of program details", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, details)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
