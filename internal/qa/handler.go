package qa

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

type QAHandler struct {
	Repository QARepository
	Service    *QAService
	AuditLog   *auditlog.Auditlog
	sessions   *wizard.Store[models.QADraft]
}

func NewHandler(r QARepository, a *auditlog.Auditlog) *QAHandler {
	return &QAHandler{
		Repository: r,
		Service:    NewService(r),
		AuditLog:   a,
		sessions:   wizard.NewStore[models.QADraft](30 * time.Minute),
	}
}

func (h *QAHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/qa/records", security.Authorize(roles.QA, roles.Accounts), h.ListQADetails)
	router.GET("/qa/records/:id", security.Authorize(roles.QA, roles.Accounts), h.GetQADetail)
	router.GET("/qa/overview", security.Authorize(roles.QA, roles.Accounts), h.GetOverview)

	router.POST("/qa/wizard", security.Authorize(roles.QA), h.StartWizard)
	router.GET("/qa/wizard/:id", security.Authorize(roles.QA), h.GetWizard)
	router.PUT("/qa/wizard/:id", security.Authorize(roles.QA), h.UpdateWizard)
	router.POST("/qa/wizard/:id/next", security.Authorize(roles.QA), h.NextStep)
	router.POST("/qa/wizard/:id/back", security.Authorize(roles.QA), h.BackStep)
	router.POST("/qa/wizard/:id/submit", security.Authorize(roles.QA), h.SubmitWizard)
	router.DELETE("/qa/wizard/:id", security.Authorize(roles.QA), h.CancelWizard)
}

// StartWizard seeds the draft with one empty row per production process so
// step 2 always edits the fixed LASER/FOLDING/FORMING set.
func (h *QAHandler) StartWizard(c *gin.Context) {
	seed := models.QADraft{}
	for _, name := range models.ProcessNames {
		seed.Processes = append(seed.Processes, models.ProcessRow{Process: name})
	}

	id, ctrl := h.sessions.Create(Steps(), seed)

	c.JSON(http.StatusCreated, gin.H{
		"session_id":  id,
		"step":        ctrl.Step(),
		"total_steps": ctrl.TotalSteps(),
	})
}

func (h *QAHandler) GetWizard(c *gin.Context) {
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

type UpdateQADraftRequest struct {
	ProgramNumber   *string              `json:"program_number"`
	MachineIDs      *[]int               `json:"machine_ids"`
	InspectionItems *[]string            `json:"inspection_items"`
	Processes       *[]models.ProcessRow `json:"processes"`
}

func (h *QAHandler) UpdateWizard(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	var req UpdateQADraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	err := ctrl.Update(func(d *models.QADraft) {
		if req.ProgramNumber != nil {
			d.ProgramNumber = *req.ProgramNumber
		}
		if req.MachineIDs != nil {
			d.MachineIDs = *req.MachineIDs
		}
		if req.InspectionItems != nil {
			d.InspectionItems = *req.InspectionItems
		}
		if req.Processes != nil {
			d.Processes = *req.Processes
		}
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": ctrl.Draft(), "step": ctrl.Step()})
}

func (h *QAHandler) NextStep(c *gin.Context) {
	ctrl, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	if errs, advanced := ctrl.Next(); !advanced {
		metrics.WizardStepRejections.WithLabelValues("qa").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Please correct the highlighted fields",
			"fields": errs,
			"step":   ctrl.Step(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": ctrl.Step(), "step_name": ctrl.StepName()})
}

func (h *QAHandler) BackStep(c *gin.Context) {
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

func (h *QAHandler) SubmitWizard(c *gin.Context) {
	sessionID := c.Param("id")
	ctrl, ok := h.sessions.Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}

	var detail *models.QADetail

	errs, err := ctrl.Submit(c.Request.Context(), func(_ context.Context, draft *models.QADraft) error {
		created, err := h.Repository.PersistQADetail(*draft)
		if err != nil {
			return err
		}
		detail = created
		return nil
	})

	if len(errs) > 0 {
		metrics.WizardSubmissions.WithLabelValues("qa", "rejected").Inc()
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
			metrics.WizardSubmissions.WithLabelValues("qa", "error").Inc()
			status := http.StatusInternalServerError
			if custom_error.IsConflict(custom_error.FromPq(err)) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": "Unable to save QA detail", "details": err.Error()})
		}
		return
	}

	metrics.WizardSubmissions.WithLabelValues("qa", "success").Inc()
	h.sessions.Delete(sessionID)

	go h.AuditLog.Log("create", map[string]interface{}{
		"program_number": detail.ProgramNumber,
		"machines":       len(detail.MachineIDs),
		"msg":            "QA detail recorded",
	}, detail)

	c.JSON(http.StatusCreated, detail)
}

func (h *QAHandler) CancelWizard(c *gin.Context) {
	sessionID := c.Param("id")
	if ctrl, ok := h.sessions.Get(sessionID); ok {
		ctrl.Cancel()
		h.sessions.Delete(sessionID)
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *QAHandler) GetQADetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid QA detail ID", "details": err.Error()})
		return
	}

	detail, err := h.Repository.GetQADetail(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find QA detail", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *QAHandler) ListQADetails(c *gin.Context) {
	details, err := h.Repository.ListQADetails(c.Query("program_number"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain list of QA details", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *QAHandler) GetOverview(c *gin.Context) {
	programNumber := c.Query("program_number")
	if programNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "program_number is required"})
		return
	}

	overview, err := h.Service.GetOverview(programNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to build QA overview", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}
