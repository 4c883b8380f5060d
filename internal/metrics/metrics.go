package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WizardSubmissions counts terminal wizard submits per form and outcome.
	WizardSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_wizard_submissions_total",
		Help: "Wizard submissions by form and outcome.",
	}, []string{"form", "outcome"})

	// WizardStepRejections counts Next calls blocked by step validation.
	WizardStepRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erp_wizard_step_rejections_total",
		Help: "Step advances rejected by validation, by form.",
	}, []string{"form"})

	ProgramNumbersIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "erp_program_numbers_issued_total",
		Help: "Program numbers issued by the sequence generator.",
	})
)

// Handler exposes the default prometheus registry.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
