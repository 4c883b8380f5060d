package auditlog

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type Auditlog struct {
	r *repository.Repository
}

// Auditable is anything that can describe itself as an audit log row.
type Auditable interface {
	CreateLogView() models.AuditLog
}

func NewAuditLog(repository *repository.Repository) *Auditlog {
	return &Auditlog{r: repository}
}

// Log writes one audit entry. Callers fire it from a goroutine; a failed
// write is logged and dropped, it never blocks the workflow action itself.
func (a *Auditlog) Log(action string, data interface{}, item Auditable) {
	if a == nil || a.r == nil {
		return
	}

	auditLog := item.CreateLogView()
	auditLog.Action = action

	if err := a.persistLog(auditLog, data); err != nil {
		log.Println("Unable to create audit log entry for id ", auditLog.ResourceID, ": ", err)
		return
	}
}

func (a *Auditlog) persistLog(auditlog models.AuditLog, data interface{}) error {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal audit log data: %w", err)
	}

	query := a.r.GoquDBWrapper.Insert("audit_logs").
		Rows(goqu.Record{
			"resource_id":   auditlog.ResourceID,
			"resource_type": auditlog.ResourceType,
			"action":        auditlog.Action,
			"data":          dataJSON,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}

// GetLogs returns recent entries for one resource type, newest first.
func (a *Auditlog) GetLogs(resourceType string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	var logs []models.AuditLog
	query := a.r.GoquDBWrapper.
		Select("id", "resource_id", "resource_type", "action", "data", "created_at").
		From("audit_logs").
		Order(goqu.I("id").Desc()).
		Limit(uint(limit))

	if resourceType != "" {
		query = query.Where(goqu.Ex{"resource_type": resourceType})
	}

	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("failed to read audit logs: %w", err)
	}

	for i := range logs {
		logs[i].LoadFromDB()
	}

	return logs, nil
}
