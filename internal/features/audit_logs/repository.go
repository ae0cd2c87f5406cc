package audit_logs

import (
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Save(entry *AuditLog) error {
	return storage.GetDb().Create(entry).Error
}

func (r *AuditLogRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
	limit int,
) ([]*AuditLog, error) {
	var entries []*AuditLog

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error

	return entries, err
}

func (r *AuditLogRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&AuditLog{}).Error
}
