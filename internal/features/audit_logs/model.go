package audit_logs

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"          gorm:"type:uuid;primaryKey"`
	Message     string     `json:"message"     gorm:"not null"`
	UserID      *uuid.UUID `json:"userId"      gorm:"type:uuid;index"`
	WorkspaceID *uuid.UUID `json:"workspaceId" gorm:"type:uuid;index"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"not null"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func init() {
	storage.RegisterModels(&AuditLog{})
}
