package workspaces_models

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type WorkspaceInvitation struct {
	ID          uuid.UUID `json:"id"          gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"type:uuid;not null;uniqueIndex:idx_workspace_email"`
	Email       string    `json:"email"       gorm:"not null;uniqueIndex:idx_workspace_email"`
	Token       uuid.UUID `json:"-"           gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"not null"`
}

func (WorkspaceInvitation) TableName() string {
	return "workspace_invitations"
}

func init() {
	storage.RegisterModels(&WorkspaceInvitation{})
}
