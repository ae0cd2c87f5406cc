package workspaces_models

import (
	"time"

	users_enums "collabriq-backend/internal/features/users/enums"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type WorkspaceMembership struct {
	ID          uuid.UUID                 `json:"id"          gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID                 `json:"workspaceId" gorm:"type:uuid;not null;uniqueIndex:idx_workspace_user"`
	UserID      uuid.UUID                 `json:"userId"      gorm:"type:uuid;not null;uniqueIndex:idx_workspace_user"`
	Role        users_enums.WorkspaceRole `json:"role"        gorm:"not null"`
	CreatedAt   time.Time                 `json:"createdAt"   gorm:"not null"`
}

func (WorkspaceMembership) TableName() string {
	return "workspace_memberships"
}

func init() {
	storage.RegisterModels(&WorkspaceMembership{})
}
