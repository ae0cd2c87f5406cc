package hierarchy_models

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type Folder struct {
	ID          uuid.UUID  `json:"id"          gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID  `json:"workspaceId" gorm:"type:uuid;not null;index"`
	// Nil parent means the folder sits at the workspace root.
	ParentID  *uuid.UUID `json:"parentId"  gorm:"type:uuid;index"`
	Name      string     `json:"name"      gorm:"not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"not null"`
}

func (Folder) TableName() string {
	return "folders"
}

func init() {
	storage.RegisterModels(&Folder{})
}
