package hierarchy_models

import (
	"path/filepath"
	"strings"
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

// Extensions whose content can be viewed and edited as text in place.
var editableExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".json": true,
	".html": true,
	".css":  true,
	".js":   true,
	".py":   true,
}

type File struct {
	ID          uuid.UUID `json:"id"          gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"type:uuid;not null;index"`
	// Files always live inside a folder, never at the workspace root.
	FolderID    uuid.UUID `json:"folderId"    gorm:"type:uuid;not null;index"`
	Name        string    `json:"name"        gorm:"not null"`
	Description string    `json:"description"`
	BlobKey     string    `json:"-"           gorm:"not null"`
	UploadedBy  uuid.UUID `json:"uploadedBy"  gorm:"type:uuid;not null"`
	SizeBytes   int64     `json:"sizeBytes"   gorm:"not null"`
	IsEditable  bool      `json:"isEditable"  gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"not null"`
}

func (File) TableName() string {
	return "files"
}

func IsEditableName(name string) bool {
	return editableExtensions[strings.ToLower(filepath.Ext(name))]
}

func init() {
	storage.RegisterModels(&File{})
}
