package hierarchy_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFolderRequestDTO struct {
	Name     string     `json:"name" binding:"required,min=1,max=255"`
	ParentID *uuid.UUID `json:"parentId"`
}

type RenameRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type EditFileRequestDTO struct {
	Content string `json:"content"`
}

type FolderResponseDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parentId"`
	CreatedAt time.Time  `json:"createdAt"`
}

type FileResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FolderID    uuid.UUID `json:"folderId"`
	UploadedBy  uuid.UUID `json:"uploadedBy"`
	SizeBytes   int64     `json:"sizeBytes"`
	IsEditable  bool      `json:"isEditable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ResolveResponseDTO lists the children of one hierarchy level.
type ResolveResponseDTO struct {
	Folders []FolderResponseDTO `json:"folders"`
	Files   []FileResponseDTO   `json:"files"`
}

// BreadcrumbDTO is one step of the root-to-folder path.
type BreadcrumbDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type FileContentResponseDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Content string    `json:"content"`
}
