package hierarchy_repositories

import (
	hierarchy_models "collabriq-backend/internal/features/hierarchy/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FolderRepository struct{}

func (r *FolderRepository) Create(folder *hierarchy_models.Folder) error {
	return storage.GetDb().Create(folder).Error
}

func (r *FolderRepository) GetByID(folderID uuid.UUID) (*hierarchy_models.Folder, error) {
	var folder hierarchy_models.Folder

	err := storage.GetDb().Where("id = ?", folderID).First(&folder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &folder, nil
}

// FindChildren lists direct subfolders. A nil parent selects the root
// folders of the workspace.
func (r *FolderRepository) FindChildren(
	workspaceID uuid.UUID,
	parentID *uuid.UUID,
) ([]*hierarchy_models.Folder, error) {
	var folders []*hierarchy_models.Folder

	query := storage.GetDb().Where("workspace_id = ?", workspaceID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	err := query.Order("name ASC").Find(&folders).Error

	return folders, err
}

func (r *FolderRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*hierarchy_models.Folder, error) {
	var folders []*hierarchy_models.Folder

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Find(&folders).Error

	return folders, err
}

func (r *FolderRepository) Rename(folderID uuid.UUID, name string) error {
	return storage.GetDb().Model(&hierarchy_models.Folder{}).
		Where("id = ?", folderID).
		Update("name", name).Error
}

func (r *FolderRepository) DeleteByIDs(folderIDs []uuid.UUID) error {
	if len(folderIDs) == 0 {
		return nil
	}

	return storage.GetDb().
		Where("id IN ?", folderIDs).
		Delete(&hierarchy_models.Folder{}).Error
}

func (r *FolderRepository) DeleteByWorkspaceID(workspaceID uuid.UUID) error {
	return storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Delete(&hierarchy_models.Folder{}).Error
}
