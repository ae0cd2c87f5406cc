package hierarchy_repositories

import (
	hierarchy_models "collabriq-backend/internal/features/hierarchy/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileRepository struct{}

func (r *FileRepository) Create(file *hierarchy_models.File) error {
	return storage.GetDb().Create(file).Error
}

func (r *FileRepository) GetByID(fileID uuid.UUID) (*hierarchy_models.File, error) {
	var file hierarchy_models.File

	err := storage.GetDb().Where("id = ?", fileID).First(&file).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &file, nil
}

func (r *FileRepository) FindByFolderID(
	folderID uuid.UUID,
) ([]*hierarchy_models.File, error) {
	var files []*hierarchy_models.File

	err := storage.GetDb().
		Where("folder_id = ?", folderID).
		Order("name ASC").
		Find(&files).Error

	return files, err
}

func (r *FileRepository) FindByFolderIDs(
	folderIDs []uuid.UUID,
) ([]*hierarchy_models.File, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}

	var files []*hierarchy_models.File

	err := storage.GetDb().
		Where("folder_id IN ?", folderIDs).
		Find(&files).Error

	return files, err
}

func (r *FileRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*hierarchy_models.File, error) {
	var files []*hierarchy_models.File

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Find(&files).Error

	return files, err
}

func (r *FileRepository) Save(file *hierarchy_models.File) error {
	return storage.GetDb().Save(file).Error
}

func (r *FileRepository) Rename(fileID uuid.UUID, name string) error {
	return storage.GetDb().Model(&hierarchy_models.File{}).
		Where("id = ?", fileID).
		Update("name", name).Error
}

func (r *FileRepository) Delete(fileID uuid.UUID) error {
	return storage.GetDb().Delete(&hierarchy_models.File{}, fileID).Error
}

func (r *FileRepository) DeleteByIDs(fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 {
		return nil
	}

	return storage.GetDb().
		Where("id IN ?", fileIDs).
		Delete(&hierarchy_models.File{}).Error
}
