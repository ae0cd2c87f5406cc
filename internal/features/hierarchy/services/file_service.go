package hierarchy_services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"collabriq-backend/internal/features/audit_logs"
	"collabriq-backend/internal/features/hierarchy/blob"
	hierarchy_models "collabriq-backend/internal/features/hierarchy/models"
	hierarchy_repositories "collabriq-backend/internal/features/hierarchy/repositories"
	users_models "collabriq-backend/internal/features/users/models"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
)

type FileService struct {
	fileRepository   *hierarchy_repositories.FileRepository
	folderRepository *hierarchy_repositories.FolderRepository
	workspaceService *workspaces_services.WorkspaceService
}

func (s *FileService) UploadFile(
	ctx context.Context,
	user *users_models.User,
	workspaceID uuid.UUID,
	folderID uuid.UUID,
	name string,
	description string,
	content []byte,
) (*hierarchy_models.File, error) {
	workspace, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityEditContent,
	)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("file name cannot be empty")
	}

	folder, err := s.folderRepository.GetByID(folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil || folder.WorkspaceID != workspaceID {
		return nil, errors.New("folder was not found")
	}

	file := &hierarchy_models.File{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		FolderID:    folderID,
		Name:        name,
		Description: description,
		BlobKey:     uuid.New().String(),
		UploadedBy:  user.ID,
		SizeBytes:   int64(len(content)),
		IsEditable:  hierarchy_models.IsEditableName(name),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := blob.GetFileStore().Save(ctx, file.BlobKey, content); err != nil {
		return nil, errors.New("failed to store file content")
	}

	if err := s.fileRepository.Create(file); err != nil {
		// Don't leave the blob behind when the row insert fails.
		if deleteErr := blob.GetFileStore().Delete(ctx, file.BlobKey); deleteErr != nil {
			log.Error("Failed to clean up blob", "key", file.BlobKey, "error", deleteErr)
		}

		return nil, err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("File %q uploaded to workspace %q", name, workspace.Name),
		&user.ID, &workspaceID,
	)

	return file, nil
}

func (s *FileService) DownloadFile(
	ctx context.Context,
	user *users_models.User,
	fileID uuid.UUID,
) (*hierarchy_models.File, []byte, error) {
	file, err := s.authorizeFileAccess(user, fileID, workspaces_enums.CapabilityViewContent)
	if err != nil {
		return nil, nil, err
	}

	content, err := blob.GetFileStore().Read(ctx, file.BlobKey)
	if err != nil {
		log.Error("Failed to read blob", "key", file.BlobKey, "error", err)
		return nil, nil, errors.New("failed to read file content")
	}

	return file, content, nil
}

// ViewTextFile returns the content as text for files on the editable
// allow-list.
func (s *FileService) ViewTextFile(
	ctx context.Context,
	user *users_models.User,
	fileID uuid.UUID,
) (*hierarchy_models.File, string, error) {
	file, err := s.authorizeFileAccess(user, fileID, workspaces_enums.CapabilityViewContent)
	if err != nil {
		return nil, "", err
	}

	if !file.IsEditable {
		return nil, "", errors.New("this file type cannot be viewed or edited as text")
	}

	content, err := blob.GetFileStore().Read(ctx, file.BlobKey)
	if err != nil {
		log.Error("Failed to read blob", "key", file.BlobKey, "error", err)
		return nil, "", errors.New("failed to read file content")
	}

	return file, string(content), nil
}

// EditFile rewrites the content of an editable file and bumps its updated
// timestamp.
func (s *FileService) EditFile(
	ctx context.Context,
	user *users_models.User,
	fileID uuid.UUID,
	content string,
) error {
	file, err := s.authorizeFileAccess(user, fileID, workspaces_enums.CapabilityEditContent)
	if err != nil {
		return err
	}

	if !file.IsEditable {
		return errors.New("this file type cannot be viewed or edited as text")
	}

	if err := blob.GetFileStore().Save(ctx, file.BlobKey, []byte(content)); err != nil {
		return errors.New("failed to store file content")
	}

	file.SizeBytes = int64(len(content))
	file.UpdatedAt = time.Now().UTC()

	return s.fileRepository.Save(file)
}

func (s *FileService) RenameFile(
	user *users_models.User,
	fileID uuid.UUID,
	name string,
) error {
	file, err := s.authorizeFileAccess(user, fileID, workspaces_enums.CapabilityEditContent)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("file name cannot be empty")
	}

	if err := s.fileRepository.Rename(file.ID, name); err != nil {
		return err
	}

	// Renaming can move the file on or off the text allow-list.
	if editable := hierarchy_models.IsEditableName(name); editable != file.IsEditable {
		file.Name = name
		file.IsEditable = editable
		return s.fileRepository.Save(file)
	}

	return nil
}

func (s *FileService) DeleteFile(
	ctx context.Context,
	user *users_models.User,
	fileID uuid.UUID,
) error {
	file, err := s.authorizeFileAccess(user, fileID, workspaces_enums.CapabilityEditContent)
	if err != nil {
		return err
	}

	if err := blob.GetFileStore().Delete(ctx, file.BlobKey); err != nil {
		log.Error("Failed to delete blob", "key", file.BlobKey, "error", err)
	}

	if err := s.fileRepository.Delete(fileID); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("File %q deleted", file.Name), &user.ID, &file.WorkspaceID,
	)

	return nil
}

func (s *FileService) authorizeFileAccess(
	user *users_models.User,
	fileID uuid.UUID,
	capability workspaces_enums.Capability,
) (*hierarchy_models.File, error) {
	file, err := s.fileRepository.GetByID(fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, errors.New("file was not found")
	}

	_, err = s.workspaceService.Authorize(file.WorkspaceID, user, capability)
	if err != nil {
		return nil, err
	}

	return file, nil
}
