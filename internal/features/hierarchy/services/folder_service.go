package hierarchy_services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"collabriq-backend/internal/features/audit_logs"
	"collabriq-backend/internal/features/hierarchy/blob"
	hierarchy_dto "collabriq-backend/internal/features/hierarchy/dto"
	hierarchy_models "collabriq-backend/internal/features/hierarchy/models"
	hierarchy_repositories "collabriq-backend/internal/features/hierarchy/repositories"
	users_models "collabriq-backend/internal/features/users/models"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
	"collabriq-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

type FolderService struct {
	folderRepository *hierarchy_repositories.FolderRepository
	fileRepository   *hierarchy_repositories.FileRepository
	workspaceService *workspaces_services.WorkspaceService
}

func (s *FolderService) CreateFolder(
	user *users_models.User,
	workspaceID uuid.UUID,
	parentID *uuid.UUID,
	name string,
) (*hierarchy_models.Folder, error) {
	workspace, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityEditContent,
	)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("folder name cannot be empty")
	}

	if parentID != nil {
		parent, err := s.folderRepository.GetByID(*parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.WorkspaceID != workspaceID {
			return nil, errors.New("parent folder was not found")
		}
	}

	folder := &hierarchy_models.Folder{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		ParentID:    parentID,
		Name:        name,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.folderRepository.Create(folder); err != nil {
		return nil, err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Folder %q created in workspace %q", name, workspace.Name),
		&user.ID, &workspaceID,
	)

	return folder, nil
}

// Resolve lists one hierarchy level: nil folderID yields the root folders
// and an empty file list, files only live inside folders.
func (s *FolderService) Resolve(
	user *users_models.User,
	workspaceID uuid.UUID,
	folderID *uuid.UUID,
) (*hierarchy_dto.ResolveResponseDTO, error) {
	_, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityViewContent,
	)
	if err != nil {
		return nil, err
	}

	if folderID != nil {
		folder, err := s.folderRepository.GetByID(*folderID)
		if err != nil {
			return nil, err
		}
		if folder == nil || folder.WorkspaceID != workspaceID {
			return nil, errors.New("folder was not found")
		}
	}

	folders, err := s.folderRepository.FindChildren(workspaceID, folderID)
	if err != nil {
		return nil, err
	}

	response := &hierarchy_dto.ResolveResponseDTO{
		Folders: make([]hierarchy_dto.FolderResponseDTO, 0, len(folders)),
		Files:   []hierarchy_dto.FileResponseDTO{},
	}

	for _, folder := range folders {
		response.Folders = append(response.Folders, hierarchy_dto.FolderResponseDTO{
			ID:        folder.ID,
			Name:      folder.Name,
			ParentID:  folder.ParentID,
			CreatedAt: folder.CreatedAt,
		})
	}

	if folderID != nil {
		files, err := s.fileRepository.FindByFolderID(*folderID)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			response.Files = append(response.Files, toFileResponse(file))
		}
	}

	return response, nil
}

// GetHierarchy returns the breadcrumb path from the workspace root down to
// the folder.
func (s *FolderService) GetHierarchy(
	user *users_models.User,
	folderID uuid.UUID,
) ([]hierarchy_dto.BreadcrumbDTO, error) {
	folder, err := s.folderRepository.GetByID(folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errors.New("folder was not found")
	}

	_, err = s.workspaceService.Authorize(
		folder.WorkspaceID, user, workspaces_enums.CapabilityViewContent,
	)
	if err != nil {
		return nil, err
	}

	var reversed []hierarchy_dto.BreadcrumbDTO
	current := folder
	for {
		reversed = append(reversed, hierarchy_dto.BreadcrumbDTO{
			ID:   current.ID,
			Name: current.Name,
		})

		if current.ParentID == nil {
			break
		}

		current, err = s.folderRepository.GetByID(*current.ParentID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			break
		}
	}

	breadcrumbs := make([]hierarchy_dto.BreadcrumbDTO, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		breadcrumbs = append(breadcrumbs, reversed[i])
	}

	return breadcrumbs, nil
}

func (s *FolderService) RenameFolder(
	user *users_models.User,
	folderID uuid.UUID,
	name string,
) error {
	folder, err := s.folderRepository.GetByID(folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return errors.New("folder was not found")
	}

	_, err = s.workspaceService.Authorize(
		folder.WorkspaceID, user, workspaces_enums.CapabilityEditContent,
	)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("folder name cannot be empty")
	}

	return s.folderRepository.Rename(folderID, name)
}

// DeleteFolder removes the folder and its whole subtree: every descendant
// folder, every file in them, and the files' blobs.
func (s *FolderService) DeleteFolder(
	ctx context.Context,
	user *users_models.User,
	folderID uuid.UUID,
) error {
	folder, err := s.folderRepository.GetByID(folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return errors.New("folder was not found")
	}

	workspace, err := s.workspaceService.Authorize(
		folder.WorkspaceID, user, workspaces_enums.CapabilityEditContent,
	)
	if err != nil {
		return err
	}

	folderIDs, err := s.collectSubtree(folder)
	if err != nil {
		return err
	}

	files, err := s.fileRepository.FindByFolderIDs(folderIDs)
	if err != nil {
		return err
	}

	fileIDs := make([]uuid.UUID, 0, len(files))
	for _, file := range files {
		fileIDs = append(fileIDs, file.ID)

		if err := blob.GetFileStore().Delete(ctx, file.BlobKey); err != nil {
			// Orphan blobs are preferable to a stuck deletion.
			log.Error("Failed to delete blob", "key", file.BlobKey, "error", err)
		}
	}

	if err := s.fileRepository.DeleteByIDs(fileIDs); err != nil {
		return err
	}

	if err := s.folderRepository.DeleteByIDs(folderIDs); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Folder %q deleted from workspace %q", folder.Name, workspace.Name),
		&user.ID, &workspace.ID,
	)

	return nil
}

// collectSubtree gathers the folder and all of its descendants with a single
// workspace-wide query and an in-memory walk.
func (s *FolderService) collectSubtree(
	root *hierarchy_models.Folder,
) ([]uuid.UUID, error) {
	all, err := s.folderRepository.FindByWorkspaceID(root.WorkspaceID)
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]uuid.UUID, len(all))
	for _, folder := range all {
		if folder.ParentID != nil {
			children[*folder.ParentID] = append(children[*folder.ParentID], folder.ID)
		}
	}

	var result []uuid.UUID
	queue := []uuid.UUID{root.ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		result = append(result, current)
		queue = append(queue, children[current]...)
	}

	return result, nil
}

// OnBeforeWorkspaceDeletion drops every folder and file of the workspace,
// blobs included.
func (s *FolderService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	files, err := s.fileRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	fileIDs := make([]uuid.UUID, 0, len(files))
	for _, file := range files {
		fileIDs = append(fileIDs, file.ID)

		if err := blob.GetFileStore().Delete(ctx, file.BlobKey); err != nil {
			log.Error("Failed to delete blob", "key", file.BlobKey, "error", err)
		}
	}

	if err := s.fileRepository.DeleteByIDs(fileIDs); err != nil {
		return err
	}

	return s.folderRepository.DeleteByWorkspaceID(workspaceID)
}

func toFileResponse(file *hierarchy_models.File) hierarchy_dto.FileResponseDTO {
	return hierarchy_dto.FileResponseDTO{
		ID:          file.ID,
		Name:        file.Name,
		Description: file.Description,
		FolderID:    file.FolderID,
		UploadedBy:  file.UploadedBy,
		SizeBytes:   file.SizeBytes,
		IsEditable:  file.IsEditable,
		CreatedAt:   file.CreatedAt,
		UpdatedAt:   file.UpdatedAt,
	}
}
