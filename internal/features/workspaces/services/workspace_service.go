package workspaces_services

import (
	"errors"
	"fmt"
	"time"

	"collabriq-backend/internal/features/audit_logs"
	users_enums "collabriq-backend/internal/features/users/enums"
	users_models "collabriq-backend/internal/features/users/models"
	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_interfaces "collabriq-backend/internal/features/workspaces/interfaces"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	workspaces_repositories "collabriq-backend/internal/features/workspaces/repositories"
	"collabriq-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

type WorkspaceService struct {
	workspaceRepository  *workspaces_repositories.WorkspaceRepository
	membershipRepository *workspaces_repositories.MembershipRepository

	deletionListeners []workspaces_interfaces.WorkspaceDeletionListener
}

func (s *WorkspaceService) AddDeletionListener(
	listener workspaces_interfaces.WorkspaceDeletionListener,
) {
	s.deletionListeners = append(s.deletionListeners, listener)
}

// Authorize loads the workspace and checks the user holds the capability.
// Every workspace-scoped operation across features goes through here.
func (s *WorkspaceService) Authorize(
	workspaceID uuid.UUID,
	user *users_models.User,
	capability workspaces_enums.Capability,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, errors.New("workspace was not found")
	}

	membership, err := s.membershipRepository.GetByWorkspaceAndUser(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	switch capability {
	case workspaces_enums.CapabilityViewContent:
		if workspace.Visibility == workspaces_enums.VisibilityPublic || membership != nil {
			return workspace, nil
		}

		// Private workspaces are invisible to outsiders.
		return nil, errors.New("workspace was not found")

	case workspaces_enums.CapabilityEditContent:
		if membership != nil && membership.Role.CanEditContent() {
			return workspace, nil
		}

		return nil, errors.New("you do not have permission to modify this workspace's content")

	case workspaces_enums.CapabilityManageMembers:
		if membership != nil && membership.Role.CanEditContent() {
			return workspace, nil
		}

		return nil, errors.New("you do not have permission to manage this workspace's members")

	case workspaces_enums.CapabilityManageWorkspace:
		if workspace.OwnerID == user.ID {
			return workspace, nil
		}

		return nil, errors.New("only the workspace owner can perform this action")
	}

	return nil, fmt.Errorf("unknown capability: %s", capability)
}

func (s *WorkspaceService) CreateWorkspace(
	user *users_models.User,
	request *workspaces_dto.CreateWorkspaceRequestDTO,
) (*workspaces_models.Workspace, error) {
	if !request.Visibility.IsValid() {
		return nil, errors.New("visibility must be public or private")
	}

	workspace := &workspaces_models.Workspace{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		Visibility:  request.Visibility,
		OwnerID:     user.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.workspaceRepository.CreateWorkspaceWithOwner(workspace); err != nil {
		return nil, err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Workspace %q created", workspace.Name), &user.ID, &workspace.ID,
	)

	return workspace, nil
}

func (s *WorkspaceService) GetWorkspace(
	user *users_models.User,
	workspaceID uuid.UUID,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	workspace, err := s.Authorize(workspaceID, user, workspaces_enums.CapabilityViewContent)
	if err != nil {
		return nil, err
	}

	role, _, err := s.GetUserRole(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	response := toWorkspaceResponse(workspace, role)

	return &response, nil
}

// GetUserRole returns the user's role in the workspace, with found=false for
// non-members.
func (s *WorkspaceService) GetUserRole(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (users_enums.WorkspaceRole, bool, error) {
	membership, err := s.membershipRepository.GetByWorkspaceAndUser(workspaceID, userID)
	if err != nil {
		return "", false, err
	}
	if membership == nil {
		return "", false, nil
	}

	return membership.Role, true, nil
}

func (s *WorkspaceService) ChangeVisibility(
	user *users_models.User,
	workspaceID uuid.UUID,
	visibility workspaces_enums.WorkspaceVisibility,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.Authorize(workspaceID, user, workspaces_enums.CapabilityManageWorkspace)
	if err != nil {
		return nil, err
	}

	if !visibility.IsValid() {
		return nil, errors.New("visibility must be public or private")
	}

	workspace.Visibility = visibility
	if err := s.workspaceRepository.Save(workspace); err != nil {
		return nil, err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Workspace %q made %s", workspace.Name, visibility),
		&user.ID, &workspace.ID,
	)

	return workspace, nil
}

// DeleteWorkspace runs every registered deletion listener before the final
// cascade so no feature's workspace-scoped rows are orphaned.
func (s *WorkspaceService) DeleteWorkspace(
	user *users_models.User,
	workspaceID uuid.UUID,
) error {
	workspace, err := s.Authorize(workspaceID, user, workspaces_enums.CapabilityManageWorkspace)
	if err != nil {
		return err
	}

	for _, listener := range s.deletionListeners {
		if err := listener.OnBeforeWorkspaceDeletion(workspaceID); err != nil {
			log.Error(
				"Workspace deletion listener failed",
				"workspaceId", workspaceID, "error", err,
			)
			return err
		}
	}

	if err := s.workspaceRepository.DeleteWorkspaceCascade(workspaceID); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Workspace %q deleted", workspace.Name), &user.ID, nil,
	)

	return nil
}

func (s *WorkspaceService) ListWorkspaces(
	user *users_models.User,
) (*workspaces_dto.WorkspaceListResponseDTO, error) {
	owned, err := s.workspaceRepository.FindOwnedByUser(user.ID)
	if err != nil {
		return nil, err
	}

	joined, err := s.workspaceRepository.FindJoinedByUser(user.ID)
	if err != nil {
		return nil, err
	}

	response := &workspaces_dto.WorkspaceListResponseDTO{
		Owned:  make([]workspaces_dto.WorkspaceResponseDTO, 0, len(owned)),
		Joined: make([]workspaces_dto.WorkspaceResponseDTO, 0, len(joined)),
	}

	for _, workspace := range owned {
		response.Owned = append(
			response.Owned,
			toWorkspaceResponse(workspace, users_enums.WorkspaceRoleCreator),
		)
	}

	for _, row := range joined {
		response.Joined = append(
			response.Joined,
			toWorkspaceResponse(&row.Workspace, row.Role),
		)
	}

	return response, nil
}

func (s *WorkspaceService) SearchPublicWorkspaces(
	user *users_models.User,
	query string,
) ([]workspaces_dto.WorkspaceResponseDTO, error) {
	workspaces, err := s.workspaceRepository.SearchPublic(query, user.ID)
	if err != nil {
		return nil, err
	}

	results := make([]workspaces_dto.WorkspaceResponseDTO, 0, len(workspaces))
	for _, workspace := range workspaces {
		results = append(results, toWorkspaceResponse(workspace, ""))
	}

	return results, nil
}

func toWorkspaceResponse(
	workspace *workspaces_models.Workspace,
	role users_enums.WorkspaceRole,
) workspaces_dto.WorkspaceResponseDTO {
	return workspaces_dto.WorkspaceResponseDTO{
		ID:          workspace.ID,
		Name:        workspace.Name,
		Description: workspace.Description,
		Visibility:  workspace.Visibility,
		OwnerID:     workspace.OwnerID,
		IsForSale:   workspace.IsForSale,
		SalePrice:   workspace.SalePriceMinorUnits,
		CreatedAt:   workspace.CreatedAt,
		Role:        role,
	}
}
