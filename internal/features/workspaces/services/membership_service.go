package workspaces_services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"collabriq-backend/internal/config"
	"collabriq-backend/internal/features/audit_logs"
	"collabriq-backend/internal/features/mail"
	users_enums "collabriq-backend/internal/features/users/enums"
	users_models "collabriq-backend/internal/features/users/models"
	users_repositories "collabriq-backend/internal/features/users/repositories"
	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	workspaces_repositories "collabriq-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type MembershipService struct {
	workspaceService     *WorkspaceService
	membershipRepository *workspaces_repositories.MembershipRepository
	invitationRepository *workspaces_repositories.InvitationRepository
	userRepository       *users_repositories.UserRepository
}

func (s *MembershipService) GetMembers(
	user *users_models.User,
	workspaceID uuid.UUID,
) ([]workspaces_dto.MemberResponseDTO, error) {
	_, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityViewContent,
	)
	if err != nil {
		return nil, err
	}

	rows, err := s.membershipRepository.FindMembersWithUsers(workspaceID)
	if err != nil {
		return nil, err
	}

	members := make([]workspaces_dto.MemberResponseDTO, 0, len(rows))
	for _, row := range rows {
		members = append(members, workspaces_dto.MemberResponseDTO{
			MembershipID: row.MembershipID,
			UserID:       row.UserID,
			Username:     row.Username,
			Email:        row.Email,
			Role:         row.Role,
			JoinedAt:     row.JoinedAt,
		})
	}

	return members, nil
}

// InviteUser creates a pending invitation and mails the join link. The
// invitation row is kept even when the mail fails, the owner can resend.
func (s *MembershipService) InviteUser(
	user *users_models.User,
	workspaceID uuid.UUID,
	email string,
) error {
	workspace, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityManageWorkspace,
	)
	if err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	invitee, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if invitee != nil {
		membership, err := s.membershipRepository.GetByWorkspaceAndUser(workspaceID, invitee.ID)
		if err != nil {
			return err
		}
		if membership != nil {
			return errors.New("user is already a member of this workspace")
		}
	}

	existing, err := s.invitationRepository.GetByWorkspaceAndEmail(workspaceID, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("an invitation for this email is already pending")
	}

	invitation := &workspaces_models.WorkspaceInvitation{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Email:       email,
		Token:       uuid.New(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.invitationRepository.Create(invitation); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("%s invited to workspace %q", email, workspace.Name),
		&user.ID, &workspaceID,
	)

	link := fmt.Sprintf(
		"%s/workspaces/%s/join?token=%s",
		config.GetEnv().AppBaseURL, workspaceID, invitation.Token,
	)
	body := fmt.Sprintf(
		"Hello,\n\nYou were invited to the workspace %q.\nFollow this link to join:\n%s",
		workspace.Name, link,
	)

	if err := mail.GetMailSender().Send(email, "Workspace invitation", body); err != nil {
		log.Error("Failed to send invitation email", "email", email, "error", err)
		return errors.New("invitation created but the email could not be sent")
	}

	return nil
}

// JoinWorkspace adds the user as a viewer. Entry is through public
// visibility or an invitation token matching the user's email. An existing
// member is a no-op.
func (s *MembershipService) JoinWorkspace(
	user *users_models.User,
	workspaceID uuid.UUID,
	token *uuid.UUID,
) error {
	workspace, err := s.workspaceService.workspaceRepository.GetByID(workspaceID)
	if err != nil {
		return err
	}
	if workspace == nil {
		return errors.New("workspace was not found")
	}

	membership, err := s.membershipRepository.GetByWorkspaceAndUser(workspaceID, user.ID)
	if err != nil {
		return err
	}
	if membership != nil {
		// Already in, nothing to do.
		return nil
	}

	allowed := workspace.Visibility == workspaces_enums.VisibilityPublic

	var invitation *workspaces_models.WorkspaceInvitation
	if !allowed && token != nil {
		invitation, err = s.invitationRepository.GetByWorkspaceAndToken(workspaceID, *token)
		if err != nil {
			return err
		}

		allowed = invitation != nil && invitation.Email == strings.ToLower(user.Email)
	}

	if !allowed {
		// Outsiders cannot tell a private workspace from a missing one.
		return errors.New("workspace was not found")
	}

	newMembership := &workspaces_models.WorkspaceMembership{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        users_enums.WorkspaceRoleViewer,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.membershipRepository.Create(newMembership); err != nil {
		return err
	}

	if invitation != nil {
		if err := s.invitationRepository.Delete(invitation.ID); err != nil {
			log.Error("Failed to delete consumed invitation", "error", err)
		}
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("%s joined workspace %q", user.Username, workspace.Name),
		&user.ID, &workspaceID,
	)

	return nil
}

func (s *MembershipService) ChangeMemberRole(
	user *users_models.User,
	membershipID uuid.UUID,
	role users_enums.WorkspaceRole,
) error {
	membership, err := s.membershipRepository.GetByID(membershipID)
	if err != nil {
		return err
	}
	if membership == nil {
		return errors.New("membership was not found")
	}

	workspace, err := s.workspaceService.Authorize(
		membership.WorkspaceID, user, workspaces_enums.CapabilityManageMembers,
	)
	if err != nil {
		return err
	}

	if !role.IsValid() {
		return errors.New("role must be viewer, editor or creator")
	}
	if membership.Role == users_enums.WorkspaceRoleCreator {
		return errors.New("the creator's role cannot be changed")
	}
	if membership.UserID == user.ID {
		return errors.New("you cannot change your own role")
	}

	if err := s.membershipRepository.UpdateRole(membershipID, role); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Member role changed to %s in workspace %q", role, workspace.Name),
		&user.ID, &workspace.ID,
	)

	return nil
}

func (s *MembershipService) RemoveMember(
	user *users_models.User,
	membershipID uuid.UUID,
) error {
	membership, err := s.membershipRepository.GetByID(membershipID)
	if err != nil {
		return err
	}
	if membership == nil {
		return errors.New("membership was not found")
	}

	workspace, err := s.workspaceService.Authorize(
		membership.WorkspaceID, user, workspaces_enums.CapabilityManageMembers,
	)
	if err != nil {
		return err
	}

	if membership.Role == users_enums.WorkspaceRoleCreator {
		return errors.New("the creator cannot be removed from the workspace")
	}

	if err := s.membershipRepository.Delete(membershipID); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Member removed from workspace %q", workspace.Name),
		&user.ID, &workspace.ID,
	)

	return nil
}
