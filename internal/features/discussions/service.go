package discussions

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"collabriq-backend/internal/features/audit_logs"
	users_models "collabriq-backend/internal/features/users/models"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
)

type DiscussionService struct {
	discussionRepository *DiscussionRepository
	workspaceService     *workspaces_services.WorkspaceService
}

func (s *DiscussionService) PostMessage(
	user *users_models.User,
	workspaceID uuid.UUID,
	text string,
) (*DiscussionMessage, error) {
	workspace, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityEditContent,
	)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("message cannot be empty")
	}

	message := &DiscussionMessage{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Message:     text,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.discussionRepository.Create(message); err != nil {
		return nil, err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Message posted in workspace %q", workspace.Name),
		&user.ID, &workspaceID,
	)

	return message, nil
}

// DeleteMessage is allowed for the message's author and for the workspace
// owner. Editors cannot remove other people's messages.
func (s *DiscussionService) DeleteMessage(
	user *users_models.User,
	messageID uuid.UUID,
) error {
	message, err := s.discussionRepository.GetByID(messageID)
	if err != nil {
		return err
	}
	if message == nil {
		return errors.New("message was not found")
	}

	workspace, err := s.workspaceService.Authorize(
		message.WorkspaceID, user, workspaces_enums.CapabilityViewContent,
	)
	if err != nil {
		return err
	}

	if message.UserID != user.ID && workspace.OwnerID != user.ID {
		return errors.New("you do not have permission to delete this message")
	}

	return s.discussionRepository.Delete(messageID)
}

// ListMessages returns the workspace discussion, newest first.
func (s *DiscussionService) ListMessages(
	user *users_models.User,
	workspaceID uuid.UUID,
) ([]MessageResponseDTO, error) {
	_, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityViewContent,
	)
	if err != nil {
		return nil, err
	}

	rows, err := s.discussionRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}

	messages := make([]MessageResponseDTO, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, MessageResponseDTO{
			ID:        row.ID,
			UserID:    row.UserID,
			Username:  row.Username,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}

	return messages, nil
}

func (s *DiscussionService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.discussionRepository.DeleteByWorkspaceID(workspaceID)
}
