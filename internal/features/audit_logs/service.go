package audit_logs

import (
	"errors"
	"time"

	users_models "collabriq-backend/internal/features/users/models"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	"collabriq-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

const defaultLogLimit = 100

// WorkspaceAuthorizer is the workspace capability gate, injected at startup
// because the workspaces feature imports this package.
type WorkspaceAuthorizer interface {
	Authorize(
		workspaceID uuid.UUID,
		user *users_models.User,
		capability workspaces_enums.Capability,
	) (*workspaces_models.Workspace, error)
}

type AuditLogService struct {
	auditLogRepository  *AuditLogRepository
	workspaceAuthorizer WorkspaceAuthorizer
}

func (s *AuditLogService) SetWorkspaceAuthorizer(authorizer WorkspaceAuthorizer) {
	s.workspaceAuthorizer = authorizer
}

// WriteAuditLog persists an audit entry. Failures are logged and swallowed,
// auditing never blocks the operation being audited.
func (s *AuditLogService) WriteAuditLog(message string, userID *uuid.UUID, workspaceID *uuid.UUID) {
	entry := &AuditLog{
		ID:          uuid.New(),
		Message:     message,
		UserID:      userID,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.auditLogRepository.Save(entry); err != nil {
		log.Error("Failed to write audit log", "message", message, "error", err)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	user *users_models.User,
	workspaceID uuid.UUID,
) ([]*AuditLog, error) {
	if s.workspaceAuthorizer == nil {
		return nil, errors.New("audit log service is not wired")
	}

	_, err := s.workspaceAuthorizer.Authorize(
		workspaceID, user, workspaces_enums.CapabilityViewContent,
	)
	if err != nil {
		return nil, err
	}

	return s.auditLogRepository.FindByWorkspaceID(workspaceID, defaultLogLimit)
}

// OnBeforeWorkspaceDeletion drops the audit trail of a workspace being
// removed.
func (s *AuditLogService) OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error {
	return s.auditLogRepository.DeleteByWorkspaceID(workspaceID)
}
