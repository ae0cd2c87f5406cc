package workspaces_services

import (
	"collabriq-backend/internal/features/audit_logs"
	users_repositories "collabriq-backend/internal/features/users/repositories"
	workspaces_repositories "collabriq-backend/internal/features/workspaces/repositories"
)

var workspaceService = &WorkspaceService{
	workspaceRepository:  workspaces_repositories.GetWorkspaceRepository(),
	membershipRepository: workspaces_repositories.GetMembershipRepository(),
}

var membershipService = &MembershipService{
	workspaceService:     workspaceService,
	membershipRepository: workspaces_repositories.GetMembershipRepository(),
	invitationRepository: workspaces_repositories.GetInvitationRepository(),
	userRepository:       users_repositories.GetUserRepository(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

// SetupDependencies wires the audit log feature to the capability gate and
// the deletion cascade. Audit logs cannot import this package directly.
func SetupDependencies() {
	audit_logs.GetAuditLogService().SetWorkspaceAuthorizer(workspaceService)
	workspaceService.AddDeletionListener(audit_logs.GetAuditLogService())
}
