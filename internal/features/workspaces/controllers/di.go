package workspaces_controllers

import (
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
)

var workspaceController = &WorkspaceController{
	workspaceService: workspaces_services.GetWorkspaceService(),
}

var membershipController = &MembershipController{
	membershipService: workspaces_services.GetMembershipService(),
}

func GetWorkspaceController() *WorkspaceController {
	return workspaceController
}

func GetMembershipController() *MembershipController {
	return membershipController
}
