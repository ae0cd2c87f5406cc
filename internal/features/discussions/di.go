package discussions

import (
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
)

var discussionService = &DiscussionService{
	discussionRepository: &DiscussionRepository{},
	workspaceService:     workspaces_services.GetWorkspaceService(),
}

var discussionController = &DiscussionController{
	discussionService: discussionService,
}

func GetDiscussionService() *DiscussionService {
	return discussionService
}

func GetDiscussionController() *DiscussionController {
	return discussionController
}

// SetupDependencies registers the discussion log as a workspace deletion
// listener.
func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddDeletionListener(discussionService)
}
