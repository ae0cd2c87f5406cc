package hierarchy_services

import (
	hierarchy_repositories "collabriq-backend/internal/features/hierarchy/repositories"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
)

var folderService = &FolderService{
	folderRepository: hierarchy_repositories.GetFolderRepository(),
	fileRepository:   hierarchy_repositories.GetFileRepository(),
	workspaceService: workspaces_services.GetWorkspaceService(),
}

var fileService = &FileService{
	fileRepository:   hierarchy_repositories.GetFileRepository(),
	folderRepository: hierarchy_repositories.GetFolderRepository(),
	workspaceService: workspaces_services.GetWorkspaceService(),
}

func GetFolderService() *FolderService {
	return folderService
}

func GetFileService() *FileService {
	return fileService
}

// SetupDependencies registers the hierarchy as a workspace deletion
// listener so folders, files and blobs go away with their workspace.
func SetupDependencies() {
	workspaces_services.GetWorkspaceService().AddDeletionListener(folderService)
}
