package hierarchy_controllers

import (
	hierarchy_services "collabriq-backend/internal/features/hierarchy/services"
)

var folderController = &FolderController{
	folderService: hierarchy_services.GetFolderService(),
}

var fileController = &FileController{
	fileService: hierarchy_services.GetFileService(),
}

func GetFolderController() *FolderController {
	return folderController
}

func GetFileController() *FileController {
	return fileController
}
