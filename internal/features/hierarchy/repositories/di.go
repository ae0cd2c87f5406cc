package hierarchy_repositories

var folderRepository = &FolderRepository{}
var fileRepository = &FileRepository{}

func GetFolderRepository() *FolderRepository {
	return folderRepository
}

func GetFileRepository() *FileRepository {
	return fileRepository
}
