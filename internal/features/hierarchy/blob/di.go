package blob

import (
	"os"
	"sync"

	"collabriq-backend/internal/config"
	files_utils "collabriq-backend/internal/util/files"
	"collabriq-backend/internal/util/logger"
)

var log = logger.GetLogger()

var (
	fileStore FileStore
	once      sync.Once
)

func GetFileStore() FileStore {
	once.Do(func() {
		env := config.GetEnv()

		if env.BlobStore == config.BlobStoreS3 {
			store, err := NewS3Store()
			if err != nil {
				log.Error("Failed to initialize S3 blob store", "error", err)
				os.Exit(1)
			}

			fileStore = store
			return
		}

		if err := files_utils.EnsureDirectories([]string{env.DataFolder, env.TempFolder}); err != nil {
			log.Error("Failed to prepare blob folders", "error", err)
			os.Exit(1)
		}

		fileStore = &LocalStore{}
	})

	return fileStore
}
