package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"collabriq-backend/internal/config"
)

// LocalStore keeps blobs as plain files under the data folder. Writes go
// through the temp folder and are renamed into place so readers never see a
// half-written blob.
type LocalStore struct{}

func (s *LocalStore) Save(ctx context.Context, key string, content []byte) error {
	env := config.GetEnv()

	tempPath := filepath.Join(env.TempFolder, key)
	finalPath := filepath.Join(env.DataFolder, key)

	if err := os.WriteFile(tempPath, content, 0o600); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to move blob %s into place: %w", key, err)
	}

	return nil
}

func (s *LocalStore) Read(ctx context.Context, key string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(config.GetEnv().DataFolder, key))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}

	return content, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(config.GetEnv().DataFolder, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}

	return nil
}
