package blob

import "context"

// FileStore holds file contents addressed by an opaque key. The database
// keeps the metadata, the store only sees bytes.
type FileStore interface {
	Save(ctx context.Context, key string, content []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
