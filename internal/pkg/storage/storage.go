package storage

import (
	"context"
	"io"
)

// FileStorage keeps generated documents such as monthly salary workbooks.
type FileStorage interface {
	// Save writes the content under path, replacing an existing file, and
	// returns the cleaned key.
	Save(ctx context.Context, path string, content io.Reader) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
