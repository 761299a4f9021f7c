// Package fsx abstracts file storage behind narrow interfaces so services do
// not depend on a concrete backend.
package fsx

import "context"

// FileReader reads stored file contents.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileSystem is the full storage contract used by upload flows.
type FileSystem interface {
	FileReader
	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
	DeleteFile(ctx context.Context, path string) error
}
