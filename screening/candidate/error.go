package candidate

import (
	"net/http"

	"github.com/talentshift/ats/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeInvalidRequest        = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid candidate request")
	CodeUnsupportedFileType   = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusUnsupportedMediaType, "Only PDF and DOCX files are supported")
	CodeMissingFile           = ErrRegistry.Register("MISSING_FILE", errx.TypeValidation, http.StatusBadRequest, "No file uploaded")
	CodeInvalidPipelineStatus = ErrRegistry.Register("INVALID_PIPELINE_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid pipeline status")
	CodeStorageFailed         = ErrRegistry.Register("STORAGE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store resume file")
	CodeQueueFailed           = ErrRegistry.Register("QUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue processing job")
	CodeExportFailed          = ErrRegistry.Register("EXPORT_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to export candidates")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrMissingFile() *errx.Error {
	return ErrRegistry.New(CodeMissingFile)
}

func ErrInvalidPipelineStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidPipelineStatus)
}

func ErrStorageFailed() *errx.Error {
	return ErrRegistry.New(CodeStorageFailed)
}

func ErrQueueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueFailed)
}

func ErrExportFailed() *errx.Error {
	return ErrRegistry.New(CodeExportFailed)
}
