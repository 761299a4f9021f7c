package candidateapi

import (
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/screening/candidate"
	"github.com/talentshift/ats/screening/candidate/candidatesrv"
)

var validate = validator.New()

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.Service
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// readUpload extracts the bytes and metadata of one uploaded file.
func readUpload(header *multipart.FileHeader) (content []byte, contentType string, err error) {
	f, err := header.Open()
	if err != nil {
		return nil, "", candidate.ErrInvalidRequest().
			WithDetail("filename", header.Filename).
			WithCause(err)
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		return nil, "", candidate.ErrInvalidRequest().
			WithDetail("filename", header.Filename).
			WithCause(err)
	}
	return content, header.Header.Get("Content-Type"), nil
}

// ParseCV extracts a profile from an uploaded résumé
// POST /api/cv/parse
func (h *Handlers) ParseCV(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return candidate.ErrMissingFile()
	}

	content, contentType, err := readUpload(header)
	if err != nil {
		return err
	}

	profile, err := h.service.ParseResume(c.Context(), header.Filename, contentType, content)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// ScoreCV parses and scores an uploaded résumé against a job
// POST /api/cv/score?job_id=...&save=true
func (h *Handlers) ScoreCV(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Query("job_id"))
	if jobID.IsEmpty() {
		return candidate.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return candidate.ErrMissingFile()
	}

	content, contentType, err := readUpload(header)
	if err != nil {
		return err
	}

	result, err := h.service.ScoreResume(c.Context(), candidate.ScoreUploadRequest{
		JobID:       jobID,
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     content,
		Save:        c.QueryBool("save", false),
	})
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// BatchCV queues many résumés for background scoring
// POST /api/cv/batch?job_id=...
func (h *Handlers) BatchCV(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Query("job_id"))
	if jobID.IsEmpty() {
		return candidate.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return candidate.ErrMissingFile()
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return candidate.ErrMissingFile()
	}

	req := candidate.BatchUploadRequest{JobID: jobID}
	for _, header := range headers {
		content, contentType, err := readUpload(header)
		if err != nil {
			return err
		}
		req.Files = append(req.Files, candidate.BatchFile{
			Filename:    header.Filename,
			ContentType: contentType,
			Content:     content,
		})
	}

	resp, err := h.service.QueueBatch(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// ListCandidates retrieves candidates with filters
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	req := candidate.ListCandidatesRequest{
		JobID:          kernel.JobID(c.Query("job_id")),
		PipelineStatus: candidate.PipelineStatus(c.Query("status")),
		Search:         c.Query("search"),
		Pagination:     parsePaginationOptions(c),
	}
	if v := c.QueryFloat("min_score", -1); v >= 0 {
		req.MinScore = &v
	}
	if v := c.QueryFloat("max_score", -1); v >= 0 {
		req.MaxScore = &v
	}

	candidates, err := h.service.ListCandidates(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// GetCandidate retrieves a candidate by ID
// GET /api/candidates/:id
func (h *Handlers) GetCandidate(c *fiber.Ctx) error {
	id := kernel.CandidateID(c.Params("id"))
	if id.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.GetCandidate(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(entity)
}

// UpdateCandidateStatus moves a candidate through the pipeline
// PUT /api/candidates/:id/status
func (h *Handlers) UpdateCandidateStatus(c *fiber.Ctx) error {
	id := kernel.CandidateID(c.Params("id"))
	if id.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	var req candidate.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	entity, err := h.service.UpdatePipelineStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(entity)
}

// DeleteCandidate removes a candidate and its stored résumé
// DELETE /api/candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	id := kernel.CandidateID(c.Params("id"))
	if id.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCandidate(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Candidate deleted"})
}

// GetStats returns aggregate candidate statistics
// GET /api/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context(), kernel.JobID(c.Query("job_id")))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// GetAnalytics returns stats plus frequency breakdowns
// GET /api/analytics
func (h *Handlers) GetAnalytics(c *fiber.Ctx) error {
	analytics, err := h.service.Analytics(c.Context(), kernel.JobID(c.Query("job_id")))
	if err != nil {
		return err
	}
	return c.JSON(analytics)
}

// ExportCandidates downloads ranked candidates as CSV or XLSX
// GET /api/export/candidates?job_id=...&format=csv|xlsx
func (h *Handlers) ExportCandidates(c *fiber.Ctx) error {
	result, err := h.service.Export(c.Context(), candidate.ExportRequest{
		JobID:  kernel.JobID(c.Query("job_id")),
		Format: c.Query("format", "csv"),
	})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Content)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	// Ensure valid values
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	cv := app.Group("/api/cv")
	cv.Post("/parse", handlers.ParseCV)
	cv.Post("/score", handlers.ScoreCV)
	cv.Post("/batch", handlers.BatchCV)

	candidates := app.Group("/api/candidates")
	candidates.Get("/", handlers.ListCandidates)
	candidates.Get("/:id", handlers.GetCandidate)
	candidates.Put("/:id/status", handlers.UpdateCandidateStatus)
	candidates.Delete("/:id", handlers.DeleteCandidate)

	app.Get("/api/stats", handlers.GetStats)
	app.Get("/api/analytics", handlers.GetAnalytics)
	app.Get("/api/export/candidates", handlers.ExportCandidates)
}
