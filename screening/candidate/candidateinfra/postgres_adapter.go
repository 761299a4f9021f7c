package candidateinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/talentshift/ats/internal/cvparse"
	"github.com/talentshift/ats/internal/scoring"
	"github.com/talentshift/ats/pkg/kernel"
	"github.com/talentshift/ats/screening/candidate"
)

// PostgresCandidateRepository implements candidate.Repository using PostgreSQL
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidateRepository creates a new PostgreSQL candidate repository
func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{
		db: db,
	}
}

// EnsureSchema creates the candidates table if it does not exist.
func (r *PostgresCandidateRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS candidates (
			id              TEXT PRIMARY KEY,
			job_id          TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			filename        TEXT NOT NULL,
			name            TEXT NOT NULL DEFAULT '',
			email           TEXT NOT NULL DEFAULT '',
			phone           TEXT NOT NULL DEFAULT '',
			location        TEXT NOT NULL DEFAULT '',
			total_score     DOUBLE PRECISION NOT NULL,
			qualification   TEXT NOT NULL,
			pipeline_status TEXT NOT NULL DEFAULT 'review',
			breakdown       JSONB NOT NULL DEFAULT '{}',
			profile         JSONB NOT NULL DEFAULT '{}',
			resume_path     TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates(job_id);
		CREATE INDEX IF NOT EXISTS idx_candidates_total_score ON candidates(total_score DESC);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create candidates table: %w", err)
	}
	return nil
}

// ============================================================================
// Database Model
// ============================================================================

type candidateModel struct {
	ID             string          `db:"id"`
	JobID          string          `db:"job_id"`
	Filename       string          `db:"filename"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	Location       string          `db:"location"`
	TotalScore     float64         `db:"total_score"`
	Qualification  string          `db:"qualification"`
	PipelineStatus string          `db:"pipeline_status"`
	Breakdown      json.RawMessage `db:"breakdown"`
	Profile        json.RawMessage `db:"profile"`
	ResumePath     string          `db:"resume_path"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *candidateModel) toEntity() (*candidate.Candidate, error) {
	var breakdown map[string]scoring.ScoreBreakdown
	if len(m.Breakdown) > 0 {
		if err := json.Unmarshal(m.Breakdown, &breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
		}
	}

	var profile cvparse.CandidateProfile
	if len(m.Profile) > 0 {
		if err := json.Unmarshal(m.Profile, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
		}
	}

	return &candidate.Candidate{
		ID:             kernel.CandidateID(m.ID),
		JobID:          kernel.JobID(m.JobID),
		Filename:       m.Filename,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Location:       m.Location,
		TotalScore:     m.TotalScore,
		Qualification:  scoring.QualificationStatus(m.Qualification),
		PipelineStatus: candidate.PipelineStatus(m.PipelineStatus),
		Breakdown:      breakdown,
		Profile:        profile,
		ResumePath:     m.ResumePath,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(c *candidate.Candidate) (*candidateModel, error) {
	breakdown, err := json.Marshal(c.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	return &candidateModel{
		ID:             string(c.ID),
		JobID:          string(c.JobID),
		Filename:       c.Filename,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Location:       c.Location,
		TotalScore:     c.TotalScore,
		Qualification:  string(c.Qualification),
		PipelineStatus: string(c.PipelineStatus),
		Breakdown:      breakdown,
		Profile:        profile,
		ResumePath:     c.ResumePath,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

const candidateColumns = `
	id, job_id, filename, name, email, phone, location,
	total_score, qualification, pipeline_status,
	breakdown, profile, resume_path, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new candidate record
func (r *PostgresCandidateRepository) Create(ctx context.Context, entity *candidate.Candidate) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidates (
			id, job_id, filename, name, email, phone, location,
			total_score, qualification, pipeline_status,
			breakdown, profile, resume_path, created_at, updated_at
		) VALUES (
			:id, :job_id, :filename, :name, :email, :phone, :location,
			:total_score, :qualification, :pipeline_status,
			:breakdown, :profile, :resume_path, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// Update updates an existing candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, entity *candidate.Candidate) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE candidates SET
			name = :name,
			email = :email,
			phone = :phone,
			location = :location,
			total_score = :total_score,
			qualification = :qualification,
			pipeline_status = :pipeline_status,
			breakdown = :breakdown,
			profile = :profile,
			resume_path = :resume_path,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}
	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by id: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a candidate by ID
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}
	return nil
}

// buildFilters renders the WHERE clause for a listing request.
func buildFilters(req candidate.ListCandidatesRequest) (string, []any) {
	var clauses []string
	var args []any

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if !req.JobID.IsEmpty() {
		clauses = append(clauses, "job_id = "+arg(string(req.JobID)))
	}
	if req.PipelineStatus != "" {
		clauses = append(clauses, "pipeline_status = "+arg(string(req.PipelineStatus)))
	}
	if req.MinScore != nil {
		clauses = append(clauses, "total_score >= "+arg(*req.MinScore))
	}
	if req.MaxScore != nil {
		clauses = append(clauses, "total_score <= "+arg(*req.MaxScore))
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		clauses = append(clauses, "(name ILIKE "+arg(pattern)+" OR email ILIKE "+arg(pattern)+")")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// List retrieves candidates matching the filters, ordered by total score
// descending
func (r *PostgresCandidateRepository) List(ctx context.Context, req candidate.ListCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	where, args := buildFilters(req)

	var total int64
	countQuery := "SELECT COUNT(*) FROM candidates " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM candidates
		%s
		ORDER BY total_score DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, candidateColumns, where, len(args)+1, len(args)+2)
	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []candidateModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	entities := make([]candidate.Candidate, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &candidate.PaginatedCandidatesResponse{
		Items:    entities,
		Total:    total,
		Page:     req.Pagination.Page,
		PageSize: req.Pagination.PageSize,
	}, nil
}

// ListAll retrieves every candidate for a job, ordered by total score
// descending
func (r *PostgresCandidateRepository) ListAll(ctx context.Context, jobID kernel.JobID) ([]candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var args []any
	if !jobID.IsEmpty() {
		query += ` WHERE job_id = $1`
		args = append(args, string(jobID))
	}
	query += ` ORDER BY total_score DESC, created_at DESC`

	var models []candidateModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list all candidates: %w", err)
	}

	entities := make([]candidate.Candidate, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// UpdatePipelineStatus updates only the pipeline status
func (r *PostgresCandidateRepository) UpdatePipelineStatus(ctx context.Context, id kernel.CandidateID, status candidate.PipelineStatus) error {
	query := `UPDATE candidates SET pipeline_status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, string(status), time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update pipeline status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}
	return nil
}

// Count counts candidates, optionally for one job
func (r *PostgresCandidateRepository) Count(ctx context.Context, jobID kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM candidates`
	var args []any
	if !jobID.IsEmpty() {
		query += ` WHERE job_id = $1`
		args = append(args, string(jobID))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return total, nil
}
