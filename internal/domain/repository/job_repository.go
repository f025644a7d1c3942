package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindBySlug(ctx context.Context, slug string) (*model.Job, error)
	List(ctx context.Context, keyword string, limit, offset int) ([]model.Job, int, error)
	Latest(ctx context.Context, limit int) ([]model.Job, error)
}

type pgJobRepository struct {
	db *sql.DB
}

func NewPgJobRepository(db *sql.DB) JobRepository {
	return &pgJobRepository{db: db}
}

const jobColumns = `id, title, slug, description, requirements, salary, location, job_type, positions, company_name, created_by, created_at, updated_at`

func (r *pgJobRepository) Create(ctx context.Context, job *model.Job) error {
	requirements, err := json.Marshal(job.Requirements)
	if err != nil {
		return fmt.Errorf("pgJobRepository.Create: marshal requirements: %w", err)
	}
	query := `INSERT INTO jobs (id, title, slug, description, requirements, salary, location, job_type, positions, company_name, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecContext(ctx, query,
		job.ID, job.Title, job.Slug, job.Description, requirements,
		job.Salary, job.Location, job.JobType, job.Positions, job.CompanyName, job.CreatedByID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // duplicate slug
			return fmt.Errorf("job with the same title already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgJobRepository.Create: %w", err)
	}
	return nil
}

func (r *pgJobRepository) FindBySlug(ctx context.Context, slug string) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = $1`
	row := r.db.QueryRowContext(ctx, query, slug)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgJobRepository.FindBySlug: %w", err)
	}
	return job, nil
}

func (r *pgJobRepository) List(ctx context.Context, keyword string, limit, offset int) ([]model.Job, int, error) {
	pattern := "%" + keyword + "%"

	var total int
	countQuery := `SELECT count(*) FROM jobs
	               WHERE title ILIKE $1 OR description ILIKE $1 OR company_name ILIKE $1`
	if err := r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgJobRepository.List: count: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE title ILIKE $1 OR description ILIKE $1 OR company_name ILIKE $1
	          ORDER BY created_at DESC
	          LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("pgJobRepository.List: %w", err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("pgJobRepository.List: %w", err)
	}
	return jobs, total, nil
}

func (r *pgJobRepository) Latest(ctx context.Context, limit int) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pgJobRepository.Latest: %w", err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("pgJobRepository.Latest: %w", err)
	}
	return jobs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*model.Job, error) {
	job := &model.Job{}
	var requirements []byte
	err := row.Scan(
		&job.ID, &job.Title, &job.Slug, &job.Description, &requirements,
		&job.Salary, &job.Location, &job.JobType, &job.Positions, &job.CompanyName,
		&job.CreatedByID, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(requirements) > 0 {
		if err := json.Unmarshal(requirements, &job.Requirements); err != nil {
			return nil, fmt.Errorf("unmarshal requirements: %w", err)
		}
	}
	return job, nil
}

func collectJobs(rows *sql.Rows) ([]model.Job, error) {
	var jobs []model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
