package repository

import (
	"context"
	"errors"
	"time"

	"storecredit-engine/internal/domain/bulkevent"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type JobRepository struct {
	db db.DBTX
}

func NewJobRepository(dbtx db.DBTX) *JobRepository {
	return &JobRepository{db: dbtx}
}

// Create persists the job record in its running state, together with the
// request snapshot that produced it.
func (r *JobRepository) Create(ctx context.Context, job *bulkevent.Job, requestJSON []byte) error {
	query := `
	INSERT INTO bulk_credit_jobs (
		id, status, success_count, failure_count, total_credit_issued,
		request, started_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		job.ID(), string(job.Status()), job.SuccessCount(), job.FailureCount(),
		job.TotalCreditIssued(), requestJSON, job.StartedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create bulk credit job", err)
	}
	return nil
}

// AppendError records one per-customer failure. The job row's counters are
// only settled at Finalize; error rows are append-only while running.
func (r *JobRepository) AppendError(ctx context.Context, jobID uuid.UUID, customerID int64, reason string) error {
	query := `
	INSERT INTO bulk_credit_job_errors (job_id, customer_id, reason)
	VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, jobID, customerID, reason)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("job not found for error record", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append job error", err)
	}
	return nil
}

// Finalize writes the terminal snapshot of the job. Terminal rows are never
// updated again.
func (r *JobRepository) Finalize(ctx context.Context, job *bulkevent.Job) error {
	query := `
	UPDATE bulk_credit_jobs SET
		status = $2, success_count = $3, failure_count = $4,
		total_credit_issued = $5, finished_at = $6
	WHERE id = $1 AND status = 'running'`

	tag, err := r.db.Exec(ctx, query,
		job.ID(), string(job.Status()), job.SuccessCount(), job.FailureCount(),
		job.TotalCreditIssued(), job.FinishedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to finalize job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("job not running or not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulkevent.Job, error) {
	row := r.db.QueryRow(ctx, `
	SELECT id, status, success_count, failure_count, total_credit_issued,
	       started_at, finished_at
	FROM bulk_credit_jobs WHERE id = $1`, id)

	var (
		jobID             uuid.UUID
		status            string
		successCount      int
		failureCount      int
		totalCreditIssued decimal.Decimal
		startedAt         time.Time
		finishedAt        *time.Time
	)
	err := row.Scan(&jobID, &status, &successCount, &failureCount, &totalCreditIssued, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job by ID", err)
	}

	issueErrors, err := r.listErrors(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return bulkevent.ReconstructJob(
		jobID, bulkevent.JobStatus(status), successCount, failureCount,
		totalCreditIssued, issueErrors, startedAt, finishedAt,
	), nil
}

func (r *JobRepository) listErrors(ctx context.Context, jobID uuid.UUID) ([]bulkevent.IssueError, error) {
	rows, err := r.db.Query(ctx, `
	SELECT customer_id, reason
	FROM bulk_credit_job_errors WHERE job_id = $1 ORDER BY id`, jobID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list job errors", err)
	}
	defer rows.Close()

	var out []bulkevent.IssueError
	for rows.Next() {
		var e bulkevent.IssueError
		if err := rows.Scan(&e.CustomerID, &e.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan job error row", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate job error rows", err)
	}
	return out, nil
}
