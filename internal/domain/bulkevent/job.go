package bulkevent

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrJobNotRunning = errors.New("job is not running")
	ErrJobTerminal   = errors.New("job already reached a terminal status")
)

type JobStatus string

const (
	JobStatusPlanned   JobStatus = "planned"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// IssueError is the per-customer failure detail retained for manual retry.
type IssueError struct {
	CustomerID int64
	Reason     string
}

// Job is the persisted record of one bulk run. It is created only by run(),
// append-only while running, and immutable once terminal. Partial failure is
// its normal terminal shape, not an exception.
type Job struct {
	id                uuid.UUID
	status            JobStatus
	successCount      int
	failureCount      int
	totalCreditIssued decimal.Decimal
	errors            []IssueError
	startedAt         time.Time
	finishedAt        *time.Time
}

func NewJob() *Job {
	return &Job{
		id:                uuid.New(),
		status:            JobStatusPlanned,
		totalCreditIssued: decimal.Zero,
	}
}

func ReconstructJob(
	id uuid.UUID,
	status JobStatus,
	successCount, failureCount int,
	totalCreditIssued decimal.Decimal,
	errs []IssueError,
	startedAt time.Time,
	finishedAt *time.Time,
) *Job {
	return &Job{
		id:                id,
		status:            status,
		successCount:      successCount,
		failureCount:      failureCount,
		totalCreditIssued: totalCreditIssued,
		errors:            errs,
		startedAt:         startedAt,
		finishedAt:        finishedAt,
	}
}

func (j *Job) Start(now time.Time) error {
	if j.status != JobStatusPlanned {
		return ErrJobTerminal
	}
	j.status = JobStatusRunning
	j.startedAt = now
	return nil
}

func (j *Job) RecordSuccess(amount decimal.Decimal) error {
	if j.status != JobStatusRunning {
		return ErrJobNotRunning
	}
	j.successCount++
	j.totalCreditIssued = j.totalCreditIssued.Add(amount)
	return nil
}

func (j *Job) RecordFailure(customerID int64, reason string) error {
	if j.status != JobStatusRunning {
		return ErrJobNotRunning
	}
	j.failureCount++
	j.errors = append(j.errors, IssueError{CustomerID: customerID, Reason: reason})
	return nil
}

// Complete finalizes a run in which every customer was attempted (or
// explicitly accounted as a failure). A cancelled run completes with partial
// counts; it is never abandoned.
func (j *Job) Complete(now time.Time) error {
	if j.status != JobStatusRunning {
		return ErrJobNotRunning
	}
	j.status = JobStatusCompleted
	j.finishedAt = &now
	return nil
}

// Fail marks a run that died before attempting all customers, keeping the
// partial results already recorded.
func (j *Job) Fail(now time.Time) error {
	if j.status != JobStatusRunning {
		return ErrJobNotRunning
	}
	j.status = JobStatusFailed
	j.finishedAt = &now
	return nil
}

func (j *Job) ID() uuid.UUID                      { return j.id }
func (j *Job) Status() JobStatus                  { return j.status }
func (j *Job) SuccessCount() int                  { return j.successCount }
func (j *Job) FailureCount() int                  { return j.failureCount }
func (j *Job) TotalCreditIssued() decimal.Decimal { return j.totalCreditIssued }
func (j *Job) StartedAt() time.Time               { return j.startedAt }
func (j *Job) FinishedAt() *time.Time             { return j.finishedAt }

func (j *Job) Errors() []IssueError {
	out := make([]IssueError, len(j.errors))
	copy(out, j.errors)
	return out
}
