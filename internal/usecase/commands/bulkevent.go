package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storecredit-engine/internal/domain/bulkevent"
	"storecredit-engine/internal/infra/credit"
	"storecredit-engine/internal/pkg/clock"
	"storecredit-engine/internal/pkg/config"
	"storecredit-engine/internal/pkg/errs"
	"storecredit-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidBulkRequest = errs.New("invalid bulk event request")
	ErrOrderFetchFailed   = errs.New("order fetch failed")
)

const reasonNotAttempted = "issuance not attempted: run stopped"

type CreditIssuer interface {
	Issue(ctx context.Context, req credit.IssueRequest) error
}

type JobRepository interface {
	Create(ctx context.Context, job *bulkevent.Job, requestJSON []byte) error
	AppendError(ctx context.Context, jobID uuid.UUID, customerID int64, reason string) error
	Finalize(ctx context.Context, job *bulkevent.Job) error
}

type IssuanceRepository interface {
	TryBegin(ctx context.Context, key string, jobID uuid.UUID, customerID int64, amount decimal.Decimal) (alreadyIssued bool, err error)
	MarkIssued(ctx context.Context, key string) error
	Release(ctx context.Context, key string) error
}

type BulkEventCommands interface {
	Run(ctx context.Context, req bulkevent.Request) (*queries.JobView, error)
}

type bulkEventUseCaseImpl struct {
	orders       queries.OrderSource
	issuer       CreditIssuer
	jobRepo      JobRepository
	issuanceRepo IssuanceRepository
	clock        clock.Clock
	cfg          config.BulkConfig
}

func NewBulkEventUseCase(
	orders queries.OrderSource,
	issuer CreditIssuer,
	jobRepo JobRepository,
	issuanceRepo IssuanceRepository,
	clock clock.Clock,
	cfg config.BulkConfig,
) BulkEventCommands {
	return &bulkEventUseCaseImpl{
		orders:       orders,
		issuer:       issuer,
		jobRepo:      jobRepo,
		issuanceRepo: issuanceRepo,
		clock:        clock,
		cfg:          cfg,
	}
}

// Run re-aggregates the request against live order data and issues one credit
// per entitled customer. A preview is never trusted as input: orders drift
// between preview and run, so the run recomputes from scratch. Per-customer
// failures are recorded and the batch continues; the job reaches Completed
// even when some customers failed.
func (u *bulkEventUseCaseImpl) Run(ctx context.Context, req bulkevent.Request) (*queries.JobView, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidBulkRequest)
	}

	orders, err := queries.FetchOrders(ctx, u.orders, req)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderFetchFailed)
	}
	plan := bulkevent.BuildPlan(req, orders)

	job := bulkevent.NewJob()
	if err := job.Start(u.clock.Now()); err != nil {
		return nil, err
	}
	requestJSON, err := json.Marshal(requestSnapshot(req))
	if err != nil {
		return nil, errs.Wrap(err, "snapshot bulk request")
	}
	if err := u.jobRepo.Create(ctx, job, requestJSON); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Writes that account for work already done must land even after the
	// deadline fires, so persistence runs on an uncancelable context.
	persistCtx := context.WithoutCancel(ctx)
	runCtx, cancel := context.WithTimeout(ctx, u.cfg.RunDeadline)
	defer cancel()

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(u.cfg.IssueConcurrency)

	for _, ent := range plan.Entitlements {
		ent := ent
		if runCtx.Err() != nil {
			u.recordFailure(persistCtx, job, &mu, ent.CustomerID, reasonNotAttempted)
			continue
		}
		g.Go(func() error {
			u.issueOne(runCtx, persistCtx, job, &mu, req, ent)
			return nil
		})
	}
	_ = g.Wait()

	mu.Lock()
	if ctx.Err() != nil {
		err = job.Fail(u.clock.Now())
	} else {
		err = job.Complete(u.clock.Now())
	}
	mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := u.jobRepo.Finalize(persistCtx, job); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return queries.ToJobView(job), nil
}

// issueOne handles a single customer end to end: claim the ledger row, call
// the credit API, settle the ledger, record the outcome. The customer is the
// unit of serialization; nothing else touches this idempotency key while the
// task runs.
func (u *bulkEventUseCaseImpl) issueOne(
	runCtx, persistCtx context.Context,
	job *bulkevent.Job,
	mu *sync.Mutex,
	req bulkevent.Request,
	ent bulkevent.Entitlement,
) {
	if runCtx.Err() != nil {
		u.recordFailure(persistCtx, job, mu, ent.CustomerID, reasonNotAttempted)
		return
	}

	key := bulkevent.IssuanceKey(req, ent.CustomerID)
	alreadyIssued, err := u.issuanceRepo.TryBegin(persistCtx, key, job.ID(), ent.CustomerID, ent.Credit)
	if err != nil {
		u.recordFailure(persistCtx, job, mu, ent.CustomerID, "idempotency claim failed: "+err.Error())
		return
	}
	if alreadyIssued {
		// A previous run already credited this customer for the exact same
		// request; count it as satisfied without touching the credit API.
		u.recordSuccess(job, mu, ent.Credit)
		return
	}

	// Once dispatched, the issuance runs to completion even if the run
	// deadline fires mid-flight.
	issueCtx := context.WithoutCancel(runCtx)
	issueErr := u.issuer.Issue(issueCtx, credit.IssueRequest{
		CustomerID:     ent.CustomerID,
		Email:          ent.Email,
		Amount:         ent.Credit,
		Description:    issuanceDescription(req),
		IdempotencyKey: key,
		ExpiresAt:      req.ExpiresAt,
	})
	if issueErr != nil {
		if relErr := u.issuanceRepo.Release(persistCtx, key); relErr != nil {
			slog.Warn("failed to release issuance claim", "key", key, "error", relErr)
		}
		u.recordFailure(persistCtx, job, mu, ent.CustomerID, issueErr.Error())
		return
	}

	if err := u.issuanceRepo.MarkIssued(persistCtx, key); err != nil {
		// The credit went out; the claim row stays pending and still blocks
		// duplicates. Count the success and leave a trace.
		slog.Warn("issued credit but failed to mark ledger", "key", key, "error", err)
	}
	u.recordSuccess(job, mu, ent.Credit)
}

func (u *bulkEventUseCaseImpl) recordSuccess(job *bulkevent.Job, mu *sync.Mutex, amount decimal.Decimal) {
	mu.Lock()
	defer mu.Unlock()
	if err := job.RecordSuccess(amount); err != nil {
		slog.Warn("failed to record success", "job_id", job.ID(), "error", err)
	}
}

func (u *bulkEventUseCaseImpl) recordFailure(ctx context.Context, job *bulkevent.Job, mu *sync.Mutex, customerID int64, reason string) {
	mu.Lock()
	if err := job.RecordFailure(customerID, reason); err != nil {
		slog.Warn("failed to record failure", "job_id", job.ID(), "error", err)
	}
	mu.Unlock()

	if err := u.jobRepo.AppendError(ctx, job.ID(), customerID, reason); err != nil {
		slog.Warn("failed to persist job error", "job_id", job.ID(), "customer_id", customerID, "error", err)
	}
}

func requestSnapshot(req bulkevent.Request) map[string]any {
	snapshot := map[string]any{
		"start_datetime":     req.StartDatetime.UTC().Format(time.RFC3339Nano),
		"end_datetime":       req.EndDatetime.UTC().Format(time.RFC3339Nano),
		"sources":            req.NormalizedSources(),
		"credit_percent":     req.CreditPercent.String(),
		"include_authorized": req.IncludeAuthorized,
	}
	if len(req.CollectionIDs) > 0 {
		snapshot["collection_ids"] = req.CollectionIDs
	}
	if len(req.ProductTags) > 0 {
		snapshot["product_tags"] = req.ProductTags
	}
	if req.ExpiresAt != nil {
		snapshot["expires_at"] = req.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return snapshot
}

func issuanceDescription(req bulkevent.Request) string {
	return fmt.Sprintf("Retroactive store credit for orders %s to %s",
		req.StartDatetime.Format("2006-01-02"), req.EndDatetime.Format("2006-01-02"))
}
