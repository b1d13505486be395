package queries

import (
	"context"
	"time"

	"storecredit-engine/internal/domain/bulkevent"
	"storecredit-engine/internal/domain/order"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidBulkRequest = errs.New("invalid bulk event request")
	ErrJobNotFound        = errs.New("job not found")
	ErrOrderFetchFailed   = errs.New("order fetch failed")
)

// OrderSource is the read port onto the shop's order history. ListOrders
// returns every order inside [start, end] whose channel is in sources, in a
// single scan of the window regardless of how many sources are requested.
type OrderSource interface {
	ListOrders(ctx context.Context, sources []string, start, end time.Time) ([]order.Order, error)
	ListSources(ctx context.Context, start, end time.Time) ([]bulkevent.SourceCount, int, error)
}

type SourceView struct {
	Name       string `json:"name"`
	OrderCount int    `json:"count"`
}

type SourcesView struct {
	Sources     []SourceView `json:"sources"`
	TotalOrders int          `json:"total_orders"`
}

type TopCustomerView struct {
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email,omitempty"`
	OrderCount int    `json:"order_count"`
	OrderValue string `json:"order_value"`
	Credit     string `json:"credit"`
}

type PreviewView struct {
	TotalOrders        int               `json:"total_orders"`
	UniqueCustomers    int               `json:"unique_customers"`
	TotalOrderValue    string            `json:"total_order_value"`
	TotalCreditToIssue string            `json:"total_credit_to_issue"`
	TopCustomers       []TopCustomerView `json:"top_customers"`
	OrdersBySource     []SourceView      `json:"orders_by_source"`
}

type JobErrorView struct {
	CustomerID int64  `json:"customer_id"`
	Reason     string `json:"reason"`
}

type JobView struct {
	ID                uuid.UUID      `json:"id"`
	Status            string         `json:"status"`
	SuccessCount      int            `json:"success_count"`
	FailureCount      int            `json:"failure_count"`
	TotalCreditIssued string         `json:"total_credit_issued"`
	Errors            []JobErrorView `json:"errors"`
	StartedAt         time.Time      `json:"started_at"`
	FinishedAt        *time.Time     `json:"finished_at,omitempty"`
}

type BulkEventQueries interface {
	Sources(ctx context.Context, start, end time.Time) (*SourcesView, error)
	Preview(ctx context.Context, req bulkevent.Request) (*PreviewView, error)
	GetJob(ctx context.Context, id uuid.UUID) (*JobView, error)
}

type JobReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*bulkevent.Job, error)
}

type bulkEventQueriesImpl struct {
	orders  OrderSource
	jobRepo JobReadRepo
	topN    int
}

func NewBulkEventQueries(orders OrderSource, jobRepo JobReadRepo, previewTopN int) BulkEventQueries {
	return &bulkEventQueriesImpl{orders: orders, jobRepo: jobRepo, topN: previewTopN}
}

func (q *bulkEventQueriesImpl) Sources(ctx context.Context, start, end time.Time) (*SourcesView, error) {
	if !end.After(start) {
		return nil, errs.Mark(bulkevent.ErrInvalidRange, ErrInvalidBulkRequest)
	}
	counts, total, err := q.orders.ListSources(ctx, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderFetchFailed)
	}
	view := &SourcesView{TotalOrders: total, Sources: make([]SourceView, 0, len(counts))}
	for _, c := range counts {
		view.Sources = append(view.Sources, SourceView{Name: c.Name, OrderCount: c.Count})
	}
	return view, nil
}

func (q *bulkEventQueriesImpl) Preview(ctx context.Context, req bulkevent.Request) (*PreviewView, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidBulkRequest)
	}

	orders, err := FetchOrders(ctx, q.orders, req)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderFetchFailed)
	}

	plan := bulkevent.BuildPlan(req, orders)
	return toPreviewView(plan.BuildPreview(q.topN)), nil
}

func (q *bulkEventQueriesImpl) GetJob(ctx context.Context, id uuid.UUID) (*JobView, error) {
	job, err := q.jobRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return ToJobView(job), nil
}

// FetchOrders pulls the requested window once. Source filtering happens
// inside the order source during that scan, so an N-source request never
// re-reads the window N times. Result order does not matter downstream: plan
// building sorts everything it aggregates.
func FetchOrders(ctx context.Context, src OrderSource, req bulkevent.Request) ([]order.Order, error) {
	orders, err := src.ListOrders(ctx, req.NormalizedSources(), req.StartDatetime, req.EndDatetime)
	if err != nil {
		return nil, errs.Wrap(err, "fetch orders")
	}
	return orders, nil
}

func toPreviewView(p bulkevent.Preview) *PreviewView {
	view := &PreviewView{
		TotalOrders:        p.TotalOrders,
		UniqueCustomers:    p.UniqueCustomers,
		TotalOrderValue:    p.TotalOrderValue.StringFixed(2),
		TotalCreditToIssue: p.TotalCreditToIssue.StringFixed(2),
		TopCustomers:       make([]TopCustomerView, 0, len(p.TopCustomers)),
		OrdersBySource:     make([]SourceView, 0, len(p.OrdersBySource)),
	}
	for _, tc := range p.TopCustomers {
		view.TopCustomers = append(view.TopCustomers, TopCustomerView{
			CustomerID: tc.CustomerID,
			Email:      tc.Email,
			OrderCount: tc.OrderCount,
			OrderValue: tc.OrderValue.StringFixed(2),
			Credit:     tc.Credit.StringFixed(2),
		})
	}
	for _, sc := range p.OrdersBySource {
		view.OrdersBySource = append(view.OrdersBySource, SourceView{Name: sc.Name, OrderCount: sc.Count})
	}
	return view
}

func ToJobView(job *bulkevent.Job) *JobView {
	view := &JobView{
		ID:                job.ID(),
		Status:            string(job.Status()),
		SuccessCount:      job.SuccessCount(),
		FailureCount:      job.FailureCount(),
		TotalCreditIssued: job.TotalCreditIssued().StringFixed(2),
		Errors:            make([]JobErrorView, 0, len(job.Errors())),
		StartedAt:         job.StartedAt(),
		FinishedAt:        job.FinishedAt(),
	}
	for _, e := range job.Errors() {
		view.Errors = append(view.Errors, JobErrorView{CustomerID: e.CustomerID, Reason: e.Reason})
	}
	return view
}
