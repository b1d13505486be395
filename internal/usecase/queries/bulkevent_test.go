//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storecredit-engine/internal/domain/bulkevent"
	"storecredit-engine/internal/domain/order"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	previewStart = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	previewEnd   = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
)

type stubOrderSource struct {
	bySource  map[string][]order.Order
	listCalls int
}

func (s *stubOrderSource) ListOrders(_ context.Context, sources []string, _, _ time.Time) ([]order.Order, error) {
	s.listCalls++
	var out []order.Order
	for _, source := range sources {
		out = append(out, s.bySource[source]...)
	}
	return out, nil
}

func (s *stubOrderSource) ListSources(_ context.Context, _, _ time.Time) ([]bulkevent.SourceCount, int, error) {
	total := 0
	var counts []bulkevent.SourceCount
	for name, orders := range s.bySource {
		counts = append(counts, bulkevent.SourceCount{Name: name, Count: len(orders)})
		total += len(orders)
	}
	return counts, total, nil
}

type stubJobRepo struct {
	job *bulkevent.Job
}

func (s *stubJobRepo) FindByID(_ context.Context, _ uuid.UUID) (*bulkevent.Job, error) {
	if s.job == nil {
		return nil, infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	return s.job, nil
}

func paidOrder(id, customerID int64, source, subtotal string) order.Order {
	return order.Order{
		ID:              id,
		Source:          source,
		Customer:        order.Customer{ID: customerID},
		Subtotal:        decimal.RequireFromString(subtotal),
		FinancialStatus: order.FinancialStatusPaid,
		CreatedAt:       previewStart.Add(time.Hour),
	}
}

func previewRequest(sources ...string) bulkevent.Request {
	return bulkevent.Request{
		StartDatetime: previewStart,
		EndDatetime:   previewEnd,
		Sources:       sources,
		CreditPercent: decimal.NewFromInt(10),
	}
}

func TestPreview_MergesSourcesAndComputesTotals(t *testing.T) {
	src := &stubOrderSource{bySource: map[string][]order.Order{
		"web": {paidOrder(1, 100, "web", "100.00")},
		"pos": {paidOrder(2, 100, "pos", "50.00"), paidOrder(3, 200, "pos", "80.00")},
	}}
	q := queries.NewBulkEventQueries(src, &stubJobRepo{}, 10)

	view, err := q.Preview(context.Background(), previewRequest("web", "pos"))
	require.NoError(t, err)

	assert.Equal(t, 3, view.TotalOrders)
	assert.Equal(t, 2, view.UniqueCustomers)
	assert.Equal(t, "230.00", view.TotalOrderValue)
	assert.Equal(t, "23.00", view.TotalCreditToIssue)
	require.Len(t, view.TopCustomers, 2)
	assert.Equal(t, int64(100), view.TopCustomers[0].CustomerID)
	assert.Equal(t, "15.00", view.TopCustomers[0].Credit)
	// Both sources come out of one scan of the window.
	assert.Equal(t, 1, src.listCalls)
}

func TestPreview_Deterministic(t *testing.T) {
	src := &stubOrderSource{bySource: map[string][]order.Order{
		"web": {
			paidOrder(1, 300, "web", "10.00"),
			paidOrder(2, 100, "web", "20.00"),
			paidOrder(3, 200, "web", "30.00"),
		},
	}}
	q := queries.NewBulkEventQueries(src, &stubJobRepo{}, 10)

	first, err := q.Preview(context.Background(), previewRequest("web"))
	require.NoError(t, err)
	second, err := q.Preview(context.Background(), previewRequest("web"))
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(string(firstJSON), string(secondJSON)))
}

func TestPreview_InvalidRequest(t *testing.T) {
	q := queries.NewBulkEventQueries(&stubOrderSource{}, &stubJobRepo{}, 10)

	req := previewRequest("web")
	req.EndDatetime = req.StartDatetime
	_, err := q.Preview(context.Background(), req)
	require.ErrorIs(t, err, queries.ErrInvalidBulkRequest)
}

func TestSources_CountsByChannel(t *testing.T) {
	src := &stubOrderSource{bySource: map[string][]order.Order{
		"web": {paidOrder(1, 100, "web", "10.00"), paidOrder(2, 200, "web", "20.00")},
		"pos": {paidOrder(3, 300, "pos", "30.00")},
	}}
	q := queries.NewBulkEventQueries(src, &stubJobRepo{}, 10)

	view, err := q.Sources(context.Background(), previewStart, previewEnd)
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalOrders)
	assert.Len(t, view.Sources, 2)
}

func TestSources_RejectsInvertedRange(t *testing.T) {
	q := queries.NewBulkEventQueries(&stubOrderSource{}, &stubJobRepo{}, 10)

	_, err := q.Sources(context.Background(), previewEnd, previewStart)
	require.ErrorIs(t, err, queries.ErrInvalidBulkRequest)
}

func TestGetJob_NotFound(t *testing.T) {
	q := queries.NewBulkEventQueries(&stubOrderSource{}, &stubJobRepo{}, 10)

	_, err := q.GetJob(context.Background(), uuid.New())
	require.ErrorIs(t, err, queries.ErrJobNotFound)
}
