//go:build unit

package bulkevent_test

import (
	"encoding/json"
	"testing"
	"time"

	"storecredit-engine/internal/domain/bulkevent"
	"storecredit-engine/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rangeStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
)

func webRequest(percent int64) bulkevent.Request {
	return bulkevent.Request{
		StartDatetime: rangeStart,
		EndDatetime:   rangeEnd,
		Sources:       []string{"web"},
		CreditPercent: decimal.NewFromInt(percent),
	}
}

func paidOrder(id, customerID int64, subtotal string, createdAt time.Time) order.Order {
	return order.Order{
		ID:              id,
		Source:          "web",
		Customer:        order.Customer{ID: customerID, Email: "c@example.com"},
		Subtotal:        decimal.RequireFromString(subtotal),
		FinancialStatus: order.FinancialStatusPaid,
		CreatedAt:       createdAt,
	}
}

func TestBuildPlan_SingleCustomerTotals(t *testing.T) {
	// Two web orders of $100 and $50 from the same customer at 10% credit.
	req := webRequest(10)
	orders := []order.Order{
		paidOrder(1, 42, "100.00", rangeStart.Add(time.Hour)),
		paidOrder(2, 42, "50.00", rangeStart.Add(2*time.Hour)),
	}

	plan := bulkevent.BuildPlan(req, orders)
	preview := plan.BuildPreview(10)

	assert.Equal(t, 2, preview.TotalOrders)
	assert.Equal(t, 1, preview.UniqueCustomers)
	assert.Equal(t, "150.00", preview.TotalOrderValue.StringFixed(2))
	assert.Equal(t, "15.00", preview.TotalCreditToIssue.StringFixed(2))
	require.Len(t, preview.TopCustomers, 1)
	assert.Equal(t, int64(42), preview.TopCustomers[0].CustomerID)
	assert.Equal(t, "15.00", preview.TopCustomers[0].Credit.StringFixed(2))
	require.Len(t, preview.OrdersBySource, 1)
	assert.Equal(t, bulkevent.SourceCount{Name: "web", Count: 2}, preview.OrdersBySource[0])
}

func TestBuildPlan_Deterministic(t *testing.T) {
	req := bulkevent.Request{
		StartDatetime: rangeStart,
		EndDatetime:   rangeEnd,
		Sources:       []string{"web", "pos"},
		CreditPercent: decimal.RequireFromString("7.5"),
	}
	orders := []order.Order{
		paidOrder(1, 9, "19.99", rangeStart.Add(time.Minute)),
		paidOrder(2, 3, "200.00", rangeStart.Add(2*time.Minute)),
		paidOrder(3, 9, "5.01", rangeStart.Add(3*time.Minute)),
	}
	orders[1].Source = "pos"

	first := bulkevent.BuildPlan(req, orders).BuildPreview(10)
	second := bulkevent.BuildPlan(req, orders).BuildPreview(10)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	// Byte-identical output over an unchanged order set.
	assert.Equal(t, string(firstJSON), string(secondJSON))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("preview mismatch (-first +second):\n%s", diff)
	}
}

func TestBuildPlan_Filters(t *testing.T) {
	req := webRequest(10)

	t.Run("orders from unselected sources are skipped", func(t *testing.T) {
		o := paidOrder(1, 1, "100.00", rangeStart.Add(time.Hour))
		o.Source = "pos"
		plan := bulkevent.BuildPlan(req, []order.Order{o})
		assert.Zero(t, plan.TotalOrders)
	})

	t.Run("orders outside the range are skipped", func(t *testing.T) {
		plan := bulkevent.BuildPlan(req, []order.Order{
			paidOrder(1, 1, "100.00", rangeEnd.Add(time.Second)),
			paidOrder(2, 1, "100.00", rangeStart.Add(-time.Second)),
		})
		assert.Zero(t, plan.TotalOrders)
	})

	t.Run("refunded orders are excluded at aggregation time", func(t *testing.T) {
		refunded := paidOrder(1, 1, "100.00", rangeStart.Add(time.Hour))
		refunded.FinancialStatus = order.FinancialStatusRefunded
		voided := paidOrder(2, 1, "40.00", rangeStart.Add(time.Hour))
		voided.FinancialStatus = order.FinancialStatusVoided
		kept := paidOrder(3, 1, "60.00", rangeStart.Add(time.Hour))

		plan := bulkevent.BuildPlan(req, []order.Order{refunded, voided, kept})
		assert.Equal(t, 1, plan.TotalOrders)
		assert.Equal(t, "60.00", plan.TotalOrderValue.StringFixed(2))
	})

	t.Run("authorized orders honor the includeAuthorized flag", func(t *testing.T) {
		authorized := paidOrder(1, 1, "100.00", rangeStart.Add(time.Hour))
		authorized.FinancialStatus = order.FinancialStatusAuthorized

		excluded := bulkevent.BuildPlan(req, []order.Order{authorized})
		assert.Zero(t, excluded.TotalOrders)

		withAuth := req
		withAuth.IncludeAuthorized = true
		included := bulkevent.BuildPlan(withAuth, []order.Order{authorized})
		assert.Equal(t, 1, included.TotalOrders)
	})

	t.Run("product tag filter narrows qualifying orders", func(t *testing.T) {
		tagged := paidOrder(1, 1, "100.00", rangeStart.Add(time.Hour))
		tagged.LineItems = []order.LineItem{{ProductID: 7, ProductTags: []string{"promo"}}}
		plain := paidOrder(2, 2, "50.00", rangeStart.Add(time.Hour))

		filtered := req
		filtered.ProductTags = []string{"promo"}
		plan := bulkevent.BuildPlan(filtered, []order.Order{tagged, plain})
		assert.Equal(t, 1, plan.TotalOrders)
		require.Len(t, plan.Entitlements, 1)
		assert.Equal(t, int64(1), plan.Entitlements[0].CustomerID)
	})
}

func TestBuildPreview_TopCustomersOrdering(t *testing.T) {
	req := webRequest(10)
	orders := []order.Order{
		paidOrder(1, 5, "100.00", rangeStart.Add(time.Hour)),
		paidOrder(2, 3, "300.00", rangeStart.Add(time.Hour)),
		paidOrder(3, 8, "100.00", rangeStart.Add(time.Hour)),
	}

	preview := bulkevent.BuildPlan(req, orders).BuildPreview(10)
	require.Len(t, preview.TopCustomers, 3)
	// Highest credit first; ties broken by ascending customer id.
	assert.Equal(t, int64(3), preview.TopCustomers[0].CustomerID)
	assert.Equal(t, int64(5), preview.TopCustomers[1].CustomerID)
	assert.Equal(t, int64(8), preview.TopCustomers[2].CustomerID)

	truncated := bulkevent.BuildPlan(req, orders).BuildPreview(2)
	assert.Len(t, truncated.TopCustomers, 2)
}

func TestRequest_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*bulkevent.Request)
		errIs  error
	}{
		{name: "valid request", mutate: func(r *bulkevent.Request) {}},
		{
			name:   "empty sources",
			mutate: func(r *bulkevent.Request) { r.Sources = nil },
			errIs:  bulkevent.ErrNoSources,
		},
		{
			name:   "end before start",
			mutate: func(r *bulkevent.Request) { r.EndDatetime = r.StartDatetime.Add(-time.Hour) },
			errIs:  bulkevent.ErrInvalidRange,
		},
		{
			name:   "end equal to start",
			mutate: func(r *bulkevent.Request) { r.EndDatetime = r.StartDatetime },
			errIs:  bulkevent.ErrInvalidRange,
		},
		{
			name:   "negative percent",
			mutate: func(r *bulkevent.Request) { r.CreditPercent = decimal.NewFromInt(-5) },
			errIs:  bulkevent.ErrNegativePercent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := webRequest(10)
			tc.mutate(&req)
			err := req.Validate()
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
