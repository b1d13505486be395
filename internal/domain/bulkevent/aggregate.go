package bulkevent

import (
	"sort"

	"storecredit-engine/internal/domain/order"
	"storecredit-engine/internal/domain/promotion"
	"storecredit-engine/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Entitlement is one customer's share of a bulk event: the qualifying order
// value accumulated over the range and the credit it earns.
type Entitlement struct {
	CustomerID int64
	Email      string
	OrderCount int
	OrderValue decimal.Decimal
	Credit     decimal.Decimal
}

// Plan is the deterministic aggregation both preview and run derive from the
// same request. Entitlements are ordered by customer id so two plans over the
// same order snapshot are identical value-for-value.
type Plan struct {
	Entitlements    []Entitlement
	TotalOrders     int
	TotalOrderValue decimal.Decimal
	TotalCredit     decimal.Decimal
	OrdersBySource  []SourceCount
}

type SourceCount struct {
	Name  string
	Count int
}

type TopCustomer struct {
	CustomerID int64
	Email      string
	OrderCount int
	OrderValue decimal.Decimal
	Credit     decimal.Decimal
}

type Preview struct {
	TotalOrders        int
	UniqueCustomers    int
	TotalOrderValue    decimal.Decimal
	TotalCreditToIssue decimal.Decimal
	TopCustomers       []TopCustomer
	OrdersBySource     []SourceCount
}

// QualifiesFinancially decides whether an order's payment state admits it.
// Refunded and voided orders are excluded outright: a refund landing between
// preview and run silently shrinks the run, which is the drift policy, not an
// error. Authorized and pending payments count only when the request opts in.
func QualifiesFinancially(o order.Order, includeAuthorized bool) bool {
	switch o.FinancialStatus {
	case order.FinancialStatusRefunded, order.FinancialStatusVoided:
		return false
	case order.FinancialStatusAuthorized, order.FinancialStatusPending:
		return includeAuthorized
	default:
		return true
	}
}

// BuildPlan aggregates orders into per-customer entitlements. It re-applies
// every request filter regardless of what the fetch already narrowed, so the
// result depends only on its arguments.
func BuildPlan(req Request, orders []order.Order) Plan {
	sources := make(map[string]struct{}, len(req.Sources))
	for _, s := range req.NormalizedSources() {
		sources[s] = struct{}{}
	}
	filters := promotion.NewFilterSet(req.ProductTags, req.CollectionIDs, nil)

	byCustomer := make(map[int64]*Entitlement)
	bySource := make(map[string]int)
	plan := Plan{
		TotalOrderValue: decimal.Zero,
		TotalCredit:     decimal.Zero,
	}

	for _, o := range orders {
		if _, ok := sources[o.Source]; !ok {
			continue
		}
		if o.CreatedAt.Before(req.StartDatetime) || o.CreatedAt.After(req.EndDatetime) {
			continue
		}
		if !QualifiesFinancially(o, req.IncludeAuthorized) {
			continue
		}
		if !filters.Matches(o) {
			continue
		}

		e, ok := byCustomer[o.Customer.ID]
		if !ok {
			e = &Entitlement{
				CustomerID: o.Customer.ID,
				Email:      o.Customer.Email,
				OrderValue: decimal.Zero,
			}
			byCustomer[o.Customer.ID] = e
		}
		e.OrderCount++
		e.OrderValue = e.OrderValue.Add(o.Subtotal)

		plan.TotalOrders++
		plan.TotalOrderValue = plan.TotalOrderValue.Add(o.Subtotal)
		bySource[o.Source]++
	}

	plan.Entitlements = make([]Entitlement, 0, len(byCustomer))
	for _, e := range byCustomer {
		e.Credit = money.Percent(e.OrderValue, req.CreditPercent)
		plan.TotalCredit = plan.TotalCredit.Add(e.Credit)
		plan.Entitlements = append(plan.Entitlements, *e)
	}
	sort.Slice(plan.Entitlements, func(i, j int) bool {
		return plan.Entitlements[i].CustomerID < plan.Entitlements[j].CustomerID
	})

	plan.OrdersBySource = make([]SourceCount, 0, len(bySource))
	for name, count := range bySource {
		plan.OrdersBySource = append(plan.OrdersBySource, SourceCount{Name: name, Count: count})
	}
	sort.Slice(plan.OrdersBySource, func(i, j int) bool {
		return plan.OrdersBySource[i].Name < plan.OrdersBySource[j].Name
	})

	return plan
}

// BuildPreview projects a plan into the dry-run shape. Top customers are
// ranked by credit descending with customer id as the tiebreaker, so equal
// inputs render byte-identical previews.
func (p Plan) BuildPreview(topN int) Preview {
	top := make([]TopCustomer, 0, len(p.Entitlements))
	for _, e := range p.Entitlements {
		top = append(top, TopCustomer(e))
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Credit.Equal(top[j].Credit) {
			return top[i].Credit.GreaterThan(top[j].Credit)
		}
		return top[i].CustomerID < top[j].CustomerID
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}

	return Preview{
		TotalOrders:        p.TotalOrders,
		UniqueCustomers:    len(p.Entitlements),
		TotalOrderValue:    p.TotalOrderValue,
		TotalCreditToIssue: p.TotalCredit,
		TopCustomers:       top,
		OrdersBySource:     p.OrdersBySource,
	}
}
