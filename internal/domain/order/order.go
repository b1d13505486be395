// Package order holds the immutable order snapshot the bonus engine evaluates.
// Orders come from the order source as values; nothing here mutates them.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialStatus mirrors the order's payment state at fetch time.
type FinancialStatus string

const (
	FinancialStatusPaid              FinancialStatus = "paid"
	FinancialStatusPartiallyPaid     FinancialStatus = "partially_paid"
	FinancialStatusAuthorized        FinancialStatus = "authorized"
	FinancialStatusPending           FinancialStatus = "pending"
	FinancialStatusRefunded          FinancialStatus = "refunded"
	FinancialStatusPartiallyRefunded FinancialStatus = "partially_refunded"
	FinancialStatusVoided            FinancialStatus = "voided"
)

type LineItem struct {
	ProductID     int64
	Title         string
	Quantity      int
	Price         decimal.Decimal
	ProductTags   []string
	CollectionIDs []int64
}

type Customer struct {
	ID    int64
	Email string
	Tier  string
}

type Order struct {
	ID              int64
	Name            string
	Source          string
	Customer        Customer
	Subtotal        decimal.Decimal
	TradeInValue    decimal.Decimal
	FinancialStatus FinancialStatus
	CreatedAt       time.Time
	LineItems       []LineItem
}

// HasAnyTag reports whether any line item carries at least one of the given
// product tags.
func (o Order) HasAnyTag(tags map[string]struct{}) bool {
	for _, li := range o.LineItems {
		for _, t := range li.ProductTags {
			if _, ok := tags[t]; ok {
				return true
			}
		}
	}
	return false
}

// InAnyCollection reports whether any line item belongs to at least one of the
// given collections.
func (o Order) InAnyCollection(ids map[int64]struct{}) bool {
	for _, li := range o.LineItems {
		for _, id := range li.CollectionIDs {
			if _, ok := ids[id]; ok {
				return true
			}
		}
	}
	return false
}
