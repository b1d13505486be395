// Package bulkevent contains the pure aggregation core of retroactive credit
// events: request validation, the deterministic per-customer plan shared by
// preview and run, the job lifecycle, and idempotency-key derivation.
package bulkevent

import (
	"errors"
	"sort"
	"time"

	"storecredit-engine/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrNoSources       = errors.New("at least one order source is required")
	ErrInvalidRange    = errors.New("end datetime must be after start datetime")
	ErrNegativePercent = errors.New("credit percent cannot be negative")
)

type Request struct {
	StartDatetime     time.Time
	EndDatetime       time.Time
	Sources           []string
	CreditPercent     decimal.Decimal
	IncludeAuthorized bool
	CollectionIDs     []int64
	ProductTags       []string
	ExpiresAt         *time.Time
}

// Validate rejects malformed requests before any query runs. An empty source
// set is an error, never an empty preview.
func (r Request) Validate() error {
	if len(r.Sources) == 0 {
		return ErrNoSources
	}
	if !r.EndDatetime.After(r.StartDatetime) {
		return ErrInvalidRange
	}
	if money.IsNegative(r.CreditPercent) {
		return ErrNegativePercent
	}
	return nil
}

// NormalizedSources returns the source set deduplicated and sorted, the form
// used for both matching and idempotency-key derivation.
func (r Request) NormalizedSources() []string {
	seen := make(map[string]struct{}, len(r.Sources))
	out := make([]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
