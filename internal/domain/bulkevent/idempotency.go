package bulkevent

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// IssuanceKey derives the idempotency key for one customer within a bulk
// event. It hashes the canonical request parameters together with the
// customer id and date range, so re-running the same request (after a crash,
// a retry, or an operator double-click) produces the same key per customer
// and the credit API dedupes the issuance.
func IssuanceKey(req Request, customerID int64) string {
	var b strings.Builder
	b.WriteString(req.StartDatetime.UTC().Format(time.RFC3339Nano))
	b.WriteByte('|')
	b.WriteString(req.EndDatetime.UTC().Format(time.RFC3339Nano))
	b.WriteByte('|')
	b.WriteString(strings.Join(req.NormalizedSources(), ","))
	b.WriteByte('|')
	b.WriteString(req.CreditPercent.String())
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(req.IncludeAuthorized))
	b.WriteByte('|')
	b.WriteString(joinInt64s(req.CollectionIDs))
	b.WriteByte('|')
	b.WriteString(joinSorted(req.ProductTags))
	b.WriteByte('|')
	fmt.Fprintf(&b, "customer:%d", customerID)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func joinSorted(vals []string) string {
	sorted := make([]string, len(vals))
	copy(sorted, vals)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func joinInt64s(vals []int64) string {
	sorted := make([]int64, len(vals))
	copy(sorted, vals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
