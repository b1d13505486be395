package promotion

import (
	"sort"

	"storecredit-engine/internal/domain/order"
)

// FilterSet restricts a rule to orders touching certain merchandise and to
// certain loyalty tiers. Tags and collections are independent merchandising
// axes: when both are set, each must be satisfied on its own (possibly by
// different line items), while within one axis any single match qualifies.
type FilterSet struct {
	productTags   map[string]struct{}
	collectionIDs map[int64]struct{}
	tiers         map[string]struct{}
}

func NewFilterSet(productTags []string, collectionIDs []int64, tiers []string) FilterSet {
	f := FilterSet{}
	if len(productTags) > 0 {
		f.productTags = make(map[string]struct{}, len(productTags))
		for _, t := range productTags {
			f.productTags[t] = struct{}{}
		}
	}
	if len(collectionIDs) > 0 {
		f.collectionIDs = make(map[int64]struct{}, len(collectionIDs))
		for _, id := range collectionIDs {
			f.collectionIDs[id] = struct{}{}
		}
	}
	if len(tiers) > 0 {
		f.tiers = make(map[string]struct{}, len(tiers))
		for _, t := range tiers {
			f.tiers[t] = struct{}{}
		}
	}
	return f
}

// Matches applies the merchandise filters. An empty filter set admits every
// order.
func (f FilterSet) Matches(o order.Order) bool {
	if len(f.productTags) > 0 && !o.HasAnyTag(f.productTags) {
		return false
	}
	if len(f.collectionIDs) > 0 && !o.InAnyCollection(f.collectionIDs) {
		return false
	}
	return true
}

// AllowsTier reports whether the customer's tier passes the tier restriction.
// No restriction means all tiers qualify.
func (f FilterSet) AllowsTier(tier string) bool {
	if len(f.tiers) == 0 {
		return true
	}
	_, ok := f.tiers[tier]
	return ok
}

func (f FilterSet) ProductTags() []string {
	return sortedStrings(f.productTags)
}

func (f FilterSet) TierRestriction() []string {
	return sortedStrings(f.tiers)
}

func (f FilterSet) CollectionIDs() []int64 {
	if len(f.collectionIDs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(f.collectionIDs))
	for id := range f.collectionIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedStrings(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
