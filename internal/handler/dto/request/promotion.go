package request

import (
	"time"

	"storecredit-engine/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

type PromotionRequest struct {
	Name                 string    `json:"name" binding:"required"`
	Description          string    `json:"description"`
	PromoType            string    `json:"promo_type" binding:"required"`
	BonusPercent         string    `json:"bonus_percent" binding:"required"`
	StartsAt             time.Time `json:"starts_at" binding:"required"`
	EndsAt               time.Time `json:"ends_at" binding:"required"`
	ActiveDays           []int     `json:"active_days,omitempty"`
	WindowStart          *string   `json:"window_start,omitempty"`
	WindowEnd            *string   `json:"window_end,omitempty"`
	ProductTags          []string  `json:"product_tags,omitempty"`
	CollectionIDs        []int64   `json:"collection_ids,omitempty"`
	TierRestriction      []string  `json:"tier_restriction,omitempty"`
	Active               *bool     `json:"active,omitempty"`
	CreditExpirationDays *int      `json:"credit_expiration_days,omitempty"`
}

func (r PromotionRequest) IsActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

func (r PromotionRequest) ParsedType() (promotion.Type, error) {
	return promotion.NewType(r.PromoType)
}

func (r PromotionRequest) ParsedBonusPercent() (decimal.Decimal, error) {
	return decimal.NewFromString(r.BonusPercent)
}

func (r PromotionRequest) ToSchedule() (promotion.Schedule, error) {
	days := make([]promotion.Weekday, 0, len(r.ActiveDays))
	for _, d := range r.ActiveDays {
		day, err := promotion.NewWeekday(d)
		if err != nil {
			return promotion.Schedule{}, err
		}
		days = append(days, day)
	}

	var window *promotion.DailyWindow
	if r.WindowStart != nil && r.WindowEnd != nil {
		start, err := promotion.ParseTimeOfDay(*r.WindowStart)
		if err != nil {
			return promotion.Schedule{}, err
		}
		end, err := promotion.ParseTimeOfDay(*r.WindowEnd)
		if err != nil {
			return promotion.Schedule{}, err
		}
		w := promotion.NewDailyWindow(start, end)
		window = &w
	}

	return promotion.NewSchedule(r.StartsAt, r.EndsAt, days, window)
}

func (r PromotionRequest) ToFilters() promotion.FilterSet {
	return promotion.NewFilterSet(r.ProductTags, r.CollectionIDs, r.TierRestriction)
}
