package promotion

import (
	"errors"
	"strings"
	"time"

	"storecredit-engine/internal/domain/order"
	"storecredit-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName            = errors.New("promotion name cannot be empty")
	ErrNegativeBonusPercent = errors.New("bonus percent cannot be negative")
	ErrInvalidExpiration    = errors.New("credit expiration days must be positive")
)

// ScheduledPromotion is a standing rule granting a store-credit bonus whenever
// its schedule and filters hold at order time. It is owned by the merchant and
// changes only through CRUD; evaluation is pure.
type ScheduledPromotion struct {
	id                   uuid.UUID
	name                 string
	description          string
	promoType            Type
	bonusPercent         decimal.Decimal
	schedule             Schedule
	filters              FilterSet
	active               bool
	creditExpirationDays *int
	createdAt            time.Time
	updatedAt            time.Time
}

func NewScheduledPromotion(
	name, description string,
	promoType Type,
	bonusPercent decimal.Decimal,
	schedule Schedule,
	filters FilterSet,
	active bool,
	creditExpirationDays *int,
) (*ScheduledPromotion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := NewType(promoType.String()); err != nil {
		return nil, err
	}
	if money.IsNegative(bonusPercent) {
		return nil, ErrNegativeBonusPercent
	}
	if creditExpirationDays != nil && *creditExpirationDays <= 0 {
		return nil, ErrInvalidExpiration
	}

	return &ScheduledPromotion{
		id:                   uuid.New(),
		name:                 name,
		description:          description,
		promoType:            promoType,
		bonusPercent:         bonusPercent,
		schedule:             schedule,
		filters:              filters,
		active:               active,
		creditExpirationDays: creditExpirationDays,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description string,
	promoType Type,
	bonusPercent decimal.Decimal,
	schedule Schedule,
	filters FilterSet,
	active bool,
	creditExpirationDays *int,
	createdAt, updatedAt time.Time,
) *ScheduledPromotion {
	return &ScheduledPromotion{
		id:                   id,
		name:                 name,
		description:          description,
		promoType:            promoType,
		bonusPercent:         bonusPercent,
		schedule:             schedule,
		filters:              filters,
		active:               active,
		creditExpirationDays: creditExpirationDays,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// IsActiveAt combines the kill switch with the schedule.
func (p *ScheduledPromotion) IsActiveAt(t time.Time, loc *time.Location) bool {
	return p.active && p.schedule.IsActiveAt(t, loc)
}

// QualifyingValue picks the monetary base the bonus percent applies to.
func (p *ScheduledPromotion) QualifyingValue(o order.Order) decimal.Decimal {
	switch p.promoType {
	case TypePurchaseCashback:
		return o.Subtotal
	case TypeTradeInBonus:
		return o.TradeInValue
	}
	return decimal.Zero
}

// ComputeCredit returns the credit this rule grants for the order at the
// given instant, or false when the rule does not apply. One amount per rule;
// summing across stacked rules is the caller's responsibility so each rule's
// contribution stays auditable.
func (p *ScheduledPromotion) ComputeCredit(o order.Order, at time.Time, loc *time.Location) (decimal.Decimal, bool) {
	if !p.IsActiveAt(at, loc) {
		return decimal.Zero, false
	}
	if !p.filters.Matches(o) {
		return decimal.Zero, false
	}
	if !p.filters.AllowsTier(o.Customer.Tier) {
		return decimal.Zero, false
	}
	return money.Percent(p.QualifyingValue(o), p.bonusPercent), true
}

func (p *ScheduledPromotion) ID() uuid.UUID                 { return p.id }
func (p *ScheduledPromotion) Name() string                  { return p.name }
func (p *ScheduledPromotion) Description() string           { return p.description }
func (p *ScheduledPromotion) PromoType() Type               { return p.promoType }
func (p *ScheduledPromotion) BonusPercent() decimal.Decimal { return p.bonusPercent }
func (p *ScheduledPromotion) Schedule() Schedule            { return p.schedule }
func (p *ScheduledPromotion) Filters() FilterSet            { return p.filters }
func (p *ScheduledPromotion) Active() bool                  { return p.active }
func (p *ScheduledPromotion) CreditExpirationDays() *int    { return p.creditExpirationDays }
func (p *ScheduledPromotion) CreatedAt() time.Time          { return p.createdAt }
func (p *ScheduledPromotion) UpdatedAt() time.Time          { return p.updatedAt }
