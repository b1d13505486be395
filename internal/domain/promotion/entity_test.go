//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"storecredit-engine/internal/domain/order"
	"storecredit-engine/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearLongSchedule(t *testing.T) promotion.Schedule {
	t.Helper()
	s, err := promotion.NewSchedule(
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		nil, nil,
	)
	require.NoError(t, err)
	return s
}

func TestNewScheduledPromotion_Validation(t *testing.T) {
	schedule := yearLongSchedule(t)
	noFilters := promotion.NewFilterSet(nil, nil, nil)
	ten := decimal.NewFromInt(10)

	t.Run("valid promotion", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"  Spring Cashback ", "10% back on everything",
			promotion.TypePurchaseCashback, ten, schedule, noFilters, true, nil,
		)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "Spring Cashback", p.Name())
		assert.True(t, p.Active())
	})

	t.Run("zero bonus percent allowed", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"Paused Rate", "", promotion.TypePurchaseCashback,
			decimal.Zero, schedule, noFilters, true, nil,
		)
		require.NoError(t, err)
		assert.True(t, p.BonusPercent().IsZero())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := promotion.NewScheduledPromotion(
			"   ", "", promotion.TypePurchaseCashback, ten, schedule, noFilters, true, nil,
		)
		assert.ErrorIs(t, err, promotion.ErrEmptyName)
	})

	t.Run("negative bonus percent rejected", func(t *testing.T) {
		_, err := promotion.NewScheduledPromotion(
			"Bad", "", promotion.TypePurchaseCashback, decimal.NewFromInt(-1), schedule, noFilters, true, nil,
		)
		assert.ErrorIs(t, err, promotion.ErrNegativeBonusPercent)
	})

	t.Run("unknown promo type rejected", func(t *testing.T) {
		_, err := promotion.NewScheduledPromotion(
			"Bad", "", promotion.Type("raffle"), ten, schedule, noFilters, true, nil,
		)
		assert.ErrorIs(t, err, promotion.ErrInvalidPromoType)
	})

	t.Run("non-positive expiration days rejected", func(t *testing.T) {
		zero := 0
		_, err := promotion.NewScheduledPromotion(
			"Bad", "", promotion.TypePurchaseCashback, ten, schedule, noFilters, true, &zero,
		)
		assert.ErrorIs(t, err, promotion.ErrInvalidExpiration)
	})
}

func TestComputeCredit(t *testing.T) {
	schedule := yearLongSchedule(t)
	noFilters := promotion.NewFilterSet(nil, nil, nil)
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("trade-in bonus of 10% on $200 trade value is $20.00", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"Trade-in boost", "", promotion.TypeTradeInBonus,
			decimal.NewFromInt(10), schedule, noFilters, true, nil,
		)
		require.NoError(t, err)

		o := order.Order{
			Subtotal:     decimal.NewFromInt(999),
			TradeInValue: decimal.NewFromInt(200),
		}
		credit, ok := p.ComputeCredit(o, at, time.UTC)
		require.True(t, ok)
		assert.Equal(t, "20.00", credit.StringFixed(2))
	})

	t.Run("cashback uses order subtotal, not trade value", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"Cashback", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(5), schedule, noFilters, true, nil,
		)
		require.NoError(t, err)

		o := order.Order{
			Subtotal:     decimal.NewFromInt(80),
			TradeInValue: decimal.NewFromInt(500),
		}
		credit, ok := p.ComputeCredit(o, at, time.UTC)
		require.True(t, ok)
		assert.Equal(t, "4.00", credit.StringFixed(2))
	})

	t.Run("rounding is half-even at two decimals", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"Cashback", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(5), schedule, noFilters, true, nil,
		)
		require.NoError(t, err)

		// 2.50 * 5% = 0.125 -> rounds to the even cent, 0.12.
		credit, ok := p.ComputeCredit(order.Order{Subtotal: decimal.RequireFromString("2.50")}, at, time.UTC)
		require.True(t, ok)
		assert.Equal(t, "0.12", credit.StringFixed(2))

		// 3.50 * 5% = 0.175 -> 0.18.
		credit, ok = p.ComputeCredit(order.Order{Subtotal: decimal.RequireFromString("3.50")}, at, time.UTC)
		require.True(t, ok)
		assert.Equal(t, "0.18", credit.StringFixed(2))
	})

	t.Run("inactive kill switch yields no credit", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"Disabled", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(10), schedule, noFilters, false, nil,
		)
		require.NoError(t, err)

		_, ok := p.ComputeCredit(order.Order{Subtotal: decimal.NewFromInt(100)}, at, time.UTC)
		assert.False(t, ok)
	})

	t.Run("instant outside the schedule yields no credit", func(t *testing.T) {
		p, err := promotion.NewScheduledPromotion(
			"Cashback", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(10), schedule, noFilters, true, nil,
		)
		require.NoError(t, err)

		_, ok := p.ComputeCredit(order.Order{Subtotal: decimal.NewFromInt(100)},
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), time.UTC)
		assert.False(t, ok)
	})

	t.Run("tier restriction excludes other tiers", func(t *testing.T) {
		goldOnly := promotion.NewFilterSet(nil, nil, []string{"gold"})
		p, err := promotion.NewScheduledPromotion(
			"Gold cashback", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(10), schedule, goldOnly, true, nil,
		)
		require.NoError(t, err)

		o := order.Order{Subtotal: decimal.NewFromInt(100)}

		o.Customer.Tier = "gold"
		credit, ok := p.ComputeCredit(o, at, time.UTC)
		require.True(t, ok)
		assert.Equal(t, "10.00", credit.StringFixed(2))

		o.Customer.Tier = "bronze"
		_, ok = p.ComputeCredit(o, at, time.UTC)
		assert.False(t, ok)
	})

	t.Run("stacked rules each return their own amount", func(t *testing.T) {
		ruleA, err := promotion.NewScheduledPromotion(
			"A", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(10), schedule, noFilters, true, nil,
		)
		require.NoError(t, err)
		ruleB, err := promotion.NewScheduledPromotion(
			"B", "", promotion.TypePurchaseCashback,
			decimal.NewFromInt(5), schedule, noFilters, true, nil,
		)
		require.NoError(t, err)

		o := order.Order{Subtotal: decimal.NewFromInt(100)}
		a, okA := ruleA.ComputeCredit(o, at, time.UTC)
		b, okB := ruleB.ComputeCredit(o, at, time.UTC)
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, "10.00", a.StringFixed(2))
		assert.Equal(t, "5.00", b.StringFixed(2))
	})
}
