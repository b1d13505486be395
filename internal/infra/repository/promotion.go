package repository

import (
	"context"
	"errors"
	"time"

	"storecredit-engine/internal/domain/promotion"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

const promotionColumns = `
	id, name, description, promo_type, bonus_percent,
	starts_at, ends_at, daily_window_start, daily_window_end, active_days,
	product_tags, collection_ids, tier_restriction,
	active, credit_expiration_days, created_at, updated_at`

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.ScheduledPromotion) error {
	query := `
	INSERT INTO promotions (
		id, name, description, promo_type, bonus_percent,
		starts_at, ends_at, daily_window_start, daily_window_end, active_days,
		product_tags, collection_ids, tier_restriction,
		active, credit_expiration_days
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query, promotionArgs(p)...)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("promotion already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *promotion.ScheduledPromotion) error {
	query := `
	UPDATE promotions SET
		name = $2, description = $3, promo_type = $4, bonus_percent = $5,
		starts_at = $6, ends_at = $7, daily_window_start = $8, daily_window_end = $9,
		active_days = $10, product_tags = $11, collection_ids = $12,
		tier_restriction = $13, active = $14, credit_expiration_days = $15,
		updated_at = now()
	WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, promotionArgs(p)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.ScheduledPromotion, error) {
	row := r.db.QueryRow(ctx, `SELECT`+promotionColumns+` FROM promotions WHERE id = $1`, id)

	p, err := scanPromotion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}
	return p, nil
}

func (r *PromotionRepository) List(ctx context.Context) ([]*promotion.ScheduledPromotion, error) {
	rows, err := r.db.Query(ctx, `SELECT`+promotionColumns+` FROM promotions ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	defer rows.Close()

	var out []*promotion.ScheduledPromotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotion rows", err)
	}
	return out, nil
}

func promotionArgs(p *promotion.ScheduledPromotion) []any {
	s := p.Schedule()
	f := p.Filters()

	var windowStart, windowEnd *string
	if w := s.Window(); w != nil {
		ws := w.Start().String()
		we := w.End().String()
		windowStart, windowEnd = &ws, &we
	}

	var activeDays []int32
	for _, d := range s.ActiveDays() {
		activeDays = append(activeDays, int32(d))
	}

	return []any{
		p.ID(), p.Name(), p.Description(), p.PromoType().String(), p.BonusPercent(),
		s.StartsAt(), s.EndsAt(), windowStart, windowEnd, activeDays,
		f.ProductTags(), f.CollectionIDs(), f.TierRestriction(),
		p.Active(), p.CreditExpirationDays(),
	}
}

func scanPromotion(row pgx.Row) (*promotion.ScheduledPromotion, error) {
	var (
		id                   uuid.UUID
		name, description    string
		promoTypeStr         string
		bonusPercent         decimal.Decimal
		startsAt, endsAt     time.Time
		windowStart          *string
		windowEnd            *string
		activeDays           []int32
		productTags          []string
		collectionIDs        []int64
		tierRestriction      []string
		active               bool
		creditExpirationDays *int
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&id, &name, &description, &promoTypeStr, &bonusPercent,
		&startsAt, &endsAt, &windowStart, &windowEnd, &activeDays,
		&productTags, &collectionIDs, &tierRestriction,
		&active, &creditExpirationDays, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	promoType, err := promotion.NewType(promoTypeStr)
	if err != nil {
		return nil, err
	}

	var window *promotion.DailyWindow
	if windowStart != nil && windowEnd != nil {
		start, err := promotion.ParseTimeOfDay(*windowStart)
		if err != nil {
			return nil, err
		}
		end, err := promotion.ParseTimeOfDay(*windowEnd)
		if err != nil {
			return nil, err
		}
		w := promotion.NewDailyWindow(start, end)
		window = &w
	}

	days := make([]promotion.Weekday, 0, len(activeDays))
	for _, d := range activeDays {
		day, err := promotion.NewWeekday(int(d))
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	schedule, err := promotion.NewSchedule(startsAt, endsAt, days, window)
	if err != nil {
		return nil, err
	}

	return promotion.Reconstruct(
		id, name, description, promoType, bonusPercent,
		schedule,
		promotion.NewFilterSet(productTags, collectionIDs, tierRestriction),
		active, creditExpirationDays, createdAt, updatedAt,
	), nil
}
