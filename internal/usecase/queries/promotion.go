package queries

import (
	"context"
	"time"

	"storecredit-engine/internal/domain/promotion"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/pkg/clock"
	"storecredit-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPromotionNotFound = errs.New("promotion not found")

// Read models (DTO for read side)
type PromotionView struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	PromoType            string    `json:"promo_type"`
	BonusPercent         string    `json:"bonus_percent"`
	StartsAt             time.Time `json:"starts_at"`
	EndsAt               time.Time `json:"ends_at"`
	ActiveDays           []int     `json:"active_days,omitempty"`
	WindowStart          *string   `json:"window_start,omitempty"`
	WindowEnd            *string   `json:"window_end,omitempty"`
	ProductTags          []string  `json:"product_tags,omitempty"`
	CollectionIDs        []int64   `json:"collection_ids,omitempty"`
	TierRestriction      []string  `json:"tier_restriction,omitempty"`
	Active               bool      `json:"active"`
	CurrentlyActive      bool      `json:"currently_active"`
	CreditExpirationDays *int      `json:"credit_expiration_days,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type PromotionQueries interface {
	List(ctx context.Context) ([]*PromotionView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
}

type PromotionReadRepo interface {
	List(ctx context.Context) ([]*promotion.ScheduledPromotion, error)
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.ScheduledPromotion, error)
}

type promotionQueriesImpl struct {
	repo PromotionReadRepo
	clk  clock.Clock
	loc  *time.Location
}

func NewPromotionQueries(repo PromotionReadRepo, clk clock.Clock, loc *time.Location) PromotionQueries {
	return &promotionQueriesImpl{repo: repo, clk: clk, loc: loc}
}

func (q *promotionQueriesImpl) List(ctx context.Context) ([]*PromotionView, error) {
	entities, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := q.clk.Now()
	views := make([]*PromotionView, 0, len(entities))
	for _, e := range entities {
		views = append(views, ToPromotionView(e, now, q.loc))
	}
	return views, nil
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	entity, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return ToPromotionView(entity, q.clk.Now(), q.loc), nil
}

// ToPromotionView renders the entity for the dashboard. CurrentlyActive is
// evaluated at the given instant in the merchant's timezone.
func ToPromotionView(p *promotion.ScheduledPromotion, at time.Time, loc *time.Location) *PromotionView {
	sched := p.Schedule()
	view := &PromotionView{
		ID:                   p.ID(),
		Name:                 p.Name(),
		Description:          p.Description(),
		PromoType:            p.PromoType().String(),
		BonusPercent:         p.BonusPercent().String(),
		StartsAt:             sched.StartsAt(),
		EndsAt:               sched.EndsAt(),
		ProductTags:          p.Filters().ProductTags(),
		CollectionIDs:        p.Filters().CollectionIDs(),
		TierRestriction:      p.Filters().TierRestriction(),
		Active:               p.Active(),
		CurrentlyActive:      p.IsActiveAt(at, loc),
		CreditExpirationDays: p.CreditExpirationDays(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
	for _, d := range sched.ActiveDays() {
		view.ActiveDays = append(view.ActiveDays, int(d))
	}
	if w := sched.Window(); w != nil {
		start := w.Start().String()
		end := w.End().String()
		view.WindowStart = &start
		view.WindowEnd = &end
	}
	return view
}
