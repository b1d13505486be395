package commands

import (
	"context"
	"time"

	"storecredit-engine/internal/domain/promotion"
	reqdto "storecredit-engine/internal/handler/dto/request"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/pkg/clock"
	"storecredit-engine/internal/pkg/errs"
	"storecredit-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound       = errs.New("promotion not found")
	ErrInvalidPromotion        = errs.New("invalid promotion")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.ScheduledPromotion) error
	Update(ctx context.Context, p *promotion.ScheduledPromotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.ScheduledPromotion, error)
}

type PromotionCommands interface {
	Create(ctx context.Context, req reqdto.PromotionRequest) (*queries.PromotionView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.PromotionRequest) (*queries.PromotionView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionUseCaseImpl struct {
	repo PromotionRepository
	clk  clock.Clock
	loc  *time.Location
}

func NewPromotionUseCase(repo PromotionRepository, clk clock.Clock, loc *time.Location) PromotionCommands {
	return &promotionUseCaseImpl{repo: repo, clk: clk, loc: loc}
}

func (u *promotionUseCaseImpl) Create(ctx context.Context, req reqdto.PromotionRequest) (*queries.PromotionView, error) {
	entity, err := buildPromotion(req)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromotion)
	}

	if err := u.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	created, err := u.repo.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return queries.ToPromotionView(created, u.clk.Now(), u.loc), nil
}

func (u *promotionUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.PromotionRequest) (*queries.PromotionView, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	validated, err := buildPromotion(req)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromotion)
	}

	// Same field values, but under the stored identity and creation time.
	entity := promotion.Reconstruct(
		existing.ID(),
		validated.Name(),
		validated.Description(),
		validated.PromoType(),
		validated.BonusPercent(),
		validated.Schedule(),
		validated.Filters(),
		validated.Active(),
		validated.CreditExpirationDays(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	)

	if err := u.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return queries.ToPromotionView(updated, u.clk.Now(), u.loc), nil
}

func (u *promotionUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func buildPromotion(req reqdto.PromotionRequest) (*promotion.ScheduledPromotion, error) {
	promoType, err := req.ParsedType()
	if err != nil {
		return nil, err
	}
	bonusPercent, err := req.ParsedBonusPercent()
	if err != nil {
		return nil, err
	}
	schedule, err := req.ToSchedule()
	if err != nil {
		return nil, err
	}
	return promotion.NewScheduledPromotion(
		req.Name,
		req.Description,
		promoType,
		bonusPercent,
		schedule,
		req.ToFilters(),
		req.IsActive(),
		req.CreditExpirationDays,
	)
}
