//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storecredit-engine/internal/domain/promotion"
	reqdto "storecredit-engine/internal/handler/dto/request"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/pkg/clock"
	"storecredit-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromotionRepo struct {
	byID map[uuid.UUID]*promotion.ScheduledPromotion
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{byID: make(map[uuid.UUID]*promotion.ScheduledPromotion)}
}

func (f *fakePromotionRepo) Create(_ context.Context, p *promotion.ScheduledPromotion) error {
	f.byID[p.ID()] = p
	return nil
}

func (f *fakePromotionRepo) Update(_ context.Context, p *promotion.ScheduledPromotion) error {
	if _, ok := f.byID[p.ID()]; !ok {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	f.byID[p.ID()] = p
	return nil
}

func (f *fakePromotionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePromotionRepo) FindByID(_ context.Context, id uuid.UUID) (*promotion.ScheduledPromotion, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func validPromotionRequest() reqdto.PromotionRequest {
	return reqdto.PromotionRequest{
		Name:         "Weekend Cashback",
		PromoType:    "purchase_cashback",
		BonusPercent: "10",
		StartsAt:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:       time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		ActiveDays:   []int{int(promotion.Saturday), int(promotion.Sunday)},
	}
}

func newPromotionUseCase(repo *fakePromotionRepo) commands.PromotionCommands {
	now := time.Date(2026, 6, 6, 12, 0, 0, 0, time.UTC)
	return commands.NewPromotionUseCase(repo, clock.NewMockClock(now), time.UTC)
}

func TestPromotionCreate_PersistsAndReturnsView(t *testing.T) {
	repo := newFakePromotionRepo()
	uc := newPromotionUseCase(repo)

	view, err := uc.Create(context.Background(), validPromotionRequest())
	require.NoError(t, err)

	assert.Equal(t, "Weekend Cashback", view.Name)
	assert.Equal(t, "10", view.BonusPercent)
	assert.Equal(t, []int{5, 6}, view.ActiveDays)
	// June 6 2026 is a Saturday, inside the range.
	assert.True(t, view.CurrentlyActive)
	assert.Len(t, repo.byID, 1)
}

func TestPromotionCreate_RejectsUnknownType(t *testing.T) {
	uc := newPromotionUseCase(newFakePromotionRepo())

	req := validPromotionRequest()
	req.PromoType = "loyalty_multiplier"

	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, commands.ErrInvalidPromotion)
}

func TestPromotionCreate_RejectsInvertedSchedule(t *testing.T) {
	uc := newPromotionUseCase(newFakePromotionRepo())

	req := validPromotionRequest()
	req.StartsAt, req.EndsAt = req.EndsAt, req.StartsAt

	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, commands.ErrInvalidPromotion)
}

func TestPromotionUpdate_KeepsIdentity(t *testing.T) {
	repo := newFakePromotionRepo()
	uc := newPromotionUseCase(repo)

	created, err := uc.Create(context.Background(), validPromotionRequest())
	require.NoError(t, err)

	req := validPromotionRequest()
	req.Name = "Weekend Cashback v2"
	req.BonusPercent = "15"

	updated, err := uc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Weekend Cashback v2", updated.Name)
	assert.Equal(t, "15", updated.BonusPercent)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestPromotionUpdate_NotFound(t *testing.T) {
	uc := newPromotionUseCase(newFakePromotionRepo())

	_, err := uc.Update(context.Background(), uuid.New(), validPromotionRequest())
	assert.ErrorIs(t, err, commands.ErrPromotionNotFound)
}

func TestPromotionDelete_RemovesRow(t *testing.T) {
	repo := newFakePromotionRepo()
	uc := newPromotionUseCase(repo)

	created, err := uc.Create(context.Background(), validPromotionRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), commands.ErrPromotionNotFound)
}
