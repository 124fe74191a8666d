package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/repository"
)

type planService struct {
	plans    repository.PlanRepo
	observer UseCaseObserver
}

func NewPlanService(plans repository.PlanRepo, observer UseCaseObserver) PlanService {
	return &planService{plans: plans, observer: useCaseObserverOrNoop(observer)}
}

func (s *planService) Upsert(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	now := time.Now().UTC()
	hadID := p.ID != ""

	err := observe(ctx, s.observer, "plan.upsert", map[string]any{"had_id": hadID}, func() error {
		if hadID {
			p.UpdatedAt = now
			err := s.plans.Update(ctx, p)
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			// Unknown id: the record was deleted elsewhere. Fall
			// through and save the state as a fresh plan.
		}
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		return s.plans.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return observe(ctx, s.observer, "plan.delete", map[string]any{"plan_id": id}, func() error {
		return s.plans.Delete(ctx, id)
	})
}
