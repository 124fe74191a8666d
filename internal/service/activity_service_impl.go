package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	observer   UseCaseObserver
}

func NewActivityService(activities repository.ActivityRepo, observer UseCaseObserver) ActivityService {
	return &activityService{activities: activities, observer: useCaseObserverOrNoop(observer)}
}

func (s *activityService) AppendFromSuggestions(ctx context.Context, drafts []domain.Activity, sourcePlanID string) ([]*domain.Activity, error) {
	saved := make([]*domain.Activity, 0, len(drafts))
	err := observe(ctx, s.observer, "activity.append_suggestions", map[string]any{"count": len(drafts)}, func() error {
		now := time.Now().UTC()
		for i := range drafts {
			a := drafts[i]
			a.ID = uuid.New().String()
			a.IsFavorited = false
			a.Rating = domain.RatingNone
			a.Comments = ""
			a.CreatedAt = now
			if sourcePlanID != "" {
				src := sourcePlanID
				a.SourcePlanID = &src
			}
			if err := s.activities.Create(ctx, &a); err != nil {
				return err
			}
			saved = append(saved, &a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	return s.activities.Update(ctx, a)
}

func (s *activityService) SetFavorited(ctx context.Context, id string, favorited bool) error {
	return s.activities.SetFavorited(ctx, id, favorited)
}

func (s *activityService) SetRating(ctx context.Context, id string, rating domain.Rating) error {
	return s.activities.SetRating(ctx, id, rating)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return observe(ctx, s.observer, "activity.delete", map[string]any{"activity_id": id}, func() error {
		return s.activities.Delete(ctx, id)
	})
}
