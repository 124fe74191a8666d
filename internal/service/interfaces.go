package service

import (
	"context"

	"github.com/lucasvieira/iepdesk/internal/domain"
)

type PlanService interface {
	// Upsert persists the plan. A plan without an ID is created with a
	// fresh one; an existing plan keeps its ID and CreatedAt and gets a
	// refreshed UpdatedAt. An ID the store no longer knows is treated as
	// a create with a new ID. The saved plan is returned.
	Upsert(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

type ActivityService interface {
	// AppendFromSuggestions stores freshly suggested activities in the
	// bank. Each gets a new ID, is unfavorited and unrated, and carries
	// sourcePlanID as its back-reference.
	AppendFromSuggestions(ctx context.Context, drafts []domain.Activity, sourcePlanID string) ([]*domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	SetFavorited(ctx context.Context, id string, favorited bool) error
	SetRating(ctx context.Context, id string, rating domain.Rating) error
	Delete(ctx context.Context, id string) error
}

type SupportDocService interface {
	// ImportFile reads a text file from disk and upserts it by base name.
	ImportFile(ctx context.Context, path string) (*domain.SupportDocument, error)
	Upsert(ctx context.Context, doc *domain.SupportDocument) error
	List(ctx context.Context) ([]domain.SupportDocument, error)
	SetSelected(ctx context.Context, name string, selected bool) error
	Delete(ctx context.Context, name string) error
}
