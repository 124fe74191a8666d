package repository

import (
	"context"
	"errors"

	"github.com/lucasvieira/iepdesk/internal/domain"
)

// ErrNotFound is returned when a record does not exist. Callers treat it
// as "absent", not as a storage failure.
var ErrNotFound = errors.New("record not found")

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	// List returns all plans ordered by UpdatedAt descending.
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	// Delete removes a plan. Activities referencing it via SourcePlanID
	// are left untouched (no cascade).
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	SetFavorited(ctx context.Context, id string, favorited bool) error
	SetRating(ctx context.Context, id string, rating domain.Rating) error
	Delete(ctx context.Context, id string) error
}

type SupportDocRepo interface {
	// Upsert creates the document or replaces the content of an existing
	// one with the same name, preserving its selection state.
	Upsert(ctx context.Context, d *domain.SupportDocument) error
	GetByName(ctx context.Context, name string) (*domain.SupportDocument, error)
	List(ctx context.Context) ([]*domain.SupportDocument, error)
	SetSelected(ctx context.Context, name string, selected bool) error
	Delete(ctx context.Context, name string) error
}
