package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucasvieira/iepdesk/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db *sql.DB
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db *sql.DB) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityColumns = `id, title, description, discipline, skills, needs, goal_tags, is_favorited, rating, comments, source_plan_id, created_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	skills, needs, tags, err := encodeActivityLists(a)
	if err != nil {
		return err
	}
	query := `INSERT INTO activities (` + activityColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		a.Description,
		string(a.Discipline),
		skills,
		needs,
		tags,
		boolToInt(a.IsFavorited),
		string(a.Rating),
		a.Comments,
		nullableString(a.SourcePlanID),
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanActivity(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	skills, needs, tags, err := encodeActivityLists(a)
	if err != nil {
		return err
	}
	query := `UPDATE activities SET title = ?, description = ?, discipline = ?, skills = ?, needs = ?, goal_tags = ?, is_favorited = ?, rating = ?, comments = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Title,
		a.Description,
		string(a.Discipline),
		skills,
		needs,
		tags,
		boolToInt(a.IsFavorited),
		string(a.Rating),
		a.Comments,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) SetFavorited(ctx context.Context, id string, favorited bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE activities SET is_favorited = ? WHERE id = ?`, boolToInt(favorited), id)
	if err != nil {
		return fmt.Errorf("favoriting activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) SetRating(ctx context.Context, id string, rating domain.Rating) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE activities SET rating = ? WHERE id = ?`, string(rating), id)
	if err != nil {
		return fmt.Errorf("rating activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("activity %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func encodeActivityLists(a *domain.Activity) (skills, needs, tags string, err error) {
	if skills, err = marshalColumn(orEmptySlice(a.Skills)); err != nil {
		return
	}
	if needs, err = marshalColumn(orEmptySlice(a.Needs)); err != nil {
		return
	}
	tags, err = marshalColumn(orEmptySlice(a.GoalTags))
	return
}

func scanActivity(scan func(...interface{}) error) (*domain.Activity, error) {
	var (
		a                    domain.Activity
		discipline, rating   string
		skills, needs, tags  sql.NullString
		favorited            int
		sourcePlanID         sql.NullString
		createdAt            string
	)
	err := scan(&a.ID, &a.Title, &a.Description, &discipline, &skills, &needs, &tags,
		&favorited, &rating, &a.Comments, &sourcePlanID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Discipline = domain.Discipline(discipline)
	a.Rating = domain.Rating(rating)
	a.IsFavorited = intToBool(favorited)
	if err := unmarshalColumn(skills, &a.Skills); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(needs, &a.Needs); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(tags, &a.GoalTags); err != nil {
		return nil, err
	}
	if sourcePlanID.Valid && sourcePlanID.String != "" {
		src := sourcePlanID.String
		a.SourcePlanID = &src
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}
