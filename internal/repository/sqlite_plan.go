package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucasvieira/iepdesk/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

const planColumns = `id, student_name, fields, ai_generated, critiques, suggestions, analysis, created_at, updated_at`

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	fields, aiGen, critiques, suggestions, analysis, err := encodePlanColumns(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO plans (` + planColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.StudentName,
		fields,
		aiGen,
		critiques,
		suggestions,
		analysis,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPlan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	fields, aiGen, critiques, suggestions, analysis, err := encodePlanColumns(p)
	if err != nil {
		return err
	}
	query := `UPDATE plans SET student_name = ?, fields = ?, ai_generated = ?, critiques = ?, suggestions = ?, analysis = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.StudentName,
		fields,
		aiGen,
		critiques,
		suggestions,
		analysis,
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("plan %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func encodePlanColumns(p *domain.Plan) (fields, aiGen, critiques, suggestions string, analysis interface{}, err error) {
	if fields, err = marshalColumn(orEmptyMap(p.Fields)); err != nil {
		return
	}
	if aiGen, err = marshalColumn(orEmptySlice(p.AIGeneratedFields)); err != nil {
		return
	}
	if critiques, err = marshalColumn(orEmptyCritiques(p.GoalCritiques)); err != nil {
		return
	}
	if suggestions, err = marshalColumn(orEmptySuggestions(p.SuggestedActivities)); err != nil {
		return
	}
	if p.Analysis != nil {
		var s string
		if s, err = marshalColumn(p.Analysis); err != nil {
			return
		}
		analysis = s
	}
	return
}

func scanPlan(scan func(...interface{}) error) (*domain.Plan, error) {
	var (
		p                                    domain.Plan
		fields, aiGen, critiques, suggested  sql.NullString
		analysis                             sql.NullString
		createdAt, updatedAt                 string
	)
	err := scan(&p.ID, &p.StudentName, &fields, &aiGen, &critiques, &suggested, &analysis, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	p.Fields = map[string]string{}
	p.GoalCritiques = map[string]domain.GoalCritique{}
	p.SuggestedActivities = map[string][]domain.Activity{}
	if err := unmarshalColumn(fields, &p.Fields); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(aiGen, &p.AIGeneratedFields); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(critiques, &p.GoalCritiques); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(suggested, &p.SuggestedActivities); err != nil {
		return nil, err
	}
	if analysis.Valid && analysis.String != "" {
		p.Analysis = &domain.PlanAnalysis{}
		if err := unmarshalColumn(analysis, p.Analysis); err != nil {
			return nil, err
		}
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func orEmptyMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyCritiques(m map[string]domain.GoalCritique) map[string]domain.GoalCritique {
	if m == nil {
		return map[string]domain.GoalCritique{}
	}
	return m
}

func orEmptySuggestions(m map[string][]domain.Activity) map[string][]domain.Activity {
	if m == nil {
		return map[string][]domain.Activity{}
	}
	return m
}
