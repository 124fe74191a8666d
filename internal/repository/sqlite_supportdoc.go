package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lucasvieira/iepdesk/internal/domain"
)

// SQLiteSupportDocRepo implements SupportDocRepo using a SQLite database.
type SQLiteSupportDocRepo struct {
	db *sql.DB
}

// NewSQLiteSupportDocRepo creates a new SQLiteSupportDocRepo.
func NewSQLiteSupportDocRepo(db *sql.DB) *SQLiteSupportDocRepo {
	return &SQLiteSupportDocRepo{db: db}
}

func (r *SQLiteSupportDocRepo) Upsert(ctx context.Context, d *domain.SupportDocument) error {
	query := `INSERT INTO support_documents (name, content, selected) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content`
	_, err := r.db.ExecContext(ctx, query, d.Name, d.Content, boolToInt(d.Selected))
	if err != nil {
		return fmt.Errorf("upserting support document: %w", err)
	}
	return nil
}

func (r *SQLiteSupportDocRepo) GetByName(ctx context.Context, name string) (*domain.SupportDocument, error) {
	var d domain.SupportDocument
	var selected int
	err := r.db.QueryRowContext(ctx,
		`SELECT name, content, selected FROM support_documents WHERE name = ?`, name,
	).Scan(&d.Name, &d.Content, &selected)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("support document %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading support document: %w", err)
	}
	d.Selected = intToBool(selected)
	return &d, nil
}

func (r *SQLiteSupportDocRepo) List(ctx context.Context) ([]*domain.SupportDocument, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, content, selected FROM support_documents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing support documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.SupportDocument
	for rows.Next() {
		var d domain.SupportDocument
		var selected int
		if err := rows.Scan(&d.Name, &d.Content, &selected); err != nil {
			return nil, fmt.Errorf("scanning support document: %w", err)
		}
		d.Selected = intToBool(selected)
		docs = append(docs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating support documents: %w", err)
	}
	return docs, nil
}

func (r *SQLiteSupportDocRepo) SetSelected(ctx context.Context, name string, selected bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE support_documents SET selected = ? WHERE name = ?`, boolToInt(selected), name)
	if err != nil {
		return fmt.Errorf("selecting support document: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("support document %q: %w", name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSupportDocRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM support_documents WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting support document: %w", err)
	}
	return nil
}
