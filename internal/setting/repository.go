package setting

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Upsert inserts or replaces the document for (namespace, key).
	Upsert(ctx context.Context, s *Setting) error
	Get(ctx context.Context, namespace, key string) (*Setting, error)
	ListNamespace(ctx context.Context, namespace string) ([]Setting, error)
	Delete(ctx context.Context, namespace, key string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const settingColumns = "namespace, key, value, updated_by, updated_at"

func (r *pgxRepository) Upsert(ctx context.Context, s *Setting) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.settings").
		Columns("namespace", "key", "value", "updated_by").
		Values(s.Namespace, s.Key, s.Value, s.UpdatedBy).
		Suffix("ON CONFLICT (namespace, key) DO UPDATE SET " +
			"value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = now() " +
			"RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert setting query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		return fmt.Errorf("upsert setting failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Get(ctx context.Context, namespace, key string) (*Setting, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(settingColumns).
		From("public.settings").
		Where(squirrel.Eq{"namespace": namespace, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get setting query failed: %w", err)
	}

	var s Setting
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&s.Namespace, &s.Key, &s.Value, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get setting failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) ListNamespace(ctx context.Context, namespace string) ([]Setting, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(settingColumns).
		From("public.settings").
		Where(squirrel.Eq{"namespace": namespace}).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list settings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings failed: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Namespace, &s.Key, &s.Value, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting failed: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, nil
}

func (r *pgxRepository) Delete(ctx context.Context, namespace, key string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.settings").
		Where(squirrel.Eq{"namespace": namespace, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete setting query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete setting failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
