package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Module) error
	GetByID(ctx context.Context, id string) (*Module, error)
	// ListAll returns the whole catalog; filtering and ordering happen in
	// the service. The catalog is small by construction.
	ListAll(ctx context.Context) ([]Module, error)
	Update(ctx context.Context, m *Module) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const moduleColumns = "id, name, version, category, status, owner_team, description, updated_at"

func (r *pgxRepository) Create(ctx context.Context, m *Module) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.modules").
		Columns("name", "version", "category", "status", "owner_team", "description").
		Values(m.Name, m.Version, m.Category, m.Status, m.OwnerTeam, m.Description).
		Suffix("RETURNING id, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create module query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&m.ID, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("create module failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Module, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(moduleColumns).
		From("public.modules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get module query failed: %w", err)
	}

	var m Module
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.Name, &m.Version, &m.Category, &m.Status,
		&m.OwnerTeam, &m.Description, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get module failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]Module, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(moduleColumns).
		From("public.modules").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list modules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list modules failed: %w", err)
	}
	defer rows.Close()

	var modules []Module
	for rows.Next() {
		var m Module
		err := rows.Scan(&m.ID, &m.Name, &m.Version, &m.Category, &m.Status,
			&m.OwnerTeam, &m.Description, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan module failed: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func (r *pgxRepository) Update(ctx context.Context, m *Module) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.modules").
		Set("name", m.Name).
		Set("version", m.Version).
		Set("category", m.Category).
		Set("status", m.Status).
		Set("owner_team", m.OwnerTeam).
		Set("description", m.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update module query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return fmt.Errorf("update module failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.modules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete module query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete module failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
