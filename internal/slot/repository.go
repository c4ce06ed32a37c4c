package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

type Repository interface {
	Create(ctx context.Context, s *Slot) error
	GetByID(ctx context.Context, id string) (*Slot, error)
	List(ctx context.Context, filter Filter) ([]*Slot, int, error)
	// ListForResourceDate returns every slot for one resource on one date,
	// ordered by start time.
	ListForResourceDate(ctx context.Context, resourceID string, date schedule.DateStamp) ([]*Slot, error)
	// ListForMonth returns every slot (all resources) within the month.
	ListForMonth(ctx context.Context, year int, month time.Month) ([]*Slot, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const slotColumns = "id, resource_id, slot_date, start_time, end_time, created_at"

func (r *pgxRepository) Create(ctx context.Context, s *Slot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.slots").
		Columns("resource_id", "slot_date", "start_time", "end_time").
		Values(s.ResourceID, s.Date.Time(), s.Start.String(), s.End.String()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create slot query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
}

func scanSlot(row pgx.Row, extra ...any) (*Slot, error) {
	var s Slot
	var date time.Time
	var start, end string

	dest := []any{&s.ID, &s.ResourceID, &date, &start, &end, &s.CreatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.Date = schedule.DateOf(date)

	var err error
	if s.Start, err = schedule.ParseTimeOfDay(start); err != nil {
		return nil, fmt.Errorf("stored start time invalid: %w", err)
	}
	if s.End, err = schedule.ParseTimeOfDay(end); err != nil {
		return nil, fmt.Errorf("stored end time invalid: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Slot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(slotColumns).
		From("public.slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get slot query failed: %w", err)
	}

	s, err := scanSlot(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot failed: %w", err)
	}
	return s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Slot, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(slotColumns + ", count(*) OVER() as total_count").
		From("public.slots")

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"resource_id": filter.ResourceID})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"slot_date": filter.DateFrom.Time()})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"slot_date": filter.DateTo.Time()})
	}

	query = query.OrderBy("slot_date ASC", "start_time ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	var total int

	for rows.Next() {
		s, err := scanSlot(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, s)
	}

	return slots, total, nil
}

func (r *pgxRepository) ListForResourceDate(ctx context.Context, resourceID string, date schedule.DateStamp) ([]*Slot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(slotColumns).
		From("public.slots").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"slot_date": date.Time()}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots query failed: %w", err)
	}

	return r.queryMany(ctx, sql, args)
}

func (r *pgxRepository) ListForMonth(ctx context.Context, year int, month time.Month) ([]*Slot, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(slotColumns).
		From("public.slots").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.Lt{"slot_date": to}).
		OrderBy("slot_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots query failed: %w", err)
	}

	return r.queryMany(ctx, sql, args)
}

func (r *pgxRepository) queryMany(ctx context.Context, sql string, args []any) ([]*Slot, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
