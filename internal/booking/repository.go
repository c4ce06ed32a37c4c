package booking

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
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// ListForResourceDate returns every booking (any status) for one
	// resource on one date, ordered by start time then creation time.
	ListForResourceDate(ctx context.Context, resourceID string, date schedule.DateStamp) ([]*Booking, error)
	// ListForMonth returns every booking (all resources) within the month.
	ListForMonth(ctx context.Context, year int, month time.Month) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "b.id, b.resource_id, r.name, b.booking_date, b.start_time, b.end_time, b.status, " +
	"b.title, b.description, b.attendee_name, b.attendee_email, b.attendee_phone, b.priority, " +
	"b.created_by, b.created_at, b.updated_at"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("resource_id", "booking_date", "start_time", "end_time", "status",
			"title", "description", "attendee_name", "attendee_email", "attendee_phone",
			"priority", "created_by").
		Values(b.ResourceID, b.Date.Time(), b.Start.String(), b.End.String(), b.Status,
			b.Title, b.Description, b.AttendeeName, b.AttendeeEmail, b.AttendeePhone,
			b.Priority, b.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	var date time.Time
	var start, end string

	dest := []any{
		&b.ID, &b.ResourceID, &b.ResourceName, &date, &start, &end, &b.Status,
		&b.Title, &b.Description, &b.AttendeeName, &b.AttendeeEmail, &b.AttendeePhone,
		&b.Priority, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	b.Date = schedule.DateOf(date)

	var err error
	if b.Start, err = schedule.ParseTimeOfDay(start); err != nil {
		return nil, fmt.Errorf("stored start time invalid: %w", err)
	}
	if b.End, err = schedule.ParseTimeOfDay(end); err != nil {
		return nil, fmt.Errorf("stored end time invalid: %w", err)
	}
	return &b, nil
}

func baseSelect(columns string) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(columns).
		From("public.bookings b").
		Join("public.resources r ON b.resource_id = r.id")
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := baseSelect(bookingColumns).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := baseSelect(bookingColumns + ", count(*) OVER() as total_count")

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"b.resource_id": filter.ResourceID})
	}
	if filter.CreatedBy != "" {
		query = query.Where(squirrel.Eq{"b.created_by": filter.CreatedBy})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.booking_date": filter.DateFrom.Time()})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.booking_date": filter.DateTo.Time()})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.Or{
			squirrel.ILike{"b.title": "%" + filter.Search + "%"},
			squirrel.ILike{"b.description": "%" + filter.Search + "%"},
			squirrel.ILike{"b.attendee_email": "%" + filter.Search + "%"},
		})
	}

	orderBy := "b.booking_date"
	switch filter.SortBy {
	case "title", "status", "priority", "created_at":
		orderBy = "b." + filter.SortBy
	}

	orderDir := "ASC"
	if filter.SortOrder == "desc" {
		orderDir = "DESC"
	}

	// Secondary key keeps same-date rows in a deterministic order.
	query = query.OrderBy(orderBy+" "+orderDir, "b.start_time ASC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForResourceDate(ctx context.Context, resourceID string, date schedule.DateStamp) ([]*Booking, error) {
	sql, args, err := baseSelect(bookingColumns).
		Where(squirrel.Eq{"b.resource_id": resourceID}).
		Where(squirrel.Eq{"b.booking_date": date.Time()}).
		OrderBy("b.start_time ASC", "b.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryMany(ctx, sql, args)
}

func (r *pgxRepository) ListForMonth(ctx context.Context, year int, month time.Month) ([]*Booking, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	sql, args, err := baseSelect(bookingColumns).
		Where(squirrel.GtOrEq{"b.booking_date": from}).
		Where(squirrel.Lt{"b.booking_date": to}).
		OrderBy("b.booking_date ASC", "b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryMany(ctx, sql, args)
}

func (r *pgxRepository) queryMany(ctx context.Context, sql string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("booking_date", b.Date.Time()).
		Set("start_time", b.Start.String()).
		Set("end_time", b.End.String()).
		Set("status", b.Status).
		Set("title", b.Title).
		Set("description", b.Description).
		Set("priority", b.Priority).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
