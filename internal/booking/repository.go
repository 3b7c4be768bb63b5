package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// ListByBooker and ListByOwner filter by q.State, order by start descending
	// and then apply q.Offset and q.Limit.
	ListByBooker(ctx context.Context, bookerID int64, q Query) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, q Query) ([]*Booking, error)
	// ListByBookerItemStatusBefore returns bookings of the item by the booker
	// with the given status that ended before the given time.
	ListByBookerItemStatusBefore(ctx context.Context, bookerID, itemID int64, status Status, before time.Time) ([]*Booking, error)
	// ListByItemAndStatus orders by start ascending.
	ListByItemAndStatus(ctx context.Context, itemID int64, status Status) ([]*Booking, error)
	// UpdateStatus moves a booking from one status to another atomically.
	// It fails with ErrAlreadyDecided when the booking is no longer in from.
	UpdateStatus(ctx context.Context, id int64, from, to Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_date", "b.end_date",
		"b.item_id", "i.name", "i.owner_id",
		"b.booker_id", "u.name", "b.status",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := r.selectBookings().
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

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID int64, q Query) ([]*Booking, error) {
	query := r.selectBookings().Where(squirrel.Eq{"b.booker_id": bookerID})
	return r.list(ctx, paged(withState(query, q), q))
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID int64, q Query) ([]*Booking, error) {
	query := r.selectBookings().Where(squirrel.Eq{"i.owner_id": ownerID})
	return r.list(ctx, paged(withState(query, q), q))
}

func (r *pgxRepository) ListByBookerItemStatusBefore(ctx context.Context, bookerID, itemID int64, status Status, before time.Time) ([]*Booking, error) {
	query := r.selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID, "b.item_id": itemID, "b.status": status}).
		Where(squirrel.Lt{"b.end_date": before}).
		OrderBy("b.end_date DESC", "b.id DESC")
	return r.list(ctx, query)
}

func (r *pgxRepository) ListByItemAndStatus(ctx context.Context, itemID int64, status Status) ([]*Booking, error) {
	query := r.selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID, "b.status": status}).
		OrderBy("b.start_date ASC", "b.id ASC")
	return r.list(ctx, query)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, from, to Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 1 {
		return nil
	}

	// Nothing matched: the booking is gone or someone decided it first.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrAlreadyDecided
}

func (r *pgxRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*Booking, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

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
	return bookings, rows.Err()
}

// withState translates a state bucket into SQL predicates.
func withState(query squirrel.SelectBuilder, q Query) squirrel.SelectBuilder {
	switch q.State {
	case StateCurrent:
		return query.Where(squirrel.LtOrEq{"b.start_date": q.Now}).Where(squirrel.GtOrEq{"b.end_date": q.Now})
	case StatePast:
		return query.Where(squirrel.Lt{"b.end_date": q.Now})
	case StateFuture:
		return query.Where(squirrel.Gt{"b.start_date": q.Now})
	case StateWaiting:
		return query.Where(squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		return query.Where(squirrel.Eq{"b.status": StatusRejected})
	default:
		return query
	}
}

func paged(query squirrel.SelectBuilder, q Query) squirrel.SelectBuilder {
	return query.
		OrderBy("b.start_date DESC", "b.id DESC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset))
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.Start, &b.End,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName, &b.Status,
	); err != nil {
		return nil, err
	}
	b.Start = b.Start.UTC()
	b.End = b.End.UTC()
	return &b, nil
}
