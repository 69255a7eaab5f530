package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/big-trip/internal/domain"
)

// PointRepo defines the persistence operations for route points.
type PointRepo interface {
	// List returns every point in insertion order.
	List(ctx context.Context) ([]domain.Point, error)

	// GetByID returns domain.ErrNotFound if no point with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Point, error)

	// Create inserts a point and returns it with its DB-generated id.
	// Any id on the input is ignored.
	Create(ctx context.Context, p domain.Point) (domain.Point, error)

	// Update overwrites every mutable field of the point with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id uuid.UUID, p domain.Point) (domain.Point, error)

	// Delete returns domain.ErrNotFound if the point does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgPointRepo struct {
	db db
}

// NewPointRepo constructs a PointRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPointRepo(db db) PointRepo {
	return &pgPointRepo{db: db}
}

const pointColumns = `id, point_type, destination_id, base_price, date_from, date_to, offer_ids, is_favorite`

func (r *pgPointRepo) List(ctx context.Context) ([]domain.Point, error) {
	const q = `SELECT ` + pointColumns + ` FROM points ORDER BY seq`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PointRepo.List: %w", err)
	}
	defer rows.Close()

	var points []domain.Point
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PointRepo.List: scan: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PointRepo.List: rows: %w", err)
	}
	return points, nil
}

func (r *pgPointRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Point, error) {
	const q = `SELECT ` + pointColumns + ` FROM points WHERE id = @id`

	p, err := scanPoint(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.GetByID: %w", err)
	}
	return p, nil
}

func (r *pgPointRepo) Create(ctx context.Context, p domain.Point) (domain.Point, error) {
	const q = `
		INSERT INTO points (point_type, destination_id, base_price, date_from, date_to, offer_ids, is_favorite)
		VALUES (@point_type, @destination_id, @base_price, @date_from, @date_to, @offer_ids, @is_favorite)
		RETURNING ` + pointColumns

	args, err := pointArgs(p)
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Create: %w", err)
	}

	created, err := scanPoint(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Create: %w", err)
	}
	return created, nil
}

func (r *pgPointRepo) Update(ctx context.Context, id uuid.UUID, p domain.Point) (domain.Point, error) {
	const q = `
		UPDATE points
		SET point_type     = @point_type,
		    destination_id = @destination_id,
		    base_price     = @base_price,
		    date_from      = @date_from,
		    date_to        = @date_to,
		    offer_ids      = @offer_ids,
		    is_favorite    = @is_favorite,
		    updated_at     = now()
		WHERE id = @id
		RETURNING ` + pointColumns

	args, err := pointArgs(p)
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Update: %w", err)
	}
	args["id"] = id

	updated, err := scanPoint(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Update: %w", err)
	}
	return updated, nil
}

func (r *pgPointRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM points WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PointRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PointRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func pointArgs(p domain.Point) (pgx.NamedArgs, error) {
	destination, err := parseID("destination", p.DestinationID)
	if err != nil {
		return nil, err
	}
	offers := p.OfferIDs
	if offers == nil {
		offers = []string{}
	}
	return pgx.NamedArgs{
		"point_type":     string(p.Type),
		"destination_id": destination,
		"base_price":     p.BasePrice,
		"date_from":      p.DateFrom,
		"date_to":        p.DateTo,
		"offer_ids":      offers,
		"is_favorite":    p.IsFavorite,
	}, nil
}

func scanPoint(s scanner) (domain.Point, error) {
	var (
		p           domain.Point
		id          pgtype.UUID
		destination pgtype.UUID
		pointType   string
	)

	err := s.Scan(&id, &pointType, &destination, &p.BasePrice, &p.DateFrom, &p.DateTo, &p.OfferIDs, &p.IsFavorite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Point{}, domain.ErrNotFound
		}
		return domain.Point{}, err
	}

	p.ID = idString(id)
	p.Type = domain.PointType(pointType)
	p.DestinationID = idString(destination)
	p.DateFrom = p.DateFrom.UTC()
	p.DateTo = p.DateTo.UTC()
	return p, nil
}
