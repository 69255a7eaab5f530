package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/big-trip/internal/domain"
)

// OfferRepo reads and seeds the offer catalog.
type OfferRepo interface {
	// ListGroups returns the offers of every type that has any, grouped by
	// type. Types and offers keep their catalog order.
	ListGroups(ctx context.Context) ([]domain.OfferGroup, error)

	// ListByType returns the offers available to t, possibly none.
	ListByType(ctx context.Context, t domain.PointType) ([]domain.Offer, error)

	// Create appends an offer to the catalog of t.
	Create(ctx context.Context, t domain.PointType, o domain.Offer) (domain.Offer, error)
}

type pgOfferRepo struct {
	db db
}

// NewOfferRepo constructs an OfferRepo backed by the provided db connection.
func NewOfferRepo(db db) OfferRepo {
	return &pgOfferRepo{db: db}
}

func (r *pgOfferRepo) ListGroups(ctx context.Context) ([]domain.OfferGroup, error) {
	const q = `SELECT point_type, id, title, price FROM offers ORDER BY point_type, position, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.OfferRepo.ListGroups: %w", err)
	}
	defer rows.Close()

	var groups []domain.OfferGroup
	for rows.Next() {
		var (
			pointType string
			o         domain.Offer
			id        pgtype.UUID
		)
		if err := rows.Scan(&pointType, &id, &o.Title, &o.Price); err != nil {
			return nil, fmt.Errorf("repo.OfferRepo.ListGroups: scan: %w", err)
		}
		o.ID = idString(id)

		t := domain.PointType(pointType)
		if n := len(groups); n == 0 || groups[n-1].Type != t {
			groups = append(groups, domain.OfferGroup{Type: t})
		}
		groups[len(groups)-1].Offers = append(groups[len(groups)-1].Offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.OfferRepo.ListGroups: rows: %w", err)
	}
	return groups, nil
}

func (r *pgOfferRepo) ListByType(ctx context.Context, t domain.PointType) ([]domain.Offer, error) {
	const q = `
		SELECT id, title, price FROM offers
		WHERE point_type = @point_type
		ORDER BY position, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"point_type": string(t)})
	if err != nil {
		return nil, fmt.Errorf("repo.OfferRepo.ListByType: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var (
			o  domain.Offer
			id pgtype.UUID
		)
		if err := rows.Scan(&id, &o.Title, &o.Price); err != nil {
			return nil, fmt.Errorf("repo.OfferRepo.ListByType: scan: %w", err)
		}
		o.ID = idString(id)
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.OfferRepo.ListByType: rows: %w", err)
	}
	return offers, nil
}

func (r *pgOfferRepo) Create(ctx context.Context, t domain.PointType, o domain.Offer) (domain.Offer, error) {
	const q = `
		INSERT INTO offers (point_type, title, price, position)
		VALUES (@point_type, @title, @price,
		        (SELECT COALESCE(MAX(position), -1) + 1 FROM offers WHERE point_type = @point_type))
		RETURNING id, title, price`

	var (
		created domain.Offer
		id      pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"point_type": string(t),
		"title":      o.Title,
		"price":      o.Price,
	}).Scan(&id, &created.Title, &created.Price)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("repo.OfferRepo.Create: %w", err)
	}
	created.ID = idString(id)
	return created, nil
}
