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

// DestinationRepo reads and seeds the destination catalog.
type DestinationRepo interface {
	// List returns every destination ordered by name.
	List(ctx context.Context) ([]domain.Destination, error)

	// GetByID returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// Create inserts a destination and returns it with its DB-generated id.
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)
}

type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

// pictureRow is the JSON layout of one element of destinations.pictures.
type pictureRow struct {
	Src         string `json:"src"`
	Description string `json:"description"`
}

func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `SELECT id, name, description, pictures FROM destinations ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}
	return out, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `SELECT id, name, description, pictures FROM destinations WHERE id = @id`

	d, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return d, nil
}

func (r *pgDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, description, pictures)
		VALUES (@name, @description, @pictures)
		RETURNING id, name, description, pictures`

	pics := make([]pictureRow, 0, len(d.Pictures))
	for _, p := range d.Pictures {
		pics = append(pics, pictureRow{Src: p.Src, Description: p.Description})
	}

	created, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"name":        d.Name,
		"description": d.Description,
		"pictures":    pics,
	}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return created, nil
}

func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d    domain.Destination
		id   pgtype.UUID
		pics []pictureRow
	)
	if err := s.Scan(&id, &d.Name, &d.Description, &pics); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = idString(id)
	for _, p := range pics {
		d.Pictures = append(d.Pictures, domain.Picture{Src: p.Src, Description: p.Description})
	}
	return d, nil
}
