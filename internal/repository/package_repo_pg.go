package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/washify/booking/internal/domain"
)

type PackageRepository interface {
	ListActive(ctx context.Context) ([]domain.ServicePackage, error)
	GetActiveByID(ctx context.Context, id string) (*domain.ServicePackage, error)
}

type PGPackageRepository struct {
	db *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) PackageRepository {
	return &PGPackageRepository{db: db}
}

func (r *PGPackageRepository) ListActive(ctx context.Context) ([]domain.ServicePackage, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, price, duration_minutes, is_active, created_at
		FROM service_packages WHERE is_active ORDER BY price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]domain.ServicePackage, 0)
	for rows.Next() {
		var p domain.ServicePackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DurationMinutes, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *PGPackageRepository) GetActiveByID(ctx context.Context, id string) (*domain.ServicePackage, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, description, price, duration_minutes, is_active, created_at
		FROM service_packages WHERE id=$1 AND is_active`, id)
	var p domain.ServicePackage
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DurationMinutes, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ PackageRepository = (*PGPackageRepository)(nil)
