package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/washify/booking/internal/domain"
)

type BookingRepository interface {
	CreateCustomerAndBooking(ctx context.Context, customer *domain.Customer, booking *domain.Booking) error
	GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingDetails, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const uniqueViolation = "23505"
const foreignKeyViolation = "23503"

// CreateCustomerAndBooking inserts the customer and the booking in one
// transaction so a booking-insert failure never leaves an orphaned customer.
func (r *PGBookingRepository) CreateCustomerAndBooking(ctx context.Context, customer *domain.Customer, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO customers (name, email, phone, car_model, license_plate)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`,
		customer.Name, customer.Email, customer.Phone, customer.CarModel, customer.LicensePlate).
		Scan(&customer.ID, &customer.CreatedAt); err != nil {
		return err
	}

	booking.CustomerID = customer.ID
	booking.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (booking_number, customer_id, service_package_id, booking_date, booking_time, address, postal_code, city, status, special_requests, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11)
		RETURNING id, created_at, updated_at`,
		booking.BookingNumber, booking.CustomerID, booking.ServicePackageID, booking.BookingDate,
		booking.BookingTime, booking.Address, booking.PostalCode, booking.City, booking.Status,
		booking.SpecialRequests, booking.TotalPrice).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return domain.ErrDuplicateBookingNumber
			case foreignKeyViolation:
				return domain.ErrNotFound
			}
		}
		return err
	}

	return tx.Commit(ctx)
}

const bookingDetailsColumns = `
	b.id, b.booking_number, b.customer_id, b.service_package_id,
	b.booking_date, b.booking_time, b.address, COALESCE(b.postal_code, ''), COALESCE(b.city, ''),
	b.status, COALESCE(b.special_requests, ''), b.total_price, b.created_at, b.updated_at,
	c.id, c.name, c.email, c.phone, c.car_model, COALESCE(c.license_plate, ''), c.created_at,
	p.id, p.name, p.description, p.price, p.duration_minutes, p.is_active, p.created_at`

const bookingDetailsFrom = `
	FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	JOIN service_packages p ON p.id = b.service_package_id`

func scanBookingDetails(row pgx.Row) (*domain.BookingDetails, error) {
	var d domain.BookingDetails
	if err := row.Scan(
		&d.ID, &d.BookingNumber, &d.CustomerID, &d.ServicePackageID,
		&d.BookingDate, &d.BookingTime, &d.Address, &d.PostalCode, &d.City,
		&d.Status, &d.SpecialRequests, &d.TotalPrice, &d.CreatedAt, &d.UpdatedAt,
		&d.Customer.ID, &d.Customer.Name, &d.Customer.Email, &d.Customer.Phone,
		&d.Customer.CarModel, &d.Customer.LicensePlate, &d.Customer.CreatedAt,
		&d.ServicePackage.ID, &d.ServicePackage.Name, &d.ServicePackage.Description,
		&d.ServicePackage.Price, &d.ServicePackage.DurationMinutes,
		&d.ServicePackage.IsActive, &d.ServicePackage.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByNumber resolves a booking by its exact, case-sensitive number.
func (r *PGBookingRepository) GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingDetails, error) {
	row := r.db.QueryRow(ctx, `SELECT`+bookingDetailsColumns+bookingDetailsFrom+` WHERE b.booking_number=$1`, bookingNumber)
	d, err := scanBookingDetails(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.BookingDetails, error) {
	rows, err := r.db.Query(ctx, `SELECT`+bookingDetailsColumns+bookingDetailsFrom+` ORDER BY b.booking_date, b.booking_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingDetails, 0)
	for rows.Next() {
		d, err := scanBookingDetails(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *d)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, booking_number, customer_id, service_package_id, booking_date, booking_time,
		address, COALESCE(postal_code, ''), COALESCE(city, ''), status, COALESCE(special_requests, ''),
		total_price, created_at, updated_at FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.BookingNumber, &b.CustomerID, &b.ServicePackageID, &b.BookingDate,
		&b.BookingTime, &b.Address, &b.PostalCode, &b.City, &b.Status, &b.SpecialRequests,
		&b.TotalPrice, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus overwrites the status and bumps updated_at.
func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2
		RETURNING id, booking_number, customer_id, service_package_id, booking_date, booking_time,
			address, COALESCE(postal_code, ''), COALESCE(city, ''), status, COALESCE(special_requests, ''),
			total_price, created_at, updated_at`, status, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.BookingNumber, &b.CustomerID, &b.ServicePackageID, &b.BookingDate,
		&b.BookingTime, &b.Address, &b.PostalCode, &b.City, &b.Status, &b.SpecialRequests,
		&b.TotalPrice, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
