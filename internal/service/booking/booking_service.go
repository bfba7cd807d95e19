package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/booking/internal/domain"
	"github.com/washify/booking/internal/kafka"
	"github.com/washify/booking/internal/refcode"
	"github.com/washify/booking/internal/repository"
	"github.com/washify/booking/internal/validation"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, sub validation.Submission) (*domain.BookingDetails, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingDetails, error)
	ListBookings(ctx context.Context) ([]domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	packages           repository.PackageRepository
	validator          *validation.Validator
	generator          *refcode.Generator
	producer           Producer
	notificationsTopic string
	policy             TransitionPolicy
	maxNumberAttempts  int
	log                *zap.SugaredLogger
}

type BookingServiceOption func(*BookingService)

// WithTransitionPolicy replaces the default permissive status policy.
func WithTransitionPolicy(policy TransitionPolicy) BookingServiceOption {
	return func(s *BookingService) {
		s.policy = policy
	}
}

// WithNumberAttempts caps the retries after a booking number collision.
func WithNumberAttempts(n int) BookingServiceOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxNumberAttempts = n
		}
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	packages repository.PackageRepository,
	producer Producer,
	notificationsTopic string,
	log *zap.SugaredLogger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:           bookings,
		packages:           packages,
		validator:          validation.New(),
		generator:          refcode.NewGenerator(),
		producer:           producer,
		notificationsTopic: notificationsTopic,
		policy:             PermissivePolicy{},
		maxNumberAttempts:  5,
		log:                log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the submission, snapshots the package price and
// writes customer and booking in one transaction. A unique-constraint
// conflict on the booking number is retried with fresh candidates. The
// confirmation event publish is best effort: a failure is logged and the
// created booking is still returned.
func (s *BookingService) CreateBooking(ctx context.Context, sub validation.Submission) (*domain.BookingDetails, error) {
	req, verrs := s.validator.Validate(sub)
	if verrs != nil {
		return nil, verrs
	}

	pkg, err := s.packages.GetActiveByID(ctx, req.ServicePackageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, validation.Errors{{Field: "servicePackageId", Message: "package not found"}}
		}
		return nil, fmt.Errorf("resolve package: %w", err)
	}

	customer := &domain.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CarModel:     req.CarModel,
		LicensePlate: req.LicensePlate,
	}
	booking := &domain.Booking{
		ServicePackageID: pkg.ID,
		BookingDate:      req.BookingDate,
		BookingTime:      req.BookingTime,
		Address:          req.Address,
		PostalCode:       req.PostalCode,
		City:             req.City,
		SpecialRequests:  req.SpecialRequests,
		TotalPrice:       pkg.Price,
	}

	booking.BookingNumber = s.generator.Next()
	for attempt := 0; ; attempt++ {
		err = s.bookings.CreateCustomerAndBooking(ctx, customer, booking)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateBookingNumber) && attempt < s.maxNumberAttempts-1 {
			booking.BookingNumber = s.generator.Retry()
			continue
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := s.publish(ctx, "booking_created", booking, customer, pkg); err != nil {
		s.log.Warnw("publish booking_created failed", "booking_number", booking.BookingNumber, "err", err)
	}

	return &domain.BookingDetails{Booking: *booking, Customer: *customer, ServicePackage: *pkg}, nil
}

func (s *BookingService) GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingDetails, error) {
	return s.bookings.GetByNumber(ctx, bookingNumber)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.BookingDetails, error) {
	return s.bookings.List(ctx)
}

// UpdateStatus overwrites the status after the transition policy agrees.
// Concurrent updates race with last-write-wins semantics.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.KnownStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.Allowed(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrTransitionNotAllowed, current.Status, status)
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, customer *domain.Customer, pkg *domain.ServicePackage) error {
	if s.producer == nil || s.notificationsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingNumber: booking.BookingNumber,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ServiceName:   pkg.Name,
		ServicePrice:  pkg.Price,
		BookingDate:   booking.BookingDate.Format(validation.DateLayout),
		BookingTime:   booking.BookingTime,
		Address:       booking.Address,
		PostalCode:    booking.PostalCode,
		City:          booking.City,
		CarModel:      customer.CarModel,
		LicensePlate:  customer.LicensePlate,
		Status:        string(booking.Status),
	}
	return s.producer.Publish(ctx, s.notificationsTopic, booking.BookingNumber, event)
}

var _ BookingUseCase = (*BookingService)(nil)
