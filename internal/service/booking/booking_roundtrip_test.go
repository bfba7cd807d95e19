package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/washify/booking/internal/domain"
	"go.uber.org/zap"
)

func zapNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// memBookingRepo is an in-memory stand-in for the Postgres store, enough to
// exercise the create-then-lookup path end to end.
type memBookingRepo struct {
	mu       sync.Mutex
	nextID   int
	byNumber map[string]*domain.BookingDetails
	byID     map[string]*domain.BookingDetails
	pkg      domain.ServicePackage
}

func newMemBookingRepo(pkg domain.ServicePackage) *memBookingRepo {
	return &memBookingRepo{
		byNumber: make(map[string]*domain.BookingDetails),
		byID:     make(map[string]*domain.BookingDetails),
		pkg:      pkg,
	}
}

func (r *memBookingRepo) CreateCustomerAndBooking(ctx context.Context, customer *domain.Customer, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byNumber[booking.BookingNumber]; exists {
		return domain.ErrDuplicateBookingNumber
	}

	r.nextID++
	customer.ID = "cust-" + booking.BookingNumber
	customer.CreatedAt = time.Now()
	booking.ID = "book-" + booking.BookingNumber
	booking.CustomerID = customer.ID
	booking.Status = domain.BookingStatusPending
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	details := &domain.BookingDetails{Booking: *booking, Customer: *customer, ServicePackage: r.pkg}
	r.byNumber[booking.BookingNumber] = details
	r.byID[booking.ID] = details
	return nil
}

func (r *memBookingRepo) GetByNumber(ctx context.Context, bookingNumber string) (*domain.BookingDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.byNumber[bookingNumber]; ok {
		return d, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.byID[id]; ok {
		b := d.Booking
		return &b, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memBookingRepo) List(ctx context.Context) ([]domain.BookingDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.BookingDetails, 0, len(r.byNumber))
	for _, d := range r.byNumber {
		out = append(out, *d)
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d.Status = status
	d.UpdatedAt = time.Now()
	b := d.Booking
	return &b, nil
}

type memPackageRepo struct {
	pkg domain.ServicePackage
}

func (r *memPackageRepo) ListActive(ctx context.Context) ([]domain.ServicePackage, error) {
	return []domain.ServicePackage{r.pkg}, nil
}

func (r *memPackageRepo) GetActiveByID(ctx context.Context, id string) (*domain.ServicePackage, error) {
	if id != r.pkg.ID {
		return nil, domain.ErrNotFound
	}
	pkg := r.pkg
	return &pkg, nil
}

func TestCreateThenLookup_RoundTrip(t *testing.T) {
	repo := newMemBookingRepo(basicPackage)
	service := NewBookingService(repo, &memPackageRepo{pkg: basicPackage}, nil, "", zapNop())

	sub := annaSubmission()
	created, err := service.CreateBooking(context.Background(), sub)
	assert.NoError(t, err)

	found, err := service.GetByNumber(context.Background(), created.BookingNumber)
	assert.NoError(t, err)

	assert.Equal(t, sub.Name, found.Customer.Name)
	assert.Equal(t, sub.Email, found.Customer.Email)
	assert.Equal(t, sub.CarModel, found.Customer.CarModel)
	assert.Equal(t, sub.BookingDate, found.BookingDate.Format("2006-01-02"))
	assert.Equal(t, sub.BookingTime, found.BookingTime)
	assert.Equal(t, sub.Address, found.Address)
	assert.Equal(t, "12345", found.PostalCode)
	assert.Equal(t, sub.City, found.City)
	assert.Equal(t, basicPackage.Price, found.TotalPrice)
	assert.Equal(t, domain.BookingStatusPending, found.Status)
}

func TestSnapshotPrice_SurvivesCatalogChange(t *testing.T) {
	pkgRepo := &memPackageRepo{pkg: basicPackage}
	repo := newMemBookingRepo(basicPackage)
	service := NewBookingService(repo, pkgRepo, nil, "", zapNop())

	created, err := service.CreateBooking(context.Background(), annaSubmission())
	assert.NoError(t, err)

	// Catalog price change after the booking exists.
	pkgRepo.pkg.Price = 399

	found, err := service.GetByNumber(context.Background(), created.BookingNumber)
	assert.NoError(t, err)
	assert.Equal(t, float64(299), found.TotalPrice)
}

type failingProducer struct{}

func (failingProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	return errors.New("provider unavailable")
}

func TestNotificationFailure_LookupStillSucceeds(t *testing.T) {
	repo := newMemBookingRepo(basicPackage)
	service := NewBookingService(repo, &memPackageRepo{pkg: basicPackage}, failingProducer{}, "booking.notifications", zapNop())

	created, err := service.CreateBooking(context.Background(), annaSubmission())
	assert.NoError(t, err)

	found, err := service.GetByNumber(context.Background(), created.BookingNumber)
	assert.NoError(t, err)
	assert.Equal(t, created.BookingNumber, found.BookingNumber)
}
