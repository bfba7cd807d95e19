package booking

import "github.com/washify/booking/internal/domain"

// TransitionPolicy decides whether an admin may move a booking between two
// statuses. The shipped default permits everything, matching the observed
// admin workflow; a stricter table can be plugged in without changing the
// service contract.
type TransitionPolicy interface {
	Allowed(from, to domain.BookingStatus) bool
}

// PermissivePolicy allows any status to move to any other.
type PermissivePolicy struct{}

func (PermissivePolicy) Allowed(from, to domain.BookingStatus) bool { return true }

// TablePolicy allows only the transitions listed per source status.
type TablePolicy map[domain.BookingStatus][]domain.BookingStatus

func (p TablePolicy) Allowed(from, to domain.BookingStatus) bool {
	for _, allowed := range p[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

var (
	_ TransitionPolicy = PermissivePolicy{}
	_ TransitionPolicy = TablePolicy{}
)
