package party

import (
	"errors"
	"fmt"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrRiderIsNotConstructed is returned when using an improperly
// initialized Rider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")

// RiderStatus reflects a rider's availability for new work.
type RiderStatus int

const (
	// RiderStatusUnknown is a zero value and not a valid status.
	RiderStatusUnknown RiderStatus = iota
	// RiderStatusOffline means the rider is not working.
	RiderStatusOffline
	// RiderStatusOnline means the rider is available for claims.
	RiderStatusOnline
	// RiderStatusBusy means the rider is out delivering claimed orders.
	RiderStatusBusy
	// RiderStatusResting means the rider is on a break.
	RiderStatusResting
)

func getRiderStatusStrings() map[RiderStatus]string {
	return map[RiderStatus]string{
		RiderStatusUnknown: "unknown",
		RiderStatusOffline: "offline",
		RiderStatusOnline:  "online",
		RiderStatusBusy:    "busy",
		RiderStatusResting: "resting",
	}
}

func getValidRiderStatusStrings() map[string]RiderStatus {
	return map[string]RiderStatus{
		"offline": RiderStatusOffline,
		"online":  RiderStatusOnline,
		"busy":    RiderStatusBusy,
		"resting": RiderStatusResting,
	}
}

// String returns the lowercase wire representation of the status.
func (s RiderStatus) String() string {
	if str, ok := getRiderStatusStrings()[s]; ok {
		return str
	}
	return fmt.Sprintf("unknown rider status: %d", int(s))
}

// Validate reports whether the status is one of the defined values.
func (s RiderStatus) Validate() error {
	if _, ok := getValidRiderStatusStrings()[s.String()]; !ok {
		return errs.NewValueIsInvalidError("rider status")
	}
	return nil
}

// RiderStatusFromString parses a wire status string.
func RiderStatusFromString(value string) (RiderStatus, error) {
	if status, ok := getValidRiderStatusStrings()[value]; ok {
		return status, nil
	}
	return RiderStatusUnknown, errs.NewValueIsInvalidError("rider status")
}

// Rider delivers orders for the platforms that approved their
// enrollment. Riders are rateable by customers after delivery.
type Rider struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string
	phone  string
	status RiderStatus
	rating kernel.RatingAggregate

	guard guard.ConstructorGuard
}

// NewRider creates a rider record. New riders start offline with an
// empty rating aggregate.
func NewRider(id, userID kernel.UUID, name, phone string) (*Rider, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("rider name")
	}

	return &Rider{
		id:     id,
		userID: userID,
		name:   name,
		phone:  phone,
		status: RiderStatusOffline,
		rating: kernel.NewRatingAggregate(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(
	id, userID kernel.UUID, name, phone string, status RiderStatus, rating kernel.RatingAggregate,
) (*Rider, error) {
	rider, err := NewRider(id, userID, name, phone)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	rider.status = status
	rider.rating = rating
	return rider, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// UserID returns the owning user account's identifier.
func (r *Rider) UserID() kernel.UUID {
	return r.userID
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact phone.
func (r *Rider) Phone() string {
	return r.phone
}

// Status returns the rider's current availability status.
func (r *Rider) Status() RiderStatus {
	return r.status
}

// SetStatus moves the rider to a new availability status.
func (r *Rider) SetStatus(status RiderStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// Rating returns the rider's running rating aggregate.
func (r *Rider) Rating() kernel.RatingAggregate {
	return r.rating
}
