package party

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrPlatformIsNotConstructed is returned when using an improperly
// initialized Platform.
var ErrPlatformIsNotConstructed = errors.New("Platform must be created via NewPlatform or RestorePlatform")

// Platform is the marketplace operator. It approves merchant and rider
// enrollments and oversees every order placed through it. Platforms are
// rateable.
type Platform struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string
	phone  string
	rating kernel.RatingAggregate

	guard guard.ConstructorGuard
}

// NewPlatform creates a platform record with an empty rating aggregate.
func NewPlatform(id, userID kernel.UUID, name, phone string) (*Platform, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("platform name")
	}

	return &Platform{
		id:     id,
		userID: userID,
		name:   name,
		phone:  phone,
		rating: kernel.NewRatingAggregate(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestorePlatform reconstructs a platform from persistence.
func RestorePlatform(id, userID kernel.UUID, name, phone string, rating kernel.RatingAggregate) (*Platform, error) {
	platform, err := NewPlatform(id, userID, name, phone)
	if err != nil {
		return nil, err
	}
	platform.rating = rating
	return platform, nil
}

// Validate ensures the Platform was created through a constructor.
func (p *Platform) Validate() error {
	if p == nil {
		return ErrPlatformIsNotConstructed
	}
	return p.guard.Validate(ErrPlatformIsNotConstructed)
}

// ID returns the platform's unique identifier.
func (p *Platform) ID() kernel.UUID {
	return p.id
}

// UserID returns the owning user account's identifier.
func (p *Platform) UserID() kernel.UUID {
	return p.userID
}

// Name returns the platform's display name.
func (p *Platform) Name() string {
	return p.name
}

// Phone returns the platform's contact phone.
func (p *Platform) Phone() string {
	return p.phone
}

// Rating returns the platform's running rating aggregate.
func (p *Platform) Rating() kernel.RatingAggregate {
	return p.rating
}
