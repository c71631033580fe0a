package party

import (
	"errors"
	"fmt"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrMealIsNotConstructed is returned when using an improperly
// initialized Meal.
var ErrMealIsNotConstructed = errors.New("Meal must be created via NewMeal or RestoreMeal")

// MealType restricts when a meal appears on the menu.
type MealType int

const (
	// MealTypeUnknown is a zero value and not a valid type.
	MealTypeUnknown MealType = iota
	// MealTypeBreakfast is served in the morning only.
	MealTypeBreakfast
	// MealTypeLunch is served at midday only.
	MealTypeLunch
	// MealTypeDinner is served in the evening only.
	MealTypeDinner
	// MealTypeLunchAndDinner is served at midday and in the evening.
	MealTypeLunchAndDinner
)

func getMealTypeStrings() map[MealType]string {
	return map[MealType]string{
		MealTypeUnknown:        "unknown",
		MealTypeBreakfast:      "breakfast",
		MealTypeLunch:          "lunch",
		MealTypeDinner:         "dinner",
		MealTypeLunchAndDinner: "lunch_and_dinner",
	}
}

func getValidMealTypeStrings() map[string]MealType {
	return map[string]MealType{
		"breakfast":        MealTypeBreakfast,
		"lunch":            MealTypeLunch,
		"dinner":           MealTypeDinner,
		"lunch_and_dinner": MealTypeLunchAndDinner,
	}
}

// String returns the lowercase wire representation of the meal type.
func (t MealType) String() string {
	if str, ok := getMealTypeStrings()[t]; ok {
		return str
	}
	return fmt.Sprintf("unknown meal type: %d", int(t))
}

// Validate reports whether the type is one of the defined values.
func (t MealType) Validate() error {
	if _, ok := getValidMealTypeStrings()[t.String()]; !ok {
		return errs.NewValueIsInvalidError("meal type")
	}
	return nil
}

// MealTypeFromString parses a wire meal type string.
func MealTypeFromString(value string) (MealType, error) {
	if mealType, ok := getValidMealTypeStrings()[value]; ok {
		return mealType, nil
	}
	return MealTypeUnknown, errs.NewValueIsInvalidError("meal type")
}

// Meal is a single menu entry a merchant offers on one platform. The
// pair (merchant, platform) scopes the meal: the same dish listed on
// two platforms is two meals with independent prices and ratings.
type Meal struct {
	id         kernel.UUID
	merchantID kernel.UUID
	platformID kernel.UUID
	name       string
	price      kernel.Money
	mealType   MealType
	rating     kernel.RatingAggregate

	guard guard.ConstructorGuard
}

// NewMeal creates a meal with an empty rating aggregate.
func NewMeal(
	id, merchantID, platformID kernel.UUID, name string, price kernel.Money, mealType MealType,
) (*Meal, error) {
	if err := errors.Join(
		id.Validate(),
		merchantID.Validate(),
		platformID.Validate(),
		mealType.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("meal name")
	}

	return &Meal{
		id:         id,
		merchantID: merchantID,
		platformID: platformID,
		name:       name,
		price:      price,
		mealType:   mealType,
		rating:     kernel.NewRatingAggregate(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreMeal reconstructs a meal from persistence.
func RestoreMeal(
	id, merchantID, platformID kernel.UUID,
	name string,
	price kernel.Money,
	mealType MealType,
	rating kernel.RatingAggregate,
) (*Meal, error) {
	meal, err := NewMeal(id, merchantID, platformID, name, price, mealType)
	if err != nil {
		return nil, err
	}
	meal.rating = rating
	return meal, nil
}

// Validate ensures the Meal was created through a constructor.
func (m *Meal) Validate() error {
	if m == nil {
		return ErrMealIsNotConstructed
	}
	return m.guard.Validate(ErrMealIsNotConstructed)
}

// ID returns the meal's unique identifier.
func (m *Meal) ID() kernel.UUID {
	return m.id
}

// MerchantID returns the owning merchant's identifier.
func (m *Meal) MerchantID() kernel.UUID {
	return m.merchantID
}

// PlatformID returns the platform the meal is listed on.
func (m *Meal) PlatformID() kernel.UUID {
	return m.platformID
}

// Name returns the meal's display name.
func (m *Meal) Name() string {
	return m.name
}

// Price returns the meal's undiscounted unit price.
func (m *Meal) Price() kernel.Money {
	return m.price
}

// Type returns the meal's menu slot.
func (m *Meal) Type() MealType {
	return m.mealType
}

// Rating returns the meal's running rating aggregate.
func (m *Meal) Rating() kernel.RatingAggregate {
	return m.rating
}
