package kernel

import (
	"speedeats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ratingScale is the number of fractional digits for rating values and
// running-average scores.
const ratingScale = 2

var (
	ratingMin = decimal.Zero
	ratingMax = decimal.NewFromInt(5)
)

// Rating is a star rating in [0, 5] with two fractional digits, rounded
// half-up on construction. It is immutable.
type Rating struct {
	value decimal.Decimal
	set   bool
}

// ErrRatingIsNotConstructed indicates a zero-value Rating used outside the
// constructor functions.
var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError(
	"Rating must be created via NewRating or NewRatingFromString",
)

// NewRating validates that the value lies in [0, 5] and rounds it half-up to
// two fractional digits.
func NewRating(value decimal.Decimal) (Rating, error) {
	if value.LessThan(ratingMin) || value.GreaterThan(ratingMax) {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value.String(), "0", "5")
	}

	return Rating{value: value.Round(ratingScale), set: true}, nil
}

// NewRatingFromString parses a decimal string such as "4.5" into a Rating.
// Empty or non-numeric input is a validation failure, not a server error.
func NewRatingFromString(s string) (Rating, error) {
	if s == "" {
		return Rating{}, errs.NewValueIsRequiredError("rating")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rating{}, errs.NewValueIsInvalidErrorWithCause("rating", err)
	}

	return NewRating(d)
}

// Decimal exposes the underlying decimal for persistence and aggregation.
func (r Rating) Decimal() decimal.Decimal {
	return r.value
}

// String renders the rating with exactly two fractional digits.
func (r Rating) String() string {
	return r.value.StringFixed(ratingScale)
}

// IsEqual reports whether two ratings are numerically equal.
func (r Rating) IsEqual(other Rating) bool {
	return r.value.Equal(other.value)
}

// Validate returns ErrRatingIsNotConstructed for the zero value.
func (r Rating) Validate() error {
	if !r.set {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// RatingAggregate is the running average of all ratings ever applied to a
// rateable entity (merchant, platform, rider, or meal). The score always
// equals the arithmetic mean rounded half-up to two fractional digits after
// each update; the count equals the number of ratings applied.
type RatingAggregate struct {
	score decimal.Decimal
	count int64
}

// NewRatingAggregate returns the empty aggregate: score 0.00, count 0.
func NewRatingAggregate() RatingAggregate {
	return RatingAggregate{score: decimal.Zero}
}

// RestoreRatingAggregate reconstructs an aggregate from persistence.
func RestoreRatingAggregate(score decimal.Decimal, count int64) (RatingAggregate, error) {
	if count < 0 {
		return RatingAggregate{}, errs.NewValueIsInvalidError("rating count")
	}
	if score.IsNegative() || score.GreaterThan(ratingMax) {
		return RatingAggregate{}, errs.NewValueIsOutOfRangeError("rating score", score.String(), "0", "5")
	}

	return RatingAggregate{score: score.Round(ratingScale), count: count}, nil
}

// Score returns the current running-average score.
func (a RatingAggregate) Score() decimal.Decimal {
	return a.score
}

// Count returns the number of ratings applied so far.
func (a RatingAggregate) Count() int64 {
	return a.count
}
