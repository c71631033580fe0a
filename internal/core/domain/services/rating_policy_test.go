package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/rating"
	"speedeats/internal/pkg/errs"
)

func buildOrder(t *testing.T, itemCount int) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	specs := make([]order.ItemSpec, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		specs = append(specs, order.ItemSpec{
			MealID:    kernel.NewUUID(),
			MealName:  "Ramen",
			UnitPrice: price,
			Quantity:  1,
		})
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, kernel.NoDiscount(), specs,
	)
	require.NoError(t, err)
	return o
}

func completeWithRider(t *testing.T, o *order.Order) {
	t.Helper()
	require.NoError(t, o.Claim(kernel.NewUUID()))
	require.NoError(t, o.MarkReady())
	require.NoError(t, o.Pickup())
}

func ratingOf(t *testing.T, s string) kernel.Rating {
	t.Helper()
	r, err := kernel.NewRatingFromString(s)
	require.NoError(t, err)
	return r
}

func reviewFor(t *testing.T, o *order.Order, rider *kernel.Rating) *rating.OrderRating {
	t.Helper()

	items := make([]rating.ItemRating, 0, len(o.Items()))
	for _, item := range o.Items() {
		ir, err := rating.NewItemRating(item.ID(), item.MealID(), ratingOf(t, "4"))
		require.NoError(t, err)
		items = append(items, ir)
	}

	r, err := rating.NewOrderRating(
		kernel.NewUUID(), o.ID(), ratingOf(t, "5"), ratingOf(t, "4"), rider, items, "great",
	)
	require.NoError(t, err)
	return r
}

func Test_RatingPolicy_CompletedDeliveredOrder(t *testing.T) {
	// Arrange
	policy := NewRatingPolicy()
	o := buildOrder(t, 2)
	completeWithRider(t, o)
	riderScore := ratingOf(t, "5")

	// Act
	err := policy.Review(o, reviewFor(t, o, &riderScore))

	// Assert
	assert.NoError(t, err)
}

func Test_RatingPolicy_NotCompleted(t *testing.T) {
	// Arrange
	policy := NewRatingPolicy()
	o := buildOrder(t, 1)
	require.NoError(t, o.Claim(kernel.NewUUID()))
	riderScore := ratingOf(t, "5")

	// Act
	err := policy.Review(o, reviewFor(t, o, &riderScore))

	// Assert
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func Test_RatingPolicy_MissingRiderScore(t *testing.T) {
	// Arrange
	policy := NewRatingPolicy()
	o := buildOrder(t, 1)
	completeWithRider(t, o)

	// Act
	err := policy.Review(o, reviewFor(t, o, nil))

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_RatingPolicy_WrongOrder(t *testing.T) {
	// Arrange
	policy := NewRatingPolicy()
	o := buildOrder(t, 1)
	completeWithRider(t, o)
	other := buildOrder(t, 1)
	completeWithRider(t, other)
	riderScore := ratingOf(t, "5")

	// Act
	err := policy.Review(o, reviewFor(t, other, &riderScore))

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_RatingPolicy_ItemMismatch(t *testing.T) {
	// Arrange
	policy := NewRatingPolicy()
	o := buildOrder(t, 2)
	completeWithRider(t, o)
	riderScore := ratingOf(t, "5")

	stray, err := rating.NewItemRating(kernel.NewUUID(), kernel.NewUUID(), ratingOf(t, "3"))
	require.NoError(t, err)
	first, err := rating.NewItemRating(o.Items()[0].ID(), o.Items()[0].MealID(), ratingOf(t, "3"))
	require.NoError(t, err)

	review, err := rating.NewOrderRating(
		kernel.NewUUID(), o.ID(), ratingOf(t, "5"), ratingOf(t, "4"), &riderScore,
		[]rating.ItemRating{first, stray}, "",
	)
	require.NoError(t, err)

	// Act
	err = policy.Review(o, review)

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_RatingPolicy_TooFewItemRatings(t *testing.T) {
	// Arrange
	policy := NewRatingPolicy()
	o := buildOrder(t, 3)
	completeWithRider(t, o)
	riderScore := ratingOf(t, "5")

	first, err := rating.NewItemRating(o.Items()[0].ID(), o.Items()[0].MealID(), ratingOf(t, "3"))
	require.NoError(t, err)

	review, err := rating.NewOrderRating(
		kernel.NewUUID(), o.ID(), ratingOf(t, "5"), ratingOf(t, "4"), &riderScore,
		[]rating.ItemRating{first}, "",
	)
	require.NoError(t, err)

	// Act
	err = policy.Review(o, review)

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
