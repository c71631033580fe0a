package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
)

func mustRating(t *testing.T, s string) kernel.Rating {
	t.Helper()
	r, err := kernel.NewRatingFromString(s)
	require.NoError(t, err)
	return r
}

func Test_NewOrderRating_Valid(t *testing.T) {
	// Arrange
	rider := mustRating(t, "5")
	items := []ItemRating{
		must(NewItemRating(kernel.NewUUID(), kernel.NewUUID(), mustRating(t, "4"))),
	}

	// Act
	orderRating, err := NewOrderRating(
		kernel.NewUUID(), kernel.NewUUID(), mustRating(t, "4.5"), mustRating(t, "3"), &rider, items, "fast",
	)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, orderRating.Validate())
	assert.Equal(t, "4.50", orderRating.Merchant().String())
	assert.Equal(t, "3.00", orderRating.Platform().String())
	require.NotNil(t, orderRating.Rider())
	assert.Equal(t, "5.00", orderRating.Rider().String())
	assert.Equal(t, "fast", orderRating.Comment())
	assert.Len(t, orderRating.ItemRatings(), 1)
	assert.False(t, orderRating.CreatedAt().IsZero())
}

func Test_NewOrderRating_NoRider(t *testing.T) {
	// Arrange
	items := []ItemRating{
		must(NewItemRating(kernel.NewUUID(), kernel.NewUUID(), mustRating(t, "4"))),
	}

	// Act
	orderRating, err := NewOrderRating(
		kernel.NewUUID(), kernel.NewUUID(), mustRating(t, "4"), mustRating(t, "4"), nil, items, "",
	)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, orderRating.Rider())
}

func Test_NewOrderRating_NoItems(t *testing.T) {
	// Act
	_, err := NewOrderRating(
		kernel.NewUUID(), kernel.NewUUID(), mustRating(t, "4"), mustRating(t, "4"), nil, nil, "",
	)

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_NewOrderRating_DuplicateItem(t *testing.T) {
	// Arrange
	itemID := kernel.NewUUID()
	items := []ItemRating{
		must(NewItemRating(itemID, kernel.NewUUID(), mustRating(t, "4"))),
		must(NewItemRating(itemID, kernel.NewUUID(), mustRating(t, "2"))),
	}

	// Act
	_, err := NewOrderRating(
		kernel.NewUUID(), kernel.NewUUID(), mustRating(t, "4"), mustRating(t, "4"), nil, items, "",
	)

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_OrderRating_NotConstructed(t *testing.T) {
	// Arrange
	var orderRating *OrderRating

	// Assert
	assert.ErrorIs(t, orderRating.Validate(), ErrOrderRatingIsNotConstructed)
	assert.ErrorIs(t, (&OrderRating{}).Validate(), ErrOrderRatingIsNotConstructed)
}

func must(r ItemRating, err error) ItemRating {
	if err != nil {
		panic(err)
	}
	return r
}
