package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/party"
)

func newTestCustomer(t *testing.T) *party.Customer {
	t.Helper()
	customer, err := party.NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "Alice", "555-0100", "12 Main St")
	require.NoError(t, err)
	return customer
}

func newTestRider(t *testing.T) *party.Rider {
	t.Helper()
	rider, err := party.NewRider(kernel.NewUUID(), kernel.NewUUID(), "Bob", "555-0102")
	require.NoError(t, err)
	return rider
}

func newTestPlatform(t *testing.T) *party.Platform {
	t.Helper()
	platform, err := party.NewPlatform(kernel.NewUUID(), kernel.NewUUID(), "SpeedEats", "555-0103")
	require.NoError(t, err)
	return platform
}

func newTestMeal(t *testing.T, merchantID, platformID kernel.UUID, price string) *party.Meal {
	t.Helper()
	p, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	meal, err := party.NewMeal(kernel.NewUUID(), merchantID, platformID, "Ramen", p, party.MealTypeLunch)
	require.NoError(t, err)
	return meal
}

func newTestDiscount(t *testing.T, merchantID, platformID kernel.UUID, rate string) *party.Discount {
	t.Helper()
	r, err := kernel.NewDiscountRateFromString(rate)
	require.NoError(t, err)
	discount, err := party.NewDiscount(kernel.NewUUID(), merchantID, platformID, r)
	require.NoError(t, err)
	return discount
}

func newTestOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), kernel.NewUUID(),
		nil, kernel.NoDiscount(),
		[]order.ItemSpec{{MealID: kernel.NewUUID(), MealName: "Ramen", UnitPrice: price, Quantity: 1}},
	)
	require.NoError(t, err)
	return o
}

func completeOrder(t *testing.T, o *order.Order, riderID kernel.UUID) {
	t.Helper()
	require.NoError(t, o.Claim(riderID))
	require.NoError(t, o.MarkReady())
	require.NoError(t, o.Pickup())
}
