// Package party contains the actor aggregates of the marketplace (Customer,
// Merchant, Platform, and Rider) together with the merchant catalogue
// entities (Meal, Discount) and the enrollment requests that gate
// participation on a platform.
//
// Merchant, Platform, Rider, and Meal are rateable: each carries a
// kernel.RatingAggregate running average updated by the rating submission
// transaction.
package party
