// Package kernel contains the shared value objects of the domain model:
// UUID identifiers, fixed-point Money and DiscountRate for pricing, and
// Rating with its running-average RatingAggregate.
//
// All monetary and rating arithmetic is exact decimal with two fractional
// digits, rounded half-up. Binary floating point never enters the domain.
package kernel
