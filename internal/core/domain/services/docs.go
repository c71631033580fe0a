// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the marketplace. It implements checks
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RatingPolicy: A domain service that decides whether a customer's
//     review is complete and admissible for a given order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
