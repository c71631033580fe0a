// Package order contains the Order aggregate root, its line items, and the
// status state machine that governs the order lifecycle across customers,
// merchants, riders, and platforms.
//
// An order moves unassigned -> assigned -> ready -> completed, with cancelled
// as a side branch. Line prices are frozen snapshots computed at creation:
// round_half_up(unit price x quantity x (1 - discount rate), 2) per line, and
// the order total is the sum of the already-rounded lines.
package order
