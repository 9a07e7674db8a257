// Package survival builds Kaplan-Meier product-limit curves from
// (time, status) observations.
//
// At each distinct event time t the survival probability multiplies by
// (1 − d/n), where d is the number of events at t and n the number
// still at risk just before t. Censored observations shrink the at-risk
// set without introducing a factor; a censored-only time still emits a
// curve point (with unchanged probability) so callers can mark it.
//
// Invariants: the curve starts at (0, 1) and the probability is
// monotonically non-increasing in time.
package survival
