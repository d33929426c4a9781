// Package order contains the Order aggregate and its status state machine.
//
// An order is created by checkout in status active, bound to exactly one
// distribution hub, and mutated at most once: to delivered or canceled. Both
// are terminal. The aggregate enforces the transition rules in memory; the
// persistence adapter pairs them with a conditional status write so that
// concurrent transitions against the same order resolve to exactly one
// winner.
package order
