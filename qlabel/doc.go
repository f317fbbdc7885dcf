// Package qlabel defines the opaque, orderable identifier used to name a
// site in an interaction. A Label wraps any Go value (string, int, int64,
// or a fmt.Stringer) and exposes a canonical string form so that a set of
// Labels can be sorted into the stable index the rest of qanneal depends
// on — System normalizes the interaction's distinct labels into
// index_list by sorting on this canonical form, then builds the
// label↔index bijection from that order.
//
// Two Labels compare equal iff their canonical forms compare equal, which
// lets callers mix types (ints, strings, custom Stringers) in a single
// interaction, as long as no two distinct labels collide after
// canonicalization.
package qlabel
