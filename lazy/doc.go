// Package lazy implements generator-backed lazy sequences with a small
// combinator algebra.
//
// A Sequence produces values on demand, one generator step at a time, and
// never computes more of itself than a consumer asked for. Sequences may be
// unbounded. Combinators (Map, Filter, Spy, Until, Append, Prepend) derive
// new sequences without consuming their sources: derivation deep-copies the
// source's position, so a derived sequence and its source advance
// independently.
//
// Example:
//
//	evens := lazy.From(1).
//		Filter(func(v int) bool { return v%2 == 0 }).
//		Until(func(v int) bool { return v > 10 })
//	fmt.Println(evens.All()) // [2 4 6 8 10]
//
// Exhaustion is never an error: Next returns a short (possibly empty) slice,
// NextOne returns None. All on an unbounded sequence never returns; bounding
// it first with Until or consuming it with Next is the caller's job.
package lazy
