// Package deepclone provides the structural state snapshot taken at every
// sequence derivation boundary.
package deepclone

import "github.com/barkimedes/go-deepcopy"

// Cloner is implemented by state values that snapshot themselves. Sequence
// values and composite combinator states hold unexported fields reflection
// cannot copy, so the interface takes precedence over the reflective fallback.
type Cloner interface {
	DeepClone() any
}

// Value returns a structural copy of v, isolated from the original so that
// mutating one side never reaches the other. The reflective copy tolerates
// cyclic structures. Values reflection cannot copy at all (func- or
// chan-bearing state) are returned as-is rather than failing derivation.
func Value(v any) any {
	if v == nil {
		return nil
	}
	if c, ok := v.(Cloner); ok {
		return c.DeepClone()
	}
	copied, err := deepcopy.Anything(v)
	if err != nil {
		return v
	}
	return copied
}
