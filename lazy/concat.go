package lazy

// concatState is the composite generator state for Append and Prepend: the
// ordered list of cloned sources still waiting to be drained.
type concatState[T any] struct {
	pending []*Sequence[T]
}

func (c *concatState[T]) DeepClone() any {
	cloned := make([]*Sequence[T], len(c.pending))
	for i, src := range c.pending {
		cloned[i] = src.clone()
	}
	return &concatState[T]{pending: cloned}
}

func concat[T any](sources []*Sequence[T]) *Sequence[T] {
	st := &concatState[T]{pending: make([]*Sequence[T], len(sources))}
	for i, src := range sources {
		st.pending[i] = src.clone()
	}
	gen := func(state any) (any, []T) {
		cs := state.(*concatState[T])
		for len(cs.pending) > 0 {
			batch := cs.pending[0].step()
			if len(batch) > 0 {
				return state, batch
			}
			// head exhausted, advance
			cs.pending = cs.pending[1:]
		}
		return state, nil
	}
	return &Sequence[T]{gen: gen, state: st}
}

// Append derives a sequence yielding the remaining items of s followed by the
// remaining items of each of others, in argument order, without gaps. Every
// participant is cloned, so draining the result leaves s and others untouched.
//
// Example:
//
//	lazy.Fixed(1, 2).Append(lazy.Fixed(3, 4)).All() // [1 2 3 4]
func (s *Sequence[T]) Append(others ...*Sequence[T]) *Sequence[T] {
	sources := make([]*Sequence[T], 0, len(others)+1)
	sources = append(sources, s)
	sources = append(sources, others...)
	return concat(sources)
}

// Prepend derives a sequence yielding the others in argument order, then s:
// a.Prepend(b, c) produces b's items, then c's, then a's.
//
// Example:
//
//	lazy.Fixed(3, 4).Prepend(lazy.Fixed(1, 2)).All() // [1 2 3 4]
func (s *Sequence[T]) Prepend(others ...*Sequence[T]) *Sequence[T] {
	sources := make([]*Sequence[T], 0, len(others)+1)
	sources = append(sources, others...)
	sources = append(sources, s)
	return concat(sources)
}
