package lazy

// Map derives a sequence that applies transform to every item of s. The
// transform may expand one item into zero, one or many output items (flat-map
// semantics). When a whole raw batch transforms to nothing, Map pulls the next
// batch instead of signaling exhaustion: only the source running dry ends the
// derived sequence. That policy is what lets a suppressing transform coexist
// with batched generators.
//
// Map is a free function because the output element type may differ from the
// input's; the type-preserving specializations Filter and Spy are methods.
//
// Example:
//
//	repeated := lazy.Map(lazy.Range(1, 3), func(v int) []int {
//		out := make([]int, v)
//		for i := range out {
//			out[i] = i + 1
//		}
//		return out
//	})
//	repeated.All() // [1 1 2 1 2 3]
func Map[T any, U any](s *Sequence[T], transform func(T) []U) *Sequence[U] {
	if transform == nil {
		panic("lazy: nil transform")
	}
	gen := func(state any) (any, []U) {
		src := state.(*Sequence[T])
		for {
			batch := src.step()
			if len(batch) == 0 {
				return state, nil
			}
			out := make([]U, 0, len(batch))
			for _, item := range batch {
				out = append(out, transform(item)...)
			}
			if len(out) > 0 {
				return state, out
			}
			// whole batch suppressed: keep pulling
		}
	}
	return &Sequence[U]{gen: gen, state: s.clone()}
}

// Filter derives a sequence keeping only the items satisfying predicate. It is
// a specialization of Map and inherits its keep-pulling policy, so a predicate
// rejecting an entire batch never truncates the sequence early.
func (s *Sequence[T]) Filter(predicate func(T) bool) *Sequence[T] {
	if predicate == nil {
		panic("lazy: nil predicate")
	}
	return Map(s, func(item T) []T {
		if predicate(item) {
			return []T{item}
		}
		return nil
	})
}

// Spy derives an identity sequence that invokes observe on every item as it is
// produced. Useful as a logging or debugging tap in the middle of a pipeline.
func (s *Sequence[T]) Spy(observe func(T)) *Sequence[T] {
	if observe == nil {
		panic("lazy: nil observer")
	}
	return Map(s, func(item T) []T {
		observe(item)
		return []T{item}
	})
}
