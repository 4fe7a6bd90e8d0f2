package lazy

import "github.com/charmingruby/lazyseq/option"

// Fold consumes the remaining items of s, folding them into the accumulator
// from the left. The accumulator type is independent of the element type,
// which is why Fold is a free function.
//
// Fold never returns when s is unbounded.
//
// Example:
//
//	sum := lazy.Fold(lazy.Range(1, 4), 0, func(acc, v int) int { return acc + v })
func Fold[T any, A any](s *Sequence[T], initial A, fn func(A, T) A) A {
	if fn == nil {
		panic("lazy: nil reducer")
	}
	acc := initial
	for {
		item, ok := s.NextOne().Get()
		if !ok {
			return acc
		}
		acc = fn(acc, item)
	}
}

// Reduce consumes the remaining items of s, seeding the accumulator with the
// first one and folding from the second on. An already-exhausted sequence
// reduces to None; exhaustion is absence, never an error.
//
// Example:
//
//	total := lazy.Fixed(1, 2, 3, 4).Reduce(func(a, b int) int { return a + b })
//	total.GetOrElse(0) // 10
func (s *Sequence[T]) Reduce(fn func(T, T) T) option.Option[T] {
	if fn == nil {
		panic("lazy: nil reducer")
	}
	seed, ok := s.NextOne().Get()
	if !ok {
		return option.None[T]()
	}
	return option.Some(Fold(s, seed, fn))
}
