package lazy

import "golang.org/x/exp/constraints"

// Number constrains the cursor types accepted by the numeric range
// constructors.
type Number interface {
	constraints.Integer | constraints.Float
}

// New builds a Sequence from a generator and its initial state. The generator
// receives the state explicitly and returns the updated state alongside the
// produced batch, keeping each step referentially transparent.
//
// The state is deep-copied whenever a combinator derives a new sequence; state
// types with unexported fields should implement Cloner so the copy can reach
// them.
//
// Example:
//
//	type fib struct{ a, b int }
//	seq := lazy.New(func(s fib) (fib, []int) {
//		return fib{s.b, s.a + s.b}, []int{s.a}
//	}, fib{0, 1})
func New[T any, S any](gen Generator[T, S], initial S) *Sequence[T] {
	if gen == nil {
		panic("lazy: nil generator")
	}
	erased := func(state any) (any, []T) {
		current, _ := state.(S)
		next, items := gen(current)
		return next, items
	}
	return &Sequence[T]{gen: erased, state: initial}
}

// Range yields min, min+1, ... up to and including max.
func Range[N Number](min, max N) *Sequence[N] {
	return RangeStep(min, max, 1)
}

// RangeStep yields min, min+step, min+2*step, ... and exhausts once the cursor
// passes max: above it for a positive step, below it for a negative one. A
// zero step would never terminate and panics as misuse. The cursor is emitted
// before it advances.
func RangeStep[N Number](min, max, step N) *Sequence[N] {
	if step == 0 {
		panic("lazy: zero range step")
	}
	return New(func(cursor N) (N, []N) {
		if step > 0 && cursor > max || step < 0 && cursor < max {
			return cursor, nil
		}
		return cursor + step, []N{cursor}
	}, min)
}

// From yields min, min+1, ... without an upper bound.
func From[N Number](min N) *Sequence[N] {
	return Iterate(min, func(cursor N) N { return cursor + 1 })
}

// Iterate yields start, next(start), next(next(start)), ... without bound,
// supporting non-arithmetic progressions. Each cursor value is emitted before
// next advances it.
//
// Example:
//
//	powers := lazy.Iterate(1, func(v int) int { return v * 2 })
//	powers.Next(4) // [1 2 4 8]
func Iterate[T any](start T, next func(T) T) *Sequence[T] {
	if next == nil {
		panic("lazy: nil step function")
	}
	return New(func(cursor T) (T, []T) {
		return next(cursor), []T{cursor}
	}, start)
}

// Fixed wraps a finite, pre-known list of items. The items are pre-loaded into
// the buffer (copied, so the sequence shares no backing array with the caller)
// and the generator is a no-op that immediately signals exhaustion; IsDone
// still reports false until the buffer drains and the generator is consulted.
func Fixed[T any](items ...T) *Sequence[T] {
	buffer := make([]T, len(items))
	copy(buffer, items)
	return &Sequence[T]{
		gen:    func(state any) (any, []T) { return state, nil },
		buffer: buffer,
	}
}
