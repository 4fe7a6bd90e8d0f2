package lazy

import (
	"github.com/charmingruby/lazyseq/internal/deepclone"
	"github.com/charmingruby/lazyseq/option"
)

// Cloner is implemented by state values that snapshot themselves. Derivation
// deep-copies state reflectively by default, which cannot reach unexported
// fields; state types carrying them should implement Cloner instead.
type Cloner interface {
	DeepClone() any
}

// Generator is the user-supplied step function driving a Sequence. It receives
// the current state, returns the state to use for the following step and the
// batch of items produced by this one. Returning an empty batch signals
// exhaustion; the generator is never called again afterwards, though the state
// it returned is still kept.
//
// Example:
//
//	naturals := lazy.New(func(n int) (int, []int) {
//		return n + 1, []int{n}
//	}, 0)
type Generator[T any, S any] func(state S) (next S, items []T)

// Sequence is a lazily-produced, possibly unbounded ordered series of values.
// It owns a generator, the state threaded through it, a FIFO buffer of
// produced-but-unconsumed items and a monotonic exhaustion flag.
//
// The state type is erased internally so that sequences over the same element
// type compose regardless of how each one was built; New restores the typed
// contract at the construction boundary.
type Sequence[T any] struct {
	gen    func(state any) (next any, items []T)
	state  any
	buffer []T
	done   bool
}

// IsDone reports whether the generator has signaled exhaustion. It is a pure
// query: it never triggers generation, so a sequence whose generator has not
// been consulted yet reports false even when no further items will come.
func (s *Sequence[T]) IsDone() bool {
	return s.done
}

// generate runs a single generator step. Produced items are appended to the
// buffer; an empty batch latches done and ends generation for good.
func (s *Sequence[T]) generate() {
	if s.done {
		return
	}
	next, items := s.gen(s.state)
	s.state = next
	if len(items) == 0 {
		s.done = true
		return
	}
	s.buffer = append(s.buffer, items...)
}

// Next returns up to n items in production order, consuming buffered items
// first and generating more only as needed. A short (possibly empty) result
// means the sequence is exhausted, which is not an error. A negative n is
// caller misuse and panics.
func (s *Sequence[T]) Next(n int) []T {
	if n < 0 {
		panic("lazy: Next called with a negative count")
	}
	out := make([]T, 0, n)
	for len(out) < n {
		if len(s.buffer) == 0 {
			if s.done {
				break
			}
			s.generate()
			continue
		}
		take := n - len(out)
		if take > len(s.buffer) {
			take = len(s.buffer)
		}
		out = append(out, s.buffer[:take]...)
		s.buffer = s.buffer[take:]
	}
	return out
}

// NextOne is the singular counterpart of Next: the next item, or None at
// exhaustion.
//
// Example:
//
//	if v, ok := seq.NextOne().Get(); ok {
//		fmt.Println(v)
//	}
func (s *Sequence[T]) NextOne() option.Option[T] {
	items := s.Next(1)
	if len(items) == 0 {
		return option.None[T]()
	}
	return option.Some(items[0])
}

// All drains the sequence and returns every remaining item in order.
//
// All never returns when called on an unbounded sequence; the library does not
// guard against that. Bound the sequence with Until, or consume it with Next.
func (s *Sequence[T]) All() []T {
	for !s.done {
		s.generate()
	}
	out := s.buffer
	s.buffer = nil
	if out == nil {
		return []T{}
	}
	return out
}

// clone snapshots the sequence's full position: generator reference, a deep
// copy of the state, the pending buffer and the exhaustion flag. Every
// combinator derives from a clone, which is what keeps a derived sequence's
// progress invisible to its source and siblings.
func (s *Sequence[T]) clone() *Sequence[T] {
	c := &Sequence[T]{
		gen:   s.gen,
		state: deepclone.Value(s.state),
		done:  s.done,
	}
	if len(s.buffer) > 0 {
		c.buffer = make([]T, len(s.buffer))
		copy(c.buffer, s.buffer)
	}
	return c
}

// DeepClone implements Cloner so a Sequence can itself serve as derivation
// state for another sequence, as the combinators arrange.
func (s *Sequence[T]) DeepClone() any {
	return s.clone()
}

// step yields the next raw batch: all pending buffered items if any, otherwise
// the output of one generator step. An empty batch means exhaustion.
func (s *Sequence[T]) step() []T {
	if len(s.buffer) == 0 && !s.done {
		s.generate()
	}
	batch := s.buffer
	s.buffer = nil
	return batch
}
