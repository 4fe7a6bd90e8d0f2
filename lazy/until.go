package lazy

// untilState carries the truncation latch separately from the cloned source:
// the latch belongs to the derived sequence, not to whatever state the source
// threads through its own generator.
type untilState[T any] struct {
	src  *Sequence[T]
	stop func(T) bool
	done bool
}

func (u *untilState[T]) DeepClone() any {
	return &untilState[T]{src: u.src.clone(), stop: u.stop, done: u.done}
}

// Until derives a sequence that ends immediately before the first item
// satisfying stop. The boundary item itself is dropped, not emitted. If stop
// never holds, the derived sequence exhausts exactly where the source does.
//
// Example:
//
//	lazy.From(1).Until(func(v int) bool { return v > 5 }).All() // [1 2 3 4 5]
func (s *Sequence[T]) Until(stop func(T) bool) *Sequence[T] {
	if stop == nil {
		panic("lazy: nil condition")
	}
	gen := func(state any) (any, []T) {
		st := state.(*untilState[T])
		if st.done {
			return state, nil
		}
		batch := st.src.step()
		prefix := batch
		for i, item := range batch {
			if st.stop(item) {
				st.done = true
				prefix = batch[:i]
				break
			}
		}
		return state, prefix
	}
	return &Sequence[T]{
		gen:   gen,
		state: &untilState[T]{src: s.clone(), stop: stop},
	}
}
