package lazy_test

import (
	"testing"

	"github.com/charmingruby/lazyseq/lazy"
	"github.com/stretchr/testify/require"
)

func TestAppendOrdering(t *testing.T) {
	combined := lazy.Fixed(1, 2).Append(lazy.Fixed(3, 4))

	require.Equal(t, []int{1, 2, 3, 4}, combined.All())
}

func TestAppendMultiple(t *testing.T) {
	combined := lazy.Fixed(1).Append(lazy.Fixed(2, 3), lazy.Fixed[int](), lazy.Fixed(4))

	require.Equal(t, []int{1, 2, 3, 4}, combined.All())
}

func TestPrependOrdering(t *testing.T) {
	combined := lazy.Fixed(3, 4).Prepend(lazy.Fixed(1, 2))

	require.Equal(t, []int{1, 2, 3, 4}, combined.All())
}

func TestPrependMultiplePutsReceiverLast(t *testing.T) {
	a := lazy.Fixed("a")
	b := lazy.Fixed("b")
	c := lazy.Fixed("c")

	require.Equal(t, []string{"b", "c", "a"}, a.Prepend(b, c).All())
}

func TestAppendLeavesParticipantsUntouched(t *testing.T) {
	left := lazy.Fixed(1, 2)
	right := lazy.Fixed(3, 4)
	combined := left.Append(right)

	require.Equal(t, []int{1, 2, 3, 4}, combined.All())
	require.Equal(t, []int{1, 2}, left.All())
	require.Equal(t, []int{3, 4}, right.All())
}

func TestAppendStartsFromRemainingItems(t *testing.T) {
	left := lazy.Range(1, 4)
	left.Next(2)
	combined := left.Append(lazy.Fixed(9))

	require.Equal(t, []int{3, 4, 9}, combined.All())
}

func TestAppendWithNoArguments(t *testing.T) {
	require.Equal(t, []int{1, 2}, lazy.Fixed(1, 2).Append().All())
}

func TestAppendIsLazyAcrossBoundaries(t *testing.T) {
	generated := 0
	tail := lazy.From(100).Spy(func(int) { generated++ })
	combined := lazy.Fixed(1, 2).Append(tail)

	require.Equal(t, []int{1, 2}, combined.Next(2))
	require.Zero(t, generated, "the second source must not be pulled before the first drains")

	require.Equal(t, []int{100}, combined.Next(1))
	require.Equal(t, 1, generated)
}

func TestAppendUnboundedTail(t *testing.T) {
	combined := lazy.Fixed(1, 2).Append(lazy.From(3))

	require.Equal(t, []int{1, 2, 3, 4, 5}, combined.Next(5))
	require.False(t, combined.IsDone())
}
