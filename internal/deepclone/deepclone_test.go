package deepclone_test

import (
	"testing"

	"github.com/charmingruby/lazyseq/internal/deepclone"
	"github.com/stretchr/testify/require"
)

type selfCloner struct {
	calls *int
}

func (s selfCloner) DeepClone() any {
	*s.calls++
	return selfCloner{calls: s.calls}
}

func TestValueNil(t *testing.T) {
	require.Nil(t, deepclone.Value(nil))
}

func TestValueScalar(t *testing.T) {
	require.Equal(t, 42, deepclone.Value(42))
	require.Equal(t, "x", deepclone.Value("x"))
}

func TestValueIsolatesNestedStructures(t *testing.T) {
	original := map[string][]int{"a": {1, 2}}
	copied := deepclone.Value(original).(map[string][]int)

	copied["a"][0] = 99
	require.Equal(t, []int{1, 2}, original["a"])
}

func TestValueIsolatesPointers(t *testing.T) {
	type box struct{ N int }
	original := &box{N: 1}
	copied := deepclone.Value(original).(*box)

	copied.N = 2
	require.Equal(t, 1, original.N)
}

func TestValueHandlesCycles(t *testing.T) {
	type node struct {
		Next *node
		ID   int
	}
	a := &node{ID: 1}
	b := &node{ID: 2, Next: a}
	a.Next = b

	copied := deepclone.Value(a).(*node)
	require.Equal(t, 1, copied.ID)
	require.Equal(t, 2, copied.Next.ID)
	require.Same(t, copied, copied.Next.Next, "cycle preserved in the copy")
	require.NotSame(t, a, copied)
}

func TestValuePrefersCloner(t *testing.T) {
	calls := 0
	deepclone.Value(selfCloner{calls: &calls})

	require.Equal(t, 1, calls)
}

func TestValueFallsBackForUncopyableValues(t *testing.T) {
	fn := func() {}
	out := deepclone.Value(fn)

	require.NotNil(t, out)
}
