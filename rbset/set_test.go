package rbset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestSet_InsertContainsRemove(t *testing.T) {
	s := New[int](intCmp)
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Insert(5))
	assert.True(t, s.Insert(1))
	assert.True(t, s.Insert(9))
	assert.False(t, s.Insert(5), "duplicate insert should report no change")
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(42))

	assert.Equal(t, []int{1, 5, 9}, s.Values())

	min, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, 1, min)

	max, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, 9, max)

	assert.True(t, s.Remove(5))
	assert.False(t, s.Remove(5))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 9}, s.Values())
}

func TestSet_Empty(t *testing.T) {
	s := New[int](intCmp)
	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
	assert.Empty(t, s.Values())
	assert.False(t, s.Remove(1))
}

func TestSet_AscendingInsertAndRemoveAll(t *testing.T) {
	s := New[int](intCmp)
	for i := 0; i < 200; i++ {
		require.True(t, s.Insert(i))
	}
	assert.Equal(t, 200, s.Len())
	for i := 0; i < 200; i++ {
		require.True(t, s.Remove(i))
	}
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
}
