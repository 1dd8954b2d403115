package rbcmp

import (
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func TestOrdered(t *testing.T) {
	less, eq, more := 1, 2, 2

	intCmp := Ordered[int]()
	assert.Negative(t, intCmp(&less, &eq))
	assert.Zero(t, intCmp(&eq, &more))
	assert.Positive(t, intCmp(&more, &less))

	strCmp := Ordered[string]()
	a, b := "apple", "banana"
	assert.Negative(t, strCmp(&a, &b))
}

func TestFromGods(t *testing.T) {
	c := FromGods[int](utils.IntComparator)
	a, b := 3, 5
	assert.Negative(t, c(&a, &b))
	assert.Zero(t, c(&a, &a))
}

func TestToGods(t *testing.T) {
	c := ToGods(Ordered[int]())
	assert.Negative(t, c(3, 5))
	assert.Positive(t, c(5, 3))
	assert.Zero(t, c(3, 3))
}
