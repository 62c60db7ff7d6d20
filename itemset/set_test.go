package itemset_test

import (
	"testing"

	"github.com/itemlift/itemlift/itemset"
	"github.com/stretchr/testify/assert"
)

// TestSet_NewCollapsesDuplicates verifies that duplicate items collapse
// into one member.
func TestSet_NewCollapsesDuplicates(t *testing.T) {
	s := itemset.New("a", "b", "a", "a")
	assert.Equal(t, 2, s.Len(), "duplicates must collapse")
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
}

// TestSet_EqualIsOrderFree verifies equality ignores construction order.
func TestSet_EqualIsOrderFree(t *testing.T) {
	assert.True(t, itemset.New("a", "b", "c").Equal(itemset.New("c", "a", "b")))
	assert.False(t, itemset.New("a", "b").Equal(itemset.New("a", "b", "c")))
	assert.False(t, itemset.New("a", "b").Equal(itemset.New("a", "x")))
}

// TestSet_SubsetRelations exercises SubsetOf / ProperSubsetOf / Disjoint.
func TestSet_SubsetRelations(t *testing.T) {
	ab := itemset.New("a", "b")
	abc := itemset.New("a", "b", "c")

	assert.True(t, ab.SubsetOf(abc))
	assert.True(t, ab.ProperSubsetOf(abc))
	assert.True(t, abc.SubsetOf(abc), "a set is a subset of itself")
	assert.False(t, abc.ProperSubsetOf(abc), "but not a proper one")
	assert.True(t, itemset.New().SubsetOf(ab), "empty set is a subset of everything")
	assert.False(t, abc.SubsetOf(ab))

	assert.True(t, ab.Disjoint(itemset.New("x", "y")))
	assert.False(t, ab.Disjoint(itemset.New("b", "x")))
}

// TestSet_UnionMinusLeaveInputsIntact verifies Union/Minus allocate fresh
// sets and never mutate their operands.
func TestSet_UnionMinusLeaveInputsIntact(t *testing.T) {
	ab := itemset.New("a", "b")
	bc := itemset.New("b", "c")

	u := ab.Union(bc)
	assert.True(t, u.Equal(itemset.New("a", "b", "c")))

	d := u.Minus(ab)
	assert.True(t, d.Equal(itemset.New("c")))

	assert.Equal(t, 2, ab.Len(), "Union must not mutate its receiver")
	assert.Equal(t, 2, bc.Len(), "Union must not mutate its argument")
	assert.Equal(t, 3, u.Len(), "Minus must not mutate its receiver")
}

// TestSet_CloneIsIndependent verifies mutations on a clone do not leak back.
func TestSet_CloneIsIndependent(t *testing.T) {
	orig := itemset.New("a", "b")
	cl := orig.Clone()
	cl.Add("c")

	assert.Equal(t, 2, orig.Len())
	assert.Equal(t, 3, cl.Len())
}

// TestSet_ItemsSortedAndKeyCanonical verifies the determinism anchors:
// Items() ascending and Key() independent of insertion order.
func TestSet_ItemsSortedAndKeyCanonical(t *testing.T) {
	s1 := itemset.New("milk", "beer", "bread")
	s2 := itemset.New("bread", "milk", "beer")

	assert.Equal(t, []string{"beer", "bread", "milk"}, s1.Items())
	assert.Equal(t, s1.Key(), s2.Key(), "equal sets must share one canonical key")
	assert.NotEqual(t, s1.Key(), itemset.New("beer", "bread").Key())
}

// TestSet_String verifies the brace rendering.
func TestSet_String(t *testing.T) {
	assert.Equal(t, "{a, b, c}", itemset.New("c", "a", "b").String())
	assert.Equal(t, "{}", itemset.New().String())
}
