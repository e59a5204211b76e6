package blocklist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/binghan1227/bmssp/blocklist"
	"github.com/binghan1227/bmssp/trace"
)

// BlockListSuite groups tests against blocklist.BlockList.
type BlockListSuite struct {
	suite.Suite
}

func (s *BlockListSuite) TestBasicInsertPullsSmallest() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.Insert(1, 10.0)
	bl.Insert(2, 20.0)
	bl.Insert(3, 5.0)

	out, _ := bl.Pull()
	require.Contains(s.T(), out, 3, "smallest-keyed vertex must be in the first pull")
}

// TestDecreaseKeyOnly: a worse re-insert is ignored, a better one wins.
func (s *BlockListSuite) TestDecreaseKeyOnly() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.Insert(1, 50.0)
	bl.Insert(1, 30.0) // improves
	bl.Insert(1, 40.0) // worse, ignored

	out, _ := bl.Pull()
	require.Equal(s.T(), []int{1}, out)
	require.True(s.T(), bl.IsEmpty())
}

func (s *BlockListSuite) TestInsertAtOrPastBoundIsNoop() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.Insert(1, 100.0) // == bGlobal
	bl.Insert(2, 150.0) // > bGlobal
	require.True(s.T(), bl.IsEmpty())
}

func (s *BlockListSuite) TestBatchPrependSmall() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.Insert(10, 50.0)

	bl.BatchPrepend([]blocklist.Element{
		{Vertex: 1, Key: 5.0},
		{Vertex: 2, Key: 3.0},
		{Vertex: 3, Key: 7.0},
	})

	out, _ := bl.Pull()
	require.Contains(s.T(), out, 2, "smallest prepended vertex surfaces first")
}

// TestBatchPrependLarge mirrors scenario 6: 20 prepended elements against
// M=5 forces buildD0Blocks to recurse, and Pull must still cap at M.
func (s *BlockListSuite) TestBatchPrependLarge() {
	bl := blocklist.New(5, 100.0, trace.Noop{})

	elems := make([]blocklist.Element, 20)
	for i := range elems {
		elems[i] = blocklist.Element{Vertex: i, Key: float64(i)}
	}
	bl.BatchPrepend(elems)

	out, _ := bl.Pull()
	require.LessOrEqual(s.T(), len(out), 5)
	for _, v := range out {
		require.Less(s.T(), v, 5, "pulled vertices must be among the smallest-keyed")
	}
}

func (s *BlockListSuite) TestBatchPrependDeduplicatesToSmallest() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.BatchPrepend([]blocklist.Element{
		{Vertex: 1, Key: 10.0},
		{Vertex: 1, Key: 5.0},
		{Vertex: 1, Key: 15.0},
		{Vertex: 2, Key: 20.0},
	})

	out, _ := bl.Pull()
	require.ElementsMatch(s.T(), []int{1, 2}, out)
}

func (s *BlockListSuite) TestBatchPrependOverwritesWorseInsert() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.Insert(1, 50.0)
	bl.Insert(2, 60.0)

	bl.BatchPrepend([]blocklist.Element{
		{Vertex: 1, Key: 10.0}, // improves vertex 1's existing D1 entry
		{Vertex: 3, Key: 15.0},
	})

	seen := drainAll(bl)
	require.ElementsMatch(s.T(), []int{1, 2, 3}, seen)
}

func (s *BlockListSuite) TestPullAllWhenUnderCapacityReturnsGlobalBound() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	bl.Insert(1, 10.0)
	bl.Insert(2, 20.0)

	out, bound := bl.Pull()
	require.ElementsMatch(s.T(), []int{1, 2}, out)
	require.Equal(s.T(), 100.0, bound)
	require.True(s.T(), bl.IsEmpty())
}

// TestPullPartialStaysBoundedBelowGlobal uses scenario 5's setup: M=3, ten
// elements inserted. A single pull must return at most M elements, leave
// the rest in the list, and report a bound strictly between 0 and the
// global bound.
func (s *BlockListSuite) TestPullPartialStaysBoundedBelowGlobal() {
	bl := blocklist.New(3, 100.0, trace.Noop{})
	for i := 0; i < 10; i++ {
		bl.Insert(i, float64(i)*10)
	}

	out, bound := bl.Pull()
	require.LessOrEqual(s.T(), len(out), 3)
	require.False(s.T(), bl.IsEmpty())
	require.Less(s.T(), bound, 100.0)
	require.Greater(s.T(), bound, 0.0)
}

func (s *BlockListSuite) TestPullBoundsNonDecreasingAcrossPulls() {
	bl := blocklist.New(3, 100.0, trace.Noop{})
	for i := 0; i < 10; i++ {
		bl.Insert(i, float64(i)*10)
	}

	_, bound1 := bl.Pull()
	_, bound2 := bl.Pull()
	require.LessOrEqual(s.T(), bound1, bound2)
}

// TestBlockSplitting drives enough inserts through a small M to force
// splitD1, then confirms every element still comes back out exactly once.
func (s *BlockListSuite) TestBlockSplitting() {
	bl := blocklist.New(4, 100.0, trace.Noop{})
	for i := 0; i < 10; i++ {
		bl.Insert(i, float64(10-i))
	}

	require.ElementsMatch(s.T(), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, drainAll(bl))
}

func (s *BlockListSuite) TestEmptyPullReturnsGlobalBound() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	require.True(s.T(), bl.IsEmpty())

	out, bound := bl.Pull()
	require.Empty(s.T(), out)
	require.Equal(s.T(), 100.0, bound)
}

func (s *BlockListSuite) TestMEqualsOne() {
	bl := blocklist.New(1, 100.0, trace.Noop{})
	for i := 0; i < 5; i++ {
		bl.Insert(i, float64(i))
	}

	out, _ := bl.Pull()
	require.LessOrEqual(s.T(), len(out), 1)
	require.ElementsMatch(s.T(), []int{0, 1, 2, 3, 4}, drainAll(bl, out...))
}

// TestOrderingAcrossBatches checks the separating-bound property:
// max(pulled batch i) <= bound(i) <= min(pulled batch i+1), by confirming
// that the maximum key of each successive pulled batch never decreases.
func (s *BlockListSuite) TestOrderingAcrossBatches() {
	bl := blocklist.New(5, 100.0, trace.Noop{})
	keys := map[int]float64{1: 50.0, 2: 10.0, 3: 30.0, 4: 5.0, 5: 80.0}
	for v, k := range keys {
		bl.Insert(v, k)
	}

	var batchMaxes []float64
	for !bl.IsEmpty() {
		out, _ := bl.Pull()
		if len(out) == 0 {
			break
		}
		max := -1.0
		for _, v := range out {
			if k := keys[v]; k > max {
				max = k
			}
		}
		batchMaxes = append(batchMaxes, max)
	}

	for i := 1; i < len(batchMaxes); i++ {
		require.LessOrEqual(s.T(), batchMaxes[i-1], batchMaxes[i])
	}
}

func (s *BlockListSuite) TestLargeScaleUnionClosure() {
	bl := blocklist.New(10, 1000.0, trace.Noop{})
	for i := 0; i < 100; i++ {
		bl.Insert(i, float64(100-i))
	}

	batch := make([]blocklist.Element, 50)
	for i := range batch {
		batch[i] = blocklist.Element{Vertex: 100 + i, Key: float64(i)}
	}
	bl.BatchPrepend(batch)

	require.Len(s.T(), drainAll(bl), 150)
}

// drainAll pulls until empty and returns every vertex seen, in pull order.
// Callers may seed it with vertices already pulled via extra varargs so a
// caller that pulled once before calling drainAll still gets a complete set.
func drainAll(bl *blocklist.BlockList, already ...int) []int {
	out := append([]int{}, already...)
	for !bl.IsEmpty() {
		batch, _ := bl.Pull()
		out = append(out, batch...)
	}

	return out
}

func TestBlockListSuite(t *testing.T) {
	suite.Run(t, new(BlockListSuite))
}
