package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wyse/core/geom"
)

func solve(rules []SizeRules, inter, target geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(rules))
	SolveSeq(out, rules, inter, target)
	return out
}

func TestSolveSeqAtIdeal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{Variable(10, 50), Variable(10, 20), Variable(10, 30)}
	out := solve(rules, 0, 100)
	assert.Equal(t, []geom.Coord{50, 20, 30}, out)
	//
	// the inter gap is not part of the children's extents
	out = solve(rules, 5, 110)
	assert.Equal(t, []geom.Coord{50, 20, 30}, out)
}

func TestSolveSeqAtMinimum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{Variable(10, 50), Variable(10, 20), Variable(10, 30)}
	out := solve(rules, 0, 30)
	assert.Equal(t, []geom.Coord{10, 10, 10}, out)
}

func TestSolveSeqGrowProportional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	// Headroom is (40,10,20), total 70, slack 40. Proportional integer
	// shares are (22,5,11); the remainder of 2 goes to the first two
	// children.
	rules := []SizeRules{Variable(10, 50), Variable(10, 20), Variable(10, 30)}
	out := solve(rules, 0, 70)
	assert.Equal(t, []geom.Coord{33, 16, 21}, out)
	assert.Equal(t, geom.Coord(70), out[0]+out[1]+out[2])
	//
	// same extents when the target additionally covers two gaps of 1
	out = solve(rules, 1, 72)
	assert.Equal(t, []geom.Coord{33, 16, 21}, out)
}

func TestSolveSeqSumExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{Variable(3, 17), Variable(0, 11), Variable(5, 5), Variable(2, 23)}
	for target := geom.Coord(10); target <= 60; target++ {
		out := solve(rules, 0, target)
		var sum geom.Coord
		for i, w := range out {
			sum += w
			if target >= 10 { // at or above the sum of minimums
				assert.GreaterOrEqual(t, w, rules[i].Min())
			}
		}
		if target <= 56 { // up to the sum of ideals; no entry stretches
			assert.Equal(t, target, sum, "target %d", target)
		}
	}
}

func TestSolveSeqStretchTiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{
		Fixed(20),
		Fixed(20).WithStretch(StretchHigh),
		Fixed(20).WithStretch(StretchHigh),
	}
	// Surplus of 15 goes to the High tier only: 8 and 7.
	out := solve(rules, 0, 75)
	assert.Equal(t, []geom.Coord{20, 28, 27}, out)
}

func TestSolveSeqFillerBeatsLowerTiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{
		Fixed(10).WithStretch(StretchLow),
		Fixed(10).WithStretch(StretchFiller),
		Fixed(10).WithStretch(StretchHigh),
	}
	out := solve(rules, 0, 42)
	assert.Equal(t, []geom.Coord{10, 22, 10}, out)
}

func TestSolveSeqAllFixedLeavesSurplus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{Fixed(10), Fixed(10)}
	out := solve(rules, 0, 50)
	assert.Equal(t, []geom.Coord{10, 10}, out)
}

func TestSolveSeqShrink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{Fixed(10), Fixed(20), Fixed(30)}
	out := solve(rules, 0, 30)
	assert.Equal(t, []geom.Coord{5, 10, 15}, out)
	//
	// remainder cuts hit the first children
	rules = []SizeRules{Fixed(10), Fixed(10), Fixed(10)}
	out = solve(rules, 0, 25)
	assert.Equal(t, []geom.Coord{8, 8, 9}, out)
}

func TestSolveSeqShrinkDegenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	// target below the space the gaps alone would need
	rules := []SizeRules{Fixed(5), Fixed(5), Fixed(5)}
	out := solve(rules, 2, 1)
	assert.Equal(t, []geom.Coord{0, 0, 0}, out)
	//
	for _, w := range solve(rules, 2, 9) {
		assert.GreaterOrEqual(t, w, geom.Coord(0))
		assert.LessOrEqual(t, w, geom.Coord(5))
	}
}

func TestSolveSeqDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	// equal-weight entries force remainder tie-breaks
	rules := []SizeRules{Variable(0, 10), Variable(0, 10), Variable(0, 10)}
	first := solve(rules, 0, 17)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, solve(rules, 0, 17))
	}
	assert.Equal(t, []geom.Coord{6, 6, 5}, first)
}

func TestSolveSeqMonotoneInIdeal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	rules := []SizeRules{Variable(10, 50), Variable(10, 20), Variable(10, 30)}
	before := solve(rules, 0, 70)[1]
	rules[1] = Variable(10, 30)
	after := solve(rules, 0, 70)[1]
	assert.GreaterOrEqual(t, after, before)
}

func TestSolveSeqSizeMismatchPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wyse.layout")
	defer teardown()
	//
	assert.Panics(t, func() {
		SolveSeq(make([]geom.Coord, 2), make([]SizeRules, 3), 0, 10)
	})
}
