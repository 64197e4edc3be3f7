/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/wyse/core/geom"
)

// SolveSeq computes pixel sizes for a sequence of children set out one
// after another: given a target extent and per-child SizeRules, it fills
// out with one size per child such that the sizes plus (n-1) copies of
// the inter gap sum up to target exactly, whenever target is at least
// the sum of minimum sizes plus gaps.
//
// The solve runs three phases on integer pixels:
//
//  1. Grow: every child starts at its minimum; the slack up to the target
//     is distributed proportionally to each child's remaining headroom
//     (ideal - min), so no child grows past its ideal.
//  2. Stretch: surplus beyond the ideals goes to the children of the
//     most eager stretch tier present, split evenly within the tier.
//     StretchFixed children never receive surplus; if all children are
//     fixed, the surplus stays unassigned.
//  3. Shrink: if the target is below the sum of minimums, every child is
//     reduced below its minimum, proportionally to the minimum, with a
//     floor at zero. This is a defined degenerate case, not an error.
//
// Integer division remainders are assigned to the first children in
// index order. This tie-break is part of the contract: children have a
// meaningful left-to-right (or top-to-bottom) order and the resulting
// pixel placement is externally observable. For fixed inputs the output
// is identical across runs.
//
// SolveSeq panics if len(out) != len(rules); rules must hold exactly the
// per-child entries (no aggregate entry).
func SolveSeq(out []geom.Coord, rules []SizeRules, inter geom.Coord, target geom.Coord) {
	if len(out) != len(rules) {
		panic("layout: SolveSeq size mismatch between out and rules")
	}
	n := len(rules)
	if n == 0 {
		return
	}
	avail := target - geom.Coord(n-1)*inter
	var sumMin geom.Coord
	for _, r := range rules {
		sumMin += r.min
	}
	if avail < sumMin {
		shrinkBelowMin(out, rules, sumMin, avail)
		return
	}
	slack := growToIdeal(out, rules, avail-sumMin)
	if slack > 0 {
		stretchPastIdeal(out, rules, slack)
	}
}

// growToIdeal starts every entry at its minimum and distributes slack
// proportionally to headroom. Returns the surplus left once every entry
// has reached its ideal, or 0.
func growToIdeal(out []geom.Coord, rules []SizeRules, slack geom.Coord) geom.Coord {
	var headroom geom.Coord
	for i, r := range rules {
		out[i] = r.min
		headroom += r.ideal - r.min
	}
	if slack >= headroom {
		for i, r := range rules {
			out[i] = r.ideal
		}
		return slack - headroom
	}
	distributed := geom.Coord(0)
	for i, r := range rules {
		share := geom.Coord(int64(slack) * int64(r.ideal-r.min) / int64(headroom))
		out[i] += share
		distributed += share
	}
	// The remainder is smaller than the number of entries with nonzero
	// headroom, and each of those still sits below its ideal.
	for i, r := range rules {
		if distributed == slack {
			break
		}
		if out[i] < r.ideal {
			out[i]++
			distributed++
		}
	}
	return 0
}

// stretchPastIdeal hands all surplus to the most eager stretch tier
// present, split evenly within the tier, remainder to the first members.
func stretchPastIdeal(out []geom.Coord, rules []SizeRules, surplus geom.Coord) {
	tier := StretchFixed
	count := 0
	for _, r := range rules {
		if r.stretch > tier {
			tier = r.stretch
			count = 1
		} else if r.stretch == tier && tier > StretchFixed {
			count++
		}
	}
	if tier == StretchFixed {
		tracer().Debugf("no stretchable entry, %v of surplus unassigned", surplus)
		return
	}
	share := surplus / geom.Coord(count)
	rem := surplus % geom.Coord(count)
	for i, r := range rules {
		if r.stretch != tier {
			continue
		}
		out[i] += share
		if rem > 0 {
			out[i]++
			rem--
		}
	}
}

// shrinkBelowMin handles a target below the sum of minimums: every entry
// is cut proportionally to its minimum, floored at zero. The cut sizes
// sum to the available extent (clamped at zero).
func shrinkBelowMin(out []geom.Coord, rules []SizeRules, sumMin, avail geom.Coord) {
	if avail < 0 {
		avail = 0
	}
	if sumMin == 0 {
		for i := range out {
			out[i] = 0
		}
		return
	}
	deficit := sumMin - avail
	tracer().Debugf("target below sum of minimums, cutting %v", deficit)
	cut := geom.Coord(0)
	for i, r := range rules {
		c := geom.Coord(int64(deficit) * int64(r.min) / int64(sumMin))
		out[i] = r.min - c
		cut += c
	}
	// Remaining cuts go to the first entries with a nonzero size.
	for i := range out {
		if cut == deficit {
			break
		}
		if out[i] > 0 {
			out[i]--
			cut++
		}
	}
}

// innerGaps computes the effective gaps between consecutive entries of a
// sequence: per shared edge, the adjacent margins collapse with the
// container's inter gap to the maximum of the three. Returns one gap per
// edge (len(rules)-1 entries) and their sum.
func innerGaps(rules []SizeRules, inter geom.Coord) ([]geom.Coord, geom.Coord) {
	if len(rules) == 0 {
		return nil, 0
	}
	gaps := make([]geom.Coord, len(rules)-1)
	var total geom.Coord
	for i := range gaps {
		g := geom.Max(inter, geom.Max(geom.Coord(rules[i].mAfter), geom.Coord(rules[i+1].mBefore)))
		gaps[i] = g
		total += g
	}
	return gaps, total
}

// sumSeq folds a sequence of rules into aggregate rules the way a row
// reports them: sizes add, shared-edge margins collapse against the
// container's inter gap, the outer margins survive.
func sumSeq(rules []SizeRules, inter geom.Coord) SizeRules {
	if len(rules) == 0 {
		return Empty()
	}
	total := rules[0]
	for _, r := range rules[1:] {
		total = total.appendedWithGap(r, inter)
	}
	return total
}
