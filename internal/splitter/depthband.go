package splitter

import "github.com/shopspring/decimal"

const numBins = 10

// AssignDepthBands groups nodes by Seq and rewrites SubSeq within each group
// to a depth band derived from MaxZ (§4.6 step 4). The source prose is
// terse about the exact bin-merge traversal; this is our reading of it: ten
// uniform bins between the group's min and max MaxZ (inverted, since
// cutting Z grows more negative with depth), non-empty bins kept in order,
// and any bin holding exactly one node merged into its preceding band
// (two solitary bins in a row both land in that one band). A group whose
// clustering collapses to a single band is left with its original SubSeq.
func AssignDepthBands(nodes []Node) {
	bySeq := make(map[int][]int)
	for i, n := range nodes {
		bySeq[n.Seq] = append(bySeq[n.Seq], i)
	}
	for _, idxs := range bySeq {
		assignGroup(nodes, idxs)
	}
}

func assignGroup(nodes []Node, idxs []int) {
	if len(idxs) == 0 {
		return
	}
	minZ, maxZ := nodes[idxs[0]].MaxZ, nodes[idxs[0]].MaxZ
	for _, i := range idxs {
		z := nodes[i].MaxZ
		if z.LessThan(minZ) {
			minZ = z
		}
		if z.GreaterThan(maxZ) {
			maxZ = z
		}
	}
	if minZ.Equal(maxZ) {
		return
	}
	span := maxZ.Sub(minZ)

	binOf := func(z decimal.Decimal) int {
		frac := maxZ.Sub(z).Div(span)
		b := int(frac.Mul(decimal.NewFromInt(numBins)).IntPart())
		if b >= numBins {
			b = numBins - 1
		}
		if b < 0 {
			b = 0
		}
		return b
	}

	counts := make([]int, numBins)
	nodeBin := make([]int, len(idxs))
	for k, i := range idxs {
		b := binOf(nodes[i].MaxZ)
		nodeBin[k] = b
		counts[b]++
	}

	var nonEmpty []int
	for b := 0; b < numBins; b++ {
		if counts[b] > 0 {
			nonEmpty = append(nonEmpty, b)
		}
	}

	bandOf := make(map[int]int, len(nonEmpty))
	band := -1
	for _, b := range nonEmpty {
		solitary := counts[b] == 1
		if solitary && band >= 0 {
			bandOf[b] = band
			continue
		}
		band++
		bandOf[b] = band
	}

	if band+1 <= 1 {
		return
	}
	for k, i := range idxs {
		nodes[i].SubSeq = bandOf[nodeBin[k]]
	}
}
