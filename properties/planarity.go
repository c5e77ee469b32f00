// Package properties: the planarity heuristic — a necessary-condition
// filter, not a full planarity test. See the package doc for the caveats.

package properties

// IsPlanar reports invariant f. The graph is decomposed into connected
// components; each component must pass every check:
//
//  1. fewer than 5 nodes — trivially planar, skip the rest;
//  2. no 5-node subset forming a K5;
//  3. no 6-node subset splitting 3+3 into a K3,3;
//  4. the edge bound e ≤ 3v−6.
//
// Checks 2 and 3 are combinatorial and run only when the graph's node
// count is within the configured planarity limit; past the limit the
// edge bound alone decides.
// Complexity: O(C(V,5) + C(V,6)) subset checks within the limit, O(V + E) past it.
func (d *Detector) IsPlanar() bool {
	subsetSearch := d.planarityLimit > 0 && d.g.NodeCount() <= d.planarityLimit

	for _, comp := range d.components() {
		n := len(comp)
		if n < 5 {
			continue
		}

		if subsetSearch {
			if d.containsK5(comp) {
				return false
			}
			if n >= 6 && d.containsK33(comp) {
				return false
			}
		}

		if d.componentEdgeCount(comp) > 3*n-6 {
			return false
		}
	}

	return true
}

// componentEdgeCount counts edges with both endpoints inside the
// component. Multi-edges and self-loops count individually.
func (d *Detector) componentEdgeCount(comp []string) int {
	member := make(map[string]struct{}, len(comp))
	for _, id := range comp {
		member[id] = struct{}{}
	}

	count := 0
	for _, e := range d.g.Edges() {
		if _, ok := member[e.Source]; !ok {
			continue
		}
		if _, ok := member[e.Target]; !ok {
			continue
		}
		count++
	}

	return count
}

// containsK5 reports whether any 5-node subset of comp is pairwise
// connected. Connection means any edge, either orientation.
func (d *Detector) containsK5(comp []string) bool {
	found := false
	forEachSubset(comp, 5, func(subset []string) bool {
		for i := 0; i < len(subset) && !found; i++ {
			for j := i + 1; j < len(subset); j++ {
				if !d.g.HasConnection(subset[i], subset[j]) {
					return true // next subset
				}
			}
		}
		found = true

		return false
	})

	return found
}

// containsK33 reports whether any 6-node subset of comp splits into two
// triples with every cross pair connected and no intra-triple edge.
func (d *Detector) containsK33(comp []string) bool {
	found := false
	forEachSubset(comp, 6, func(subset []string) bool {
		if d.hasBipartition33(subset) {
			found = true

			return false
		}

		return true
	})

	return found
}

// hasBipartition33 tries every 3+3 split of a 6-node subset. Fixing the
// first node in the left triple halves the symmetric splits: C(5,2)=10
// candidate partitions.
func (d *Detector) hasBipartition33(subset []string) bool {
	for i := 1; i < 5; i++ {
		for j := i + 1; j < 6; j++ {
			left := []string{subset[0], subset[i], subset[j]}
			right := make([]string, 0, 3)
			for k := 1; k < 6; k++ {
				if k != i && k != j {
					right = append(right, subset[k])
				}
			}
			if d.isK33Partition(left, right) {
				return true
			}
		}
	}

	return false
}

// isK33Partition checks a concrete 3+3 split: all nine cross pairs
// connected, no connection inside either triple.
func (d *Detector) isK33Partition(left, right []string) bool {
	for _, a := range left {
		for _, b := range right {
			if !d.g.HasConnection(a, b) {
				return false
			}
		}
	}
	for _, part := range [][]string{left, right} {
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				if d.g.HasConnection(part[i], part[j]) {
					return false
				}
			}
		}
	}

	return true
}

// forEachSubset enumerates the k-subsets of items iteratively and feeds
// each to visit; visit returning false stops the enumeration.
func forEachSubset(items []string, k int, visit func([]string) bool) {
	n := len(items)
	if k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	subset := make([]string, k)
	for {
		for i, pos := range idx {
			subset[i] = items[pos]
		}
		if !visit(subset) {
			return
		}

		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
