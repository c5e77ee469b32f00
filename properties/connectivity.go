// Package properties: traversal-based invariants — weak and strong
// connectivity, bipartiteness, and the connected-component split shared
// with the planarity heuristic.

package properties

import "github.com/mkadlec/grafy/core"

// undirectedAdjacency builds the undirected view of the graph: every edge,
// whatever its kind, contributes both directions. Multi-edges repeat; BFS
// visitation dedupes them naturally.
// Complexity: O(V + E).
func undirectedAdjacency(g *core.Graph) map[string][]string {
	adj := make(map[string][]string, g.NodeCount())
	for _, id := range g.NodeIDs() {
		adj[id] = nil
	}
	for _, e := range g.Edges() {
		adj[e.Source] = append(adj[e.Source], e.Target)
		if e.Source != e.Target {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}

	return adj
}

// bfsReach marks every node reachable from start in adj, writing into
// visited. Returns the number of newly visited nodes.
func bfsReach(adj map[string][]string, start string, visited map[string]bool) int {
	if visited[start] {
		return 0
	}
	visited[start] = true
	queue := []string{start}
	count := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			count++
			queue = append(queue, next)
		}
	}

	return count
}

// IsWeaklyConnected reports invariant c (weak): the undirected view is
// connected. The empty graph and single-node graph are connected.
// Complexity: O(V + E).
func (d *Detector) IsWeaklyConnected() bool {
	ids := d.g.NodeIDs()
	if len(ids) <= 1 {
		return true
	}

	adj := undirectedAdjacency(d.g)
	visited := make(map[string]bool, len(ids))

	return bfsReach(adj, ids[0], visited) == len(ids)
}

// IsStronglyConnected reports invariant c (strong): every node reaches
// every other following edge direction. For an undirected graph this
// coincides with weak connectivity. Directed graphs run a BFS over
// successor edges from every node.
// Complexity: O(V·(V + E)) directed, O(V + E) otherwise.
func (d *Detector) IsStronglyConnected() bool {
	if !d.g.IsDirected() {
		return d.IsWeaklyConnected()
	}

	ids := d.g.NodeIDs()
	if len(ids) <= 1 {
		return true
	}

	// Forward adjacency: directed edges follow direction, undirected edges
	// in a mixed graph stay traversable both ways.
	adj := make(map[string][]string, len(ids))
	for _, id := range ids {
		adj[id] = nil
	}
	for _, e := range d.g.Edges() {
		adj[e.Source] = append(adj[e.Source], e.Target)
		if e.Kind == core.Undirected && e.Source != e.Target {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}

	for _, start := range ids {
		visited := make(map[string]bool, len(ids))
		if bfsReach(adj, start, visited) != len(ids) {
			return false
		}
	}

	return true
}

// IsBipartite reports invariant j: the undirected view admits a proper
// 2-coloring. Each component is colored by BFS; a self-loop or any edge
// joining two same-colored nodes fails the check. The empty graph is
// bipartite.
// Complexity: O(V + E).
func (d *Detector) IsBipartite() bool {
	if d.g.HasSelfLoops() {
		return false
	}

	adj := undirectedAdjacency(d.g)
	color := make(map[string]int, d.g.NodeCount())
	for _, start := range d.g.NodeIDs() {
		if _, done := color[start]; done {
			continue
		}
		color[start] = 0
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if c, seen := color[next]; seen {
					if c == color[cur] {
						return false
					}
					continue
				}
				color[next] = 1 - color[cur]
				queue = append(queue, next)
			}
		}
	}

	return true
}

// components splits the node set into connected components of the
// undirected view, each listed in BFS discovery order.
// Complexity: O(V + E).
func (d *Detector) components() [][]string {
	adj := undirectedAdjacency(d.g)
	comp := make(map[string]int, d.g.NodeCount())
	var out [][]string
	for _, start := range d.g.NodeIDs() {
		if _, done := comp[start]; done {
			continue
		}
		idx := len(out)
		comp[start] = idx
		members := []string{start}
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if _, seen := comp[next]; seen {
					continue
				}
				comp[next] = idx
				members = append(members, next)
				queue = append(queue, next)
			}
		}
		out = append(out, members)
	}

	return out
}
