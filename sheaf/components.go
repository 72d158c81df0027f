package sheaf

// Components groups the patch names into the connected components of the
// patch–gluing graph: two patches share a component iff a chain of gluing
// constraints links them. Patches untouched by any gluing form singleton
// components.
//
// A problem with several components decomposes into independent sub-problems
// whose obstructions add up, so the component count is a cheap structural
// summary of how coupled a cover is; the fit trace reports it.
//
// Components are discovered by BFS from each patch in declaration order, and
// names within a component appear in visit order, so the output is
// deterministic for a given problem.
//
// Time:   O(P + G), P = patches, G = gluings.
// Memory: O(P + G) for adjacency and visited flags.
func (p *Problem) Components() [][]string {
	index := make(map[string]int, len(p.Patches))
	for i := range p.Patches {
		index[p.Patches[i].Name] = i
	}

	adj := make([][]int, len(p.Patches))
	for _, glue := range p.Gluings {
		u, okU := index[glue.Patch1]
		v, okV := index[glue.Patch2]
		if !okU || !okV {
			continue // Validate reports dangling references; skip here
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	seen := make([]bool, len(p.Patches))
	var comps [][]string

	for start := range p.Patches {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, p.Patches[u].Name)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
