package coupling

// Accumulate folds one transition's changed-file sequence into the graph.
// For each index i, the targets are the tail files[i:] with every occurrence
// of files[i] dropped; duplicates of other files are kept and compound the
// weight. The pairing is directed by listing order: for i < j only the edge
// files[i] → files[j] is incremented in this transition. The reverse edge
// only grows when another transition lists the pair the other way around,
// so the resulting matrix is not symmetric. That asymmetry mirrors the diff
// engine's path ordering and is part of the output contract; do not sort or
// symmetrize here.
func Accumulate(g *Graph, files []string) {
	for i, source := range files {
		tail := files[i:]

		targets := make([]string, 0, len(tail))
		for _, target := range tail {
			if target != source {
				targets = append(targets, target)
			}
		}

		g.Add(source, targets)
	}
}
