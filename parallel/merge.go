package parallel

import "github.com/katalvlaran/distmst/edge"

// mergeSorted performs the standard two-way stable merge of a and b,
// both already sorted under edge.Less.
func mergeSorted(a, b []edge.Edge) []edge.Edge {
	out := make([]edge.Edge, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && edge.Less(a[i], b[j])) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}

	return out
}

// foldMerge merges acc with each of lists in turn, left to right. It is
// used to accumulate a rank's held forest with every edge list it
// receives in a single hypercube step.
func foldMerge(acc []edge.Edge, lists ...[]edge.Edge) []edge.Edge {
	for _, l := range lists {
		acc = mergeSorted(acc, l)
	}

	return acc
}
