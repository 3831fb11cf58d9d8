// Wire codec: pack/unpack edge lists to flat int32 triples.
//
// The protocol is two messages on a fixed tag (0): a 1-int count, then a
// flat buffer of 3*count ints laid out [i, j, w, i, j, w, ...] in the
// sender's current sorted order. LocalCluster's channels do not drop or
// reorder values, so the count and payload are coalesced into one
// []int32 buffer (count first, payload after) rather than two channel
// sends — the framing a real two-message MPI exchange provides is
// preserved in the buffer layout, just not in the transport's plumbing.
package transport

import "github.com/katalvlaran/distmst/edge"

// EncodeEdges packs edges into a count-prefixed flat int32 buffer.
func EncodeEdges(edges []edge.Edge) []int32 {
	buf := make([]int32, 1+3*len(edges))
	buf[0] = int32(len(edges))
	for k, e := range edges {
		buf[1+3*k] = int32(e.I)
		buf[1+3*k+1] = int32(e.J)
		buf[1+3*k+2] = int32(e.W)
	}

	return buf
}

// DecodeEdges unpacks a count-prefixed flat int32 buffer produced by
// EncodeEdges back into edges, preserving wire order.
func DecodeEdges(buf []int32) []edge.Edge {
	if len(buf) == 0 {
		return nil
	}
	count := int(buf[0])
	edges := make([]edge.Edge, 0, count)
	for k := 0; k < count; k++ {
		base := 1 + 3*k
		edges = append(edges, edge.Edge{
			I: int(buf[base]),
			J: int(buf[base+1]),
			W: int(buf[base+2]),
		})
	}

	return edges
}
