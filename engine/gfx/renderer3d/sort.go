package renderer3d

import (
	"sort"

	"github.com/hollowmoss/briar/engine/core"
)

// visibleNode is one culling survivor plus its camera distance.
type visibleNode struct {
	node     *RenderNode
	distance float32
}

// sortVisible orders the visible set to minimize pipeline switches while
// keeping near-to-far order within each pipeline. Pipelines are ranked by
// first encounter, so each pipeline's nodes end up contiguous and the
// relative order of the pipeline groups follows the input. Cross-pipeline
// order beyond that is unspecified.
func sortVisible(items []visibleNode) {
	rank := make(map[core.Pipeline]int, 4)
	for _, it := range items {
		p := it.node.pipeline()
		if _, ok := rank[p]; !ok {
			rank[p] = len(rank)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := rank[items[i].node.pipeline()], rank[items[j].node.pipeline()]
		if ri != rj {
			return ri < rj
		}
		return items[i].distance < items[j].distance
	})
}
