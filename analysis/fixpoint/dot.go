package fixpoint

import (
	"fmt"

	"github.com/fixpoint-dk/absint/utils/dot"
)

// DotGraph renders the analyzed graph with the computed entry and exit
// states as a dot graph. Nodes of the same outermost WTO component are
// clustered, making the widening points visible. Intended for debugging
// analyses; rendering to a file goes through utils/dot.
func (fp *MonotonicFixpointIterator[N, D]) DotGraph(title string) *dot.DotGraph {
	g := &dot.DotGraph{
		Name:    "AnalysisStates",
		Title:   title,
		Options: map[string]string{},
	}

	if fp.wto == nil {
		return g
	}

	dotNodes := map[N]*dot.DotNode{}
	makeNode := func(n N) *dot.DotNode {
		dn := &dot.DotNode{
			ID: nodeString(n),
			Attrs: dot.DotAttrs{
				"label": fmt.Sprintf("%s\nentry: %s\nexit: %s",
					nodeString(n), fp.EntryStateAt(n), fp.ExitStateAt(n)),
			},
		}
		dotNodes[n] = dn
		return dn
	}

	var walk func(els []WTOElement[N], cluster *dot.DotCluster)
	walk = func(els []WTOElement[N], cluster *dot.DotCluster) {
		for _, el := range els {
			switch el := el.(type) {
			case WTOVertex[N]:
				dn := makeNode(el.Node)
				if cluster != nil {
					cluster.Nodes = append(cluster.Nodes, dn)
				} else {
					g.Nodes = append(g.Nodes, dn)
				}
			case *WTOComponent[N]:
				sub := dot.NewDotCluster(nodeString(el.Head))
				sub.Attrs["label"] = "loop: " + nodeString(el.Head)
				sub.Nodes = append(sub.Nodes, makeNode(el.Head))
				walk(el.Elements, sub)
				if cluster != nil {
					cluster.Clusters = append(cluster.Clusters, sub)
				} else {
					g.Clusters = append(g.Clusters, sub)
				}
			}
		}
	}
	walk(fp.wto.Elements, nil)

	for _, n := range fp.wto.ReachableNodes() {
		for _, succ := range fp.succ.Edges(n) {
			to, reachable := dotNodes[succ]
			if !reachable {
				continue
			}
			g.Edges = append(g.Edges, &dot.DotEdge{
				From:  dotNodes[n],
				To:    to,
				Attrs: dot.DotAttrs{},
			})
		}
	}

	return g
}

// Visualize renders the analyzed graph to a file in the given graphviz
// format (e.g. "svg", "png").
func (fp *MonotonicFixpointIterator[N, D]) Visualize(outfname, format string) error {
	return fp.DotGraph("analysis of " + nodeString(fp.root)).RenderFile(outfname, format)
}
