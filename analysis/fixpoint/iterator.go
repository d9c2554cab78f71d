package fixpoint

import (
	log "github.com/sirupsen/logrus"

	"github.com/fixpoint-dk/absint/analysis/lattice"
	"github.com/fixpoint-dk/absint/utils/graph"
)

// Transfer supplies the abstract semantics of an analysis: a node transfer
// function and an edge transformer. The solver never inspects nodes itself;
// their meaning is entirely the client's.
type Transfer[N comparable, D lattice.AbstractDomain[D]] interface {
	// AnalyzeNode applies the node's transfer function, mutating the given
	// state from the node's entry state to its exit state.
	AnalyzeNode(node N, state D)

	// AnalyzeEdge transforms the exit state of src as it flows along the
	// edge to dst, e.g. for branch-condition refinement. The given state is
	// owned by the callee and may be returned (possibly mutated) or
	// replaced.
	AnalyzeEdge(src, dst N, exitAtSrc D) D
}

// TransferFuncs adapts plain functions to the Transfer interface. A nil Edge
// is the identity transformer.
type TransferFuncs[N comparable, D lattice.AbstractDomain[D]] struct {
	Node func(node N, state D)
	Edge func(src, dst N, exitAtSrc D) D
}

func (t TransferFuncs[N, D]) AnalyzeNode(node N, state D) {
	t.Node(node, state)
}

func (t TransferFuncs[N, D]) AnalyzeEdge(src, dst N, exitAtSrc D) D {
	if t.Edge == nil {
		return exitAtSrc
	}
	return t.Edge(src, dst, exitAtSrc)
}

// MonotonicFixpointIterator computes the least fixpoint of a monotone
// transfer function over an abstract domain D, for the subgraph reachable
// from a root node. The graph is described purely structurally through
// successor and predecessor accessors, so a backward analysis is obtained by
// rooting the solver at the exit node and passing the accessors in swapped
// order.
//
// After Run, the solver holds an entry and an exit state per reachable node,
// satisfying
//
//	entry(n) = ⊔ { AnalyzeEdge(p, n, exit(p)) : p ∈ preds(n) }   (⊔ seed at the root)
//	exit(n)  = AnalyzeNode(n, entry(n))
//
// Iteration follows the weak topological ordering of the graph, widening at
// component heads, which guarantees termination even for domains of infinite
// height — provided the transfer function is monotone and the domain's
// widening stabilizes ascending chains. Neither is checked at runtime.
//
// The solver is single-threaded; a Run call is CPU-bound and returns only at
// the fixpoint. State accessors hand out copies, so results can be consumed
// freely after Run returns.
type MonotonicFixpointIterator[N comparable, D lattice.AbstractDomain[D]] struct {
	root     N
	succ     graph.Graph[N]
	preds    func(N) []N
	bottom   func() D
	transfer Transfer[N, D]

	wto   *WeakTopologicalOrder[N]
	seed  D
	entry map[N]D
	exit  map[N]D
}

// New constructs a solver over the graph described by the accessor pair,
// rooted at root. The bottom factory produces the ⊥ element states are
// initialized to; transfer supplies the abstract semantics. The graph is
// borrowed: it must not change between construction and the last Run.
func New[N comparable, D lattice.AbstractDomain[D]](
	root N,
	succs func(N) []N,
	preds func(N) []N,
	bottom func() D,
	transfer Transfer[N, D],
) *MonotonicFixpointIterator[N, D] {
	return &MonotonicFixpointIterator[N, D]{
		root:     root,
		succ:     graph.OfHashable(succs),
		preds:    preds,
		bottom:   bottom,
		transfer: transfer,
	}
}

// Run iterates to the least fixpoint. The root's entry state is seeded with
// ⊥ ⊔ seed. Running again replaces all prior results.
func (fp *MonotonicFixpointIterator[N, D]) Run(seed D) {
	fp.entry = map[N]D{}
	fp.exit = map[N]D{}
	fp.seed = seed.Copy()
	if fp.wto == nil {
		fp.wto = BuildWTO(fp.succ, fp.root)
		log.Debugf("weak topological ordering: %s", fp.wto)
	}

	for _, el := range fp.wto.Elements {
		fp.analyzeElement(el)
	}
}

// WTO exposes the weak topological ordering the solver iterates over.
// Available after the first Run.
func (fp *MonotonicFixpointIterator[N, D]) WTO() *WeakTopologicalOrder[N] {
	return fp.wto
}

// EntryStateAt returns a copy of the entry state computed for a node.
// Nodes unknown to the solver are unreachable and report ⊥.
func (fp *MonotonicFixpointIterator[N, D]) EntryStateAt(n N) D {
	if state, found := fp.entry[n]; found {
		return state.Copy()
	}
	return fp.bottom()
}

// ExitStateAt returns a copy of the exit state computed for a node.
// Nodes unknown to the solver are unreachable and report ⊥.
func (fp *MonotonicFixpointIterator[N, D]) ExitStateAt(n N) D {
	if state, found := fp.exit[n]; found {
		return state.Copy()
	}
	return fp.bottom()
}

// joinPredecessors recomputes a node's entry state: the join of the
// edge-transformed exit states of its predecessors, plus the seed at the
// root. Predecessors whose exit state is still ⊥ contribute nothing and are
// not handed to the edge transformer.
func (fp *MonotonicFixpointIterator[N, D]) joinPredecessors(n N) D {
	state := fp.bottom()
	if n == fp.root {
		state.JoinWith(fp.seed)
	}
	for _, p := range fp.preds(n) {
		pexit, found := fp.exit[p]
		if !found || pexit.IsBottom() {
			continue
		}
		state.JoinWith(fp.transfer.AnalyzeEdge(p, n, pexit.Copy()))
	}
	return state
}

// analyzeVertex recomputes the entry and exit states of a single node. At a
// component head on re-entry, the new entry is combined with the previous
// one by widening.
func (fp *MonotonicFixpointIterator[N, D]) analyzeVertex(n N, widen bool) {
	newEntry := fp.joinPredecessors(n)
	if widen {
		current := fp.entry[n]
		current.WidenWith(newEntry)
		fp.entry[n] = current
	} else {
		fp.entry[n] = newEntry
	}

	exit := fp.entry[n].Copy()
	fp.transfer.AnalyzeNode(n, exit)
	fp.exit[n] = exit
}

func (fp *MonotonicFixpointIterator[N, D]) analyzeElement(el WTOElement[N]) {
	switch el := el.(type) {
	case WTOVertex[N]:
		fp.analyzeVertex(el.Node, false)
	case *WTOComponent[N]:
		fp.analyzeComponent(el)
	}
}

// analyzeComponent iterates a component until the head's entry state
// stabilizes. Widening is applied at the head from the second pass on, so
// the head's entry states form an ascending, finitely stabilizing chain.
func (fp *MonotonicFixpointIterator[N, D]) analyzeComponent(c *WTOComponent[N]) {
	for pass := 1; ; pass++ {
		fp.analyzeVertex(c.Head, pass > 1)
		for _, el := range c.Elements {
			fp.analyzeElement(el)
		}

		if fp.joinPredecessors(c.Head).Leq(fp.entry[c.Head]) {
			log.Debugf("component %s stabilized after %d pass(es)", nodeString(c.Head), pass)
			return
		}
	}
}
