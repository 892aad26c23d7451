package autodiff

// TopologicalOrder returns every node reachable from root, each after all of
// its operands. root is last.
//
// Nodes are deduplicated by pointer identity, never by data.
func TopologicalOrder(root *Value) []*Value {
	var topo []*Value
	visited := make(map[*Value]struct{})

	var build func(v *Value)
	build = func(v *Value) {
		if _, seen := visited[v]; seen {
			return
		}
		visited[v] = struct{}{}
		for _, operand := range v.operands {
			build(operand)
		}
		topo = append(topo, v)
	}
	build(root)

	return topo
}

// Backward computes d(root)/d(node) for every node reachable from root.
//
// Algorithm:
//  1. Build a topological order with a post-order DFS
//  2. Seed root.grad = 1
//  3. Run each node's backward rule in reverse order, so a node has received
//     every contribution from its consumers before it propagates further
//
// Gradients accumulate. Call ZeroGrad on the relevant nodes before running an
// independent pass. Two passes over overlapping graphs must not run
// concurrently.
func Backward(root *Value) {
	topo := TopologicalOrder(root)

	root.grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		topo[i].backward()
	}
}

// Backward runs Backward with v as the root.
func (v *Value) Backward() {
	Backward(v)
}

// ZeroGrad resets the gradient of every node in params.
func ZeroGrad(params []*Value) {
	for _, p := range params {
		p.grad = 0
	}
}
