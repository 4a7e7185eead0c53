package searcher

// Analytics counts the nodes visited by a traversal. Subtree results are
// combined with Add.
type Analytics struct {
	NodesEvaluated         int
	LeafNodesEvaluated     int
	InternalNodesEvaluated int
}

func leafAnalytics() Analytics {
	return Analytics{NodesEvaluated: 1, LeafNodesEvaluated: 1}
}

func internalAnalytics() Analytics {
	return Analytics{NodesEvaluated: 1, InternalNodesEvaluated: 1}
}

func (a *Analytics) Add(other Analytics) {
	a.NodesEvaluated += other.NodesEvaluated
	a.LeafNodesEvaluated += other.LeafNodesEvaluated
	a.InternalNodesEvaluated += other.InternalNodesEvaluated
}
