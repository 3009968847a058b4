package workflow

import "github.com/flowrun-io/flowrun/pkg/models"

// navigator answers "which node comes next" questions against a workflow's
// edge set. It holds no mutable state.
type navigator struct {
	nodes   map[string]*models.Node
	ordered []*models.Node
	edges   []*models.Edge
}

func newNavigator(wf *models.Workflow) *navigator {
	nodes := make(map[string]*models.Node, len(wf.Nodes))
	for _, node := range wf.Nodes {
		nodes[node.ID] = node
	}

	return &navigator{nodes: nodes, ordered: wf.Nodes, edges: wf.Edges}
}

func (n *navigator) startNode() *models.Node {
	for _, node := range n.ordered {
		if node.Type == models.NodeTypeStart {
			return node
		}
	}

	return nil
}

func (n *navigator) outgoingEdges(nodeID string) []*models.Edge {
	var outgoing []*models.Edge

	for _, edge := range n.edges {
		if edge.Source == nodeID {
			outgoing = append(outgoing, edge)
		}
	}

	return outgoing
}

// nextNode picks the successor of a node. When outcome is set (the node was
// a condition), the edge whose branch matches wins; with no matching branch
// edge, or no outcome, the first outgoing edge is taken. No outgoing edges
// means natural termination.
func (n *navigator) nextNode(nodeID string, outcome *bool) *models.Node {
	outgoing := n.outgoingEdges(nodeID)
	if len(outgoing) == 0 {
		return nil
	}

	if outcome != nil {
		branch := models.BranchFalse
		if *outcome {
			branch = models.BranchTrue
		}

		for _, edge := range outgoing {
			if edge.Branch == branch {
				return n.nodes[edge.Target]
			}
		}
	}

	return n.nodes[outgoing[0].Target]
}
