// Package mcts implements Monte Carlo tree search over engine game states.
// Nodes and their cloned states are pooled; all randomness comes from an
// injected source so searches are reproducible.
package mcts

import (
	"math"
	"sync"

	"github.com/deckforge/cardsim/engine"
)

// Node is one node in the search tree. PlayerID is the player who made the
// move leading into this node, so Wins counts from their perspective.
type Node struct {
	State        *engine.GameState
	Move         engine.LegalMove
	Parent       *Node
	Children     []*Node
	UntriedMoves []engine.LegalMove
	Visits       int
	Wins         float64
	PlayerID     uint8
}

var nodePool = sync.Pool{
	New: func() interface{} {
		return &Node{
			Children:     make([]*Node, 0, 8),
			UntriedMoves: make([]engine.LegalMove, 0, 16),
		}
	},
}

func getNode() *Node {
	n := nodePool.Get().(*Node)
	n.reset()
	return n
}

// putNode releases a node, its subtree and their cloned states.
func putNode(n *Node) {
	if n == nil {
		return
	}
	for _, child := range n.Children {
		putNode(child)
	}
	if n.State != nil {
		engine.ReleaseState(n.State)
		n.State = nil
	}
	nodePool.Put(n)
}

func (n *Node) reset() {
	n.State = nil
	n.Move = engine.LegalMove{}
	n.Parent = nil
	n.Children = n.Children[:0]
	n.UntriedMoves = n.UntriedMoves[:0]
	n.Visits = 0
	n.Wins = 0
	n.PlayerID = 0
}

// ucb1 scores a child for selection. Unvisited children sort first.
func (n *Node) ucb1(c float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploit := n.Wins / float64(n.Visits)
	explore := c * math.Sqrt(math.Log(float64(n.Parent.Visits))/float64(n.Visits))
	return exploit + explore
}

func (n *Node) bestChild(c float64) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	bestValue := best.ucb1(c)
	for _, child := range n.Children[1:] {
		if v := child.ucb1(c); v > bestValue {
			bestValue = v
			best = child
		}
	}
	return best
}

func (n *Node) mostVisitedChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	for _, child := range n.Children[1:] {
		if child.Visits > best.Visits {
			best = child
		}
	}
	return best
}

func (n *Node) fullyExpanded() bool { return len(n.UntriedMoves) == 0 }

func (n *Node) terminal() bool {
	return n.State == nil || n.State.WinnerID >= 0
}
