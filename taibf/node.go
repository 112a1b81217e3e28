package taibf

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrInvalidOp    = errors.New("invalid op")
	ErrInvalidCount = errors.New("invalid count")
)

// Node is one run of identical ops.
// Next and Loop are owning links; a tree has no shared nodes and no back pointers.
// Loop is only set on OpLoopBegin nodes and points to the first node of the body,
// which always ends with an OpLoopEnd node whose Next is nil.
type Node struct {
	Op    Op
	Count int
	Next  *Node
	Loop  *Node
}

func NewNode(op Op, count int) (*Node, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOp, uint8(op))
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if (op == OpLoopBegin || op == OpLoopEnd) && count != 1 {
		return nil, fmt.Errorf("%w: %s must have count 1, got %d", ErrInvalidCount, op, count)
	}
	return &Node{
		Op:    op,
		Count: count,
	}, nil
}

// Walk iterates the chain starting at n, following Next links only.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := n; node != nil; node = node.Next {
			if !yield(node) {
				return
			}
		}
	}
}

type Program struct {
	Root *Node
	// Input is the text following the '!' separator, empty if none
	Input string
}

func NewProgram() *Program {
	return &Program{
		Root: &Node{
			Op:    OpNone,
			Count: 1,
		},
	}
}
