package kdtree

import "github.com/hupe1980/kdgo/index"

// Stats returns the size, height and orientation counts of the tree.
func (t *Tree) Stats() index.Stats {
	st := index.Stats{
		Name:   t.Name(),
		Size:   t.size,
		Height: height(t.root),
	}
	t.walk(t.root, func(n *node) bool {
		if n.orient == Vertical {
			st.Vertical++
		} else {
			st.Horizontal++
		}
		return true
	})
	return st
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.below), height(n.above))
}
