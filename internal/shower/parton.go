package shower

// Parton is a node in the shower tree. It holds the momentum the parton
// carried before splitting and references to the two partons it split into.
// A nil child means the shower terminated at this parton; the builder only
// ever produces nodes with zero or two children.
type Parton struct {
	P     Momentum
	Left  *Parton
	Right *Parton
}

// Count returns the number of partons in the tree rooted at p.
// A complete shower of L layers has 2^L - 1 partons.
func (p *Parton) Count() int {
	if p == nil {
		return 0
	}
	return 1 + p.Left.Count() + p.Right.Count()
}

// Depth returns the number of layers in the tree rooted at p.
func (p *Parton) Depth() int {
	if p == nil {
		return 0
	}
	l, r := p.Left.Depth(), p.Right.Depth()
	if r > l {
		l = r
	}
	return l + 1
}

// Leaves returns the final-state partons in depth-first order.
func (p *Parton) Leaves() []*Parton {
	if p == nil {
		return nil
	}
	if p.Left == nil && p.Right == nil {
		return []*Parton{p}
	}
	return append(p.Left.Leaves(), p.Right.Leaves()...)
}

// Walk visits every parton in the tree in depth-first order (node, left,
// right), passing the depth of each node starting at 0 for the root.
func (p *Parton) Walk(fn func(node *Parton, depth int)) {
	p.walk(fn, 0)
}

func (p *Parton) walk(fn func(*Parton, int), depth int) {
	if p == nil {
		return
	}
	fn(p, depth)
	p.Left.walk(fn, depth+1)
	p.Right.walk(fn, depth+1)
}
