package shower

// Point is a position in the rendered scene.
type Point struct {
	X, Y, Z float64
}

func (pt Point) Translate(p Momentum) Point {
	return Point{pt.X + p.X, pt.Y + p.Y, pt.Z + p.Z}
}

// Segment is one drawable line: a parton's momentum anchored at the point
// where its parent's momentum ended.
type Segment struct {
	Start, End Point
}

// Segments flattens the tree rooted at node into drawable segments, in
// depth-first order (node, left, right). Each child segment starts where
// its parent segment ends. A nil tree yields no segments.
func Segments(node *Parton, origin Point) []Segment {
	return appendSegments(nil, node, origin)
}

func appendSegments(segs []Segment, node *Parton, origin Point) []Segment {
	if node == nil {
		return segs
	}
	end := origin.Translate(node.P)
	segs = append(segs, Segment{Start: origin, End: end})
	segs = appendSegments(segs, node.Left, end)
	segs = appendSegments(segs, node.Right, end)
	return segs
}
