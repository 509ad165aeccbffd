package shower

import "math"

// Momentum is a 3D momentum vector. Values are immutable; all operations
// return new vectors.
type Momentum struct {
	X, Y, Z float64
}

func (p Momentum) Add(o Momentum) Momentum  { return Momentum{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Momentum) Sub(o Momentum) Momentum  { return Momentum{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Momentum) Scale(s float64) Momentum { return Momentum{p.X * s, p.Y * s, p.Z * s} }
func (p Momentum) Neg() Momentum            { return Momentum{-p.X, -p.Y, -p.Z} }

// Norm returns the Euclidean magnitude.
func (p Momentum) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Momentum) IsValid() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
