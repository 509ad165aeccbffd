package shower

import "math"

// Default event parameters, matching the classic dijet picture: two
// back-to-back partons showered for four layers.
const (
	DefaultLayers = 4
	DefaultTheta0 = math.Pi / 4
)

// DefaultMomentum is the initial momentum of the forward jet.
var DefaultMomentum = Momentum{X: 100, Y: 100, Z: 100}

// Event is a full toy event: one or two showers sharing an origin.
type Event struct {
	Jets []*Parton
}

// BuildEvent showers p0 at theta0, and when backToBack is set also
// showers the opposite momentum at theta0+pi, so the event renders as a
// dijet from a common origin.
func BuildEvent(b *Builder, p0 Momentum, theta0 float64, backToBack bool) *Event {
	ev := &Event{Jets: []*Parton{b.Build(p0, theta0)}}
	if backToBack {
		ev.Jets = append(ev.Jets, b.Build(p0.Neg(), theta0+math.Pi))
	}
	return ev
}

// Segments renders every jet in the event from the same origin.
func (ev *Event) Segments(origin Point) []Segment {
	var segs []Segment
	for _, jet := range ev.Jets {
		segs = append(segs, Segments(jet, origin)...)
	}
	return segs
}

// Count returns the total number of partons across all jets.
func (ev *Event) Count() int {
	n := 0
	for _, jet := range ev.Jets {
		n += jet.Count()
	}
	return n
}
