package core

// Result is the output of one generation run. Kind selects the payload:
// Field for KindMandelbrot, Segments for KindKoch and KindTree, Points for
// KindChaos and Triangles for KindSierpinski. The payload may be nil when
// the run produced nothing.
type Result struct {
	Kind Kind

	Field     *PixelField
	Segments  []Segment
	Points    []Point
	Triangles []Triangle
}

// Len returns the number of primitives in the result. A field counts one
// primitive per row, matching how it is revealed by the step player.
func (r Result) Len() int {
	switch r.Kind {
	case KindMandelbrot:
		if r.Field == nil {
			return 0
		}
		return r.Field.H
	case KindKoch, KindTree:
		return len(r.Segments)
	case KindChaos:
		return len(r.Points)
	case KindSierpinski:
		return len(r.Triangles)
	}
	return 0
}
