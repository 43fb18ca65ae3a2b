package player

import "fractals/pkg/core"

// Playback reveals a core.Result progressively. Segments, points and
// triangles are revealed one per step; a pixel field is revealed one row per
// step, bottom row first.
type Playback struct {
	Kind core.Kind

	Segments  *Queue[core.Segment]
	Points    *Queue[core.Point]
	Triangles *Queue[core.Triangle]

	Field *core.PixelField
	Rows  *Queue[int]
}

// FromResult builds a Playback over res. The result must not be modified
// while the playback is in use.
func FromResult(res core.Result) *Playback {
	p := &Playback{Kind: res.Kind}
	switch res.Kind {
	case core.KindMandelbrot:
		var rows []int
		if res.Field != nil {
			rows = make([]int, res.Field.H)
			for y := range rows {
				rows[y] = y
			}
		}
		p.Field = res.Field
		p.Rows = New(rows)
	case core.KindKoch, core.KindTree:
		p.Segments = New(res.Segments)
	case core.KindChaos:
		p.Points = New(res.Points)
	default:
		p.Triangles = New(res.Triangles)
	}
	return p
}

// Step reveals up to n primitives and returns how many were revealed.
func (p *Playback) Step(n int) int {
	revealed := 0
	for revealed < n && p.advance() {
		revealed++
	}
	return revealed
}

func (p *Playback) advance() bool {
	var ok bool
	switch {
	case p.Rows != nil:
		_, ok = p.Rows.Advance()
	case p.Segments != nil:
		_, ok = p.Segments.Advance()
	case p.Points != nil:
		_, ok = p.Points.Advance()
	case p.Triangles != nil:
		_, ok = p.Triangles.Advance()
	}
	return ok
}

// Done reports whether everything has been revealed.
func (p *Playback) Done() bool {
	played, total := p.Progress()
	return played >= total
}

// Progress returns the number of revealed primitives and the total.
func (p *Playback) Progress() (played, total int) {
	switch {
	case p.Rows != nil:
		return p.Rows.Len() - p.Rows.Remaining(), p.Rows.Len()
	case p.Segments != nil:
		return len(p.Segments.Played()), p.Segments.Len()
	case p.Points != nil:
		return len(p.Points.Played()), p.Points.Len()
	case p.Triangles != nil:
		return len(p.Triangles.Played()), p.Triangles.Len()
	}
	return 0, 0
}
