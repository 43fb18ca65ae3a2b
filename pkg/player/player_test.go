package player

import (
	"testing"

	"fractals/pkg/core"
)

func TestQueueDrainsExactlyOnce(t *testing.T) {
	items := []int{10, 20, 30, 40}
	q := New(items)
	for i, want := range items {
		if q.Done() {
			t.Fatalf("queue done after %d items", i)
		}
		got, ok := q.Advance()
		if !ok || got != want {
			t.Fatalf("advance %d = (%d, %v), want (%d, true)", i, got, ok, want)
		}
	}
	for i := 0; i < 3; i++ {
		got, ok := q.Advance()
		if ok || got != 0 {
			t.Fatalf("advance after exhaustion = (%d, %v), want (0, false)", got, ok)
		}
	}
	if !q.Done() || q.Remaining() != 0 || q.Len() != 4 || len(q.Played()) != 4 {
		t.Fatalf("exhausted queue reports done=%v remaining=%d len=%d played=%d", q.Done(), q.Remaining(), q.Len(), len(q.Played()))
	}
}

func TestEmptyQueue(t *testing.T) {
	q := New[core.Segment](nil)
	if !q.Done() {
		t.Fatal("empty queue should be done")
	}
	if _, ok := q.Advance(); ok {
		t.Fatal("empty queue returned an item")
	}
}

func TestPlaybackSegments(t *testing.T) {
	segs := []core.Segment{
		{End: core.Point{X: 1}},
		{End: core.Point{X: 2}},
		{End: core.Point{X: 3}},
	}
	p := FromResult(core.Result{Kind: core.KindTree, Segments: segs})
	if n := p.Step(2); n != 2 {
		t.Fatalf("step revealed %d, want 2", n)
	}
	if played, total := p.Progress(); played != 2 || total != 3 {
		t.Fatalf("progress %d/%d, want 2/3", played, total)
	}
	if got := p.Segments.Played(); got[1] != segs[1] {
		t.Fatalf("played %v", got)
	}
	if n := p.Step(5); n != 1 || !p.Done() {
		t.Fatalf("final step revealed %d, done=%v", n, p.Done())
	}
	if n := p.Step(1); n != 0 {
		t.Fatalf("step after done revealed %d", n)
	}
}

func TestPlaybackFieldRows(t *testing.T) {
	field := core.NewPixelField(4, 5, 10)
	p := FromResult(core.Result{Kind: core.KindMandelbrot, Field: field})
	if p.Rows == nil || p.Rows.Len() != 5 {
		t.Fatal("field playback should reveal one row per step")
	}
	p.Step(3)
	if rows := p.Rows.Played(); len(rows) != 3 || rows[2] != 2 {
		t.Fatalf("played rows %v", rows)
	}
}

func TestPlaybackEmptyResult(t *testing.T) {
	p := FromResult(core.Result{Kind: core.KindTree, Segments: []core.Segment{}})
	if !p.Done() || p.Step(1) != 0 {
		t.Fatal("empty tree playback should be done immediately")
	}
}

func TestPlaybackNilPayloadUsesKind(t *testing.T) {
	p := FromResult(core.Result{Kind: core.KindTree})
	if p.Segments == nil || p.Triangles != nil {
		t.Fatal("tree playback should hold a segment queue")
	}
	if !p.Done() || p.Step(1) != 0 {
		t.Fatal("empty tree playback should be done immediately")
	}
	p = FromResult(core.Result{Kind: core.KindMandelbrot})
	if p.Rows == nil || !p.Done() {
		t.Fatal("fieldless mandelbrot playback should be an empty row queue")
	}
}
