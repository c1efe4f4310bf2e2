package geom

import (
	"math"
	"testing"
)

func TestPointAtEndpoints(t *testing.T) {
	p := NewPath("drop", []Point{{X: 100, Y: -50}, {X: 100, Y: 550}})
	if got := p.PointAt(0); got != (Point{X: 100, Y: -50}) {
		t.Fatalf("unexpected start: %+v", got)
	}
	if got := p.PointAt(1); got != (Point{X: 100, Y: 550}) {
		t.Fatalf("unexpected end: %+v", got)
	}
	if got := p.PointAt(-0.5); got != p.Start() {
		t.Fatalf("negative t should clamp to start, got %+v", got)
	}
	if got := p.PointAt(2); got != p.End() {
		t.Fatalf("t above 1 should clamp to end, got %+v", got)
	}
}

func TestPointAtArcLengthMidpoint(t *testing.T) {
	// Two equal-length segments; t=0.5 must land exactly on the corner.
	p := NewPath("corner", []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	mid := p.PointAt(0.5)
	if math.Abs(mid.X-100) > 1e-9 || math.Abs(mid.Y) > 1e-9 {
		t.Fatalf("expected corner at t=0.5, got %+v", mid)
	}
	quarter := p.PointAt(0.25)
	if math.Abs(quarter.X-50) > 1e-9 || math.Abs(quarter.Y) > 1e-9 {
		t.Fatalf("expected (50,0) at t=0.25, got %+v", quarter)
	}
}

func TestDefaultTableCoversAllLevels(t *testing.T) {
	table := DefaultTable()
	for level := 1; level <= 5; level++ {
		paths := table.PathsForLevel(level)
		if len(paths) < 3 {
			t.Fatalf("level %d has %d paths, want at least 3", level, len(paths))
		}
		for _, p := range paths {
			if p.Name == "" {
				t.Fatalf("level %d has an unnamed path", level)
			}
		}
	}
	if table.PathsForLevel(6) != nil {
		t.Fatalf("level 6 should have no path data")
	}
}

func TestParseTableRejectsShortPaths(t *testing.T) {
	data := []byte("levels:\n  1:\n    - name: stub\n      points: [[0, 0]]\n")
	if _, err := ParseTable(data); err == nil {
		t.Fatalf("expected error for single-point path")
	}
}
