package navmesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testMesh(t *testing.T) *Mesh {
	t.Helper()
	m, err := ParseRows(mgl64.Vec3{}, 1, []string{
		"......",
		".####.",
		"......",
		"###...",
	})
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	return m
}

func TestParseRows(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		wantErr bool
		w, d    int
	}{
		{"grid", []string{"..#", "o+ "}, false, 3, 2},
		{"short_row_padded", []string{"....", ".."}, false, 4, 2},
		{"empty", nil, true, 0, 0},
		{"bad_char", []string{"..x"}, true, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := ParseRows(mgl64.Vec3{}, 0.5, c.rows)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Width != c.w || m.Depth != c.d {
				t.Fatalf("size %dx%d, want %dx%d", m.Width, m.Depth, c.w, c.d)
			}
		})
	}

	m, _ := ParseRows(mgl64.Vec3{}, 1, []string{"....", ".."})
	if m.Walkable(3, 1) {
		t.Fatalf("padding should be blocked")
	}
	if !m.Walkable(1, 1) {
		t.Fatalf("expected (1,1) walkable")
	}
}

func TestSamplePosition(t *testing.T) {
	m := testMesh(t)
	cases := []struct {
		name   string
		p      mgl64.Vec3
		max    float64
		want   mgl64.Vec3
		wantOK bool
	}{
		{"on_walkable_cell", mgl64.Vec3{0.3, 2, 0.7}, 4, mgl64.Vec3{0.3, 0, 0.7}, true},
		{"inside_obstacle", mgl64.Vec3{2.5, 0, 1.2}, 4, mgl64.Vec3{2.5, 0, 1}, true},
		{"off_grid", mgl64.Vec3{-1.5, 0, 0.5}, 4, mgl64.Vec3{0, 0, 0.5}, true},
		{"too_far", mgl64.Vec3{-10, 0, 0.5}, 4, mgl64.Vec3{}, false},
		{"negative_max", mgl64.Vec3{0.5, 0, 0.5}, -1, mgl64.Vec3{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := m.SamplePosition(c.p, c.max)
			if ok != c.wantOK {
				t.Fatalf("ok %v, want %v", ok, c.wantOK)
			}
			if ok && !vecNear(got, c.want) {
				t.Fatalf("SamplePosition = %v, want %v", got, c.want)
			}
		})
	}

	var nilMesh *Mesh
	if _, ok := nilMesh.SamplePosition(mgl64.Vec3{}, 4); ok {
		t.Fatalf("nil mesh should not sample")
	}
}

func pathLength(from mgl64.Vec3, corners []mgl64.Vec3) float64 {
	total := 0.0
	prev := from
	for _, c := range corners {
		total += c.Sub(prev).Len()
		prev = c
	}
	return total
}

func TestFindPath(t *testing.T) {
	m := testMesh(t)

	t.Run("straight", func(t *testing.T) {
		corners, complete := m.FindPath(mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{5.5, 0, 0.5})
		if !complete {
			t.Fatalf("expected complete path")
		}
		if len(corners) != 1 || !vecNear(corners[0], mgl64.Vec3{5.5, 0, 0.5}) {
			t.Fatalf("expected single corner at destination, got %v", corners)
		}
	})

	t.Run("around_wall", func(t *testing.T) {
		from := mgl64.Vec3{2.5, 0, 0.5}
		to := mgl64.Vec3{2.5, 0, 2.5}
		corners, complete := m.FindPath(from, to)
		if !complete {
			t.Fatalf("expected complete path")
		}
		if got := corners[len(corners)-1]; !vecNear(got, to) {
			t.Fatalf("last corner %v, want %v", got, to)
		}
		for _, c := range corners {
			x, z, _ := m.CellAt(c)
			if !m.Walkable(x, z) {
				t.Fatalf("corner %v lies in a blocked cell", c)
			}
		}
		// shortest detour goes round the left end: 2 west, 2 south, 2 east
		if l := pathLength(from, corners); math.Abs(l-6) > 1e-9 {
			t.Fatalf("path length %v, want 6", l)
		}
	})

	t.Run("unreachable_is_partial", func(t *testing.T) {
		walled, _ := ParseRows(mgl64.Vec3{}, 1, []string{
			"..#..",
			"..#..",
		})
		corners, complete := walled.FindPath(mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{4.5, 0, 0.5})
		if complete {
			t.Fatalf("expected partial path")
		}
		if len(corners) == 0 {
			t.Fatalf("expected a path to the nearest reachable cell")
		}
		x, z, _ := walled.CellAt(corners[len(corners)-1])
		if x != 1 {
			t.Fatalf("partial path should end beside the wall, ended in cell (%d,%d)", x, z)
		}
	})

	t.Run("start_off_mesh_snaps", func(t *testing.T) {
		corners, complete := m.FindPath(mgl64.Vec3{2.5, 0, 1.5}, mgl64.Vec3{5.5, 0, 2.5})
		if !complete || len(corners) == 0 {
			t.Fatalf("expected path from snapped start, got %v complete=%v", corners, complete)
		}
	})

	t.Run("goal_on_edge_of_blocked_cell", func(t *testing.T) {
		to, ok := m.SamplePosition(mgl64.Vec3{2.5, 0, 1.2}, 4)
		if !ok {
			t.Fatalf("expected sample")
		}
		corners, complete := m.FindPath(mgl64.Vec3{0.5, 0, 0.5}, to)
		if !complete {
			t.Fatalf("sampled goal should be reachable")
		}
		if got := corners[len(corners)-1]; !vecNear(got, to) {
			t.Fatalf("last corner %v, want %v", got, to)
		}
	})

	t.Run("start_far_off_mesh", func(t *testing.T) {
		corners, _ := m.FindPath(mgl64.Vec3{-20, 0, -20}, mgl64.Vec3{0.5, 0, 0.5})
		if corners != nil {
			t.Fatalf("expected no path, got %v", corners)
		}
	})
}

// vecNear compares by distance; ApproxEqualThreshold falls back to eps*eps
// when a component is exactly zero.
func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
