package navmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrEmptyMesh = errors.New("navmesh: empty grid")

// Mesh is a walkable grid on the XZ plane. Cell (0,0) starts at Origin and
// cells grow along +X and +Z.
type Mesh struct {
	Origin   mgl64.Vec3
	CellSize float64
	Width    int
	Depth    int

	walkable []bool
}

// NewMesh creates a mesh with every cell blocked.
func NewMesh(origin mgl64.Vec3, cellSize float64, width, depth int) *Mesh {
	if cellSize <= 0 {
		cellSize = 1
	}
	if width < 0 {
		width = 0
	}
	if depth < 0 {
		depth = 0
	}
	return &Mesh{
		Origin:   origin,
		CellSize: cellSize,
		Width:    width,
		Depth:    depth,
		walkable: make([]bool, width*depth),
	}
}

// ParseRows builds a mesh from text rows, one row per Z line. '#' is blocked;
// '.', ' ', 'o' and '+' are walkable. Short rows are padded as blocked.
func ParseRows(origin mgl64.Vec3, cellSize float64, rows []string) (*Mesh, error) {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 || len(rows) == 0 {
		return nil, ErrEmptyMesh
	}
	m := NewMesh(origin, cellSize, width, len(rows))
	for z, r := range rows {
		for x := 0; x < len(r); x++ {
			switch r[x] {
			case '#':
			case '.', ' ', 'o', '+':
				m.SetWalkable(x, z, true)
			default:
				return nil, fmt.Errorf("navmesh: row %d col %d: unexpected %q", z, x, r[x])
			}
		}
	}
	return m, nil
}

func (m *Mesh) inBounds(x, z int) bool {
	return m != nil && x >= 0 && z >= 0 && x < m.Width && z < m.Depth
}

func (m *Mesh) SetWalkable(x, z int, walkable bool) {
	if !m.inBounds(x, z) {
		return
	}
	m.walkable[z*m.Width+x] = walkable
}

func (m *Mesh) Walkable(x, z int) bool {
	if !m.inBounds(x, z) {
		return false
	}
	return m.walkable[z*m.Width+x]
}

// CellAt returns the cell containing p.
func (m *Mesh) CellAt(p mgl64.Vec3) (int, int, bool) {
	if m == nil {
		return 0, 0, false
	}
	x := int(math.Floor((p.X() - m.Origin.X()) / m.CellSize))
	z := int(math.Floor((p.Z() - m.Origin.Z()) / m.CellSize))
	return x, z, m.inBounds(x, z)
}

// walkableCell returns a walkable cell containing p. Points on a shared edge
// belong to any cell that touches them.
func (m *Mesh) walkableCell(p mgl64.Vec3) (int, int, bool) {
	x, z, _ := m.CellAt(p)
	if m.Walkable(x, z) {
		return x, z, true
	}
	flat := mgl64.Vec3{p.X(), m.Origin.Y(), p.Z()}
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cz := x+dx, z+dz
			if !m.Walkable(cx, cz) {
				continue
			}
			if m.closestInCell(p, cx, cz).Sub(flat).Len() <= 1e-9 {
				return cx, cz, true
			}
		}
	}
	return x, z, false
}

// CellCenter returns the world centre of a cell on the mesh plane.
func (m *Mesh) CellCenter(x, z int) mgl64.Vec3 {
	return mgl64.Vec3{
		m.Origin.X() + (float64(x)+0.5)*m.CellSize,
		m.Origin.Y(),
		m.Origin.Z() + (float64(z)+0.5)*m.CellSize,
	}
}

// closestInCell returns the closest point to p inside cell (x, z).
func (m *Mesh) closestInCell(p mgl64.Vec3, x, z int) mgl64.Vec3 {
	minX := m.Origin.X() + float64(x)*m.CellSize
	minZ := m.Origin.Z() + float64(z)*m.CellSize
	return mgl64.Vec3{
		clamp(p.X(), minX, minX+m.CellSize),
		m.Origin.Y(),
		clamp(p.Z(), minZ, minZ+m.CellSize),
	}
}

// SamplePosition finds the closest walkable point to p within maxDistance.
func (m *Mesh) SamplePosition(p mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool) {
	if m == nil || len(m.walkable) == 0 || maxDistance < 0 {
		return mgl64.Vec3{}, false
	}

	cx, cz, _ := m.CellAt(p)
	reach := int(math.Ceil(maxDistance/m.CellSize)) + 1

	best := mgl64.Vec3{}
	bestDist := math.Inf(1)
	for z := cz - reach; z <= cz+reach; z++ {
		for x := cx - reach; x <= cx+reach; x++ {
			if !m.Walkable(x, z) {
				continue
			}
			q := m.closestInCell(p, x, z)
			d := q.Sub(p).Len()
			if d < bestDist {
				best = q
				bestDist = d
			}
		}
	}

	if bestDist > maxDistance {
		return mgl64.Vec3{}, false
	}
	return best, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
