package navmesh

import (
	"container/heap"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type gridPos struct {
	x int
	z int
}

// FindPath plans from from to to and returns the path corners, excluding the
// start point. When to cannot be reached the path ends at the reachable cell
// closest to it and complete is false. A nil path means from is off the mesh.
func (m *Mesh) FindPath(from, to mgl64.Vec3) (corners []mgl64.Vec3, complete bool) {
	if m == nil || len(m.walkable) == 0 {
		return nil, false
	}

	sx, sz, ok := m.walkableCell(from)
	if !ok {
		snapped, ok := m.SamplePosition(from, m.CellSize)
		if !ok {
			return nil, false
		}
		sx, sz, _ = m.walkableCell(snapped)
		from = snapped
	}
	gx, gz, ok := m.walkableCell(to)
	if !ok {
		gx, gz, _ = m.CellAt(to)
		gx = clampInt(gx, 0, m.Width-1)
		gz = clampInt(gz, 0, m.Depth-1)
	}

	start := gridPos{x: sx, z: sz}
	goal := gridPos{x: gx, z: gz}
	path, reached := m.astar(start, goal)

	from = m.onPlane(from)
	end := m.CellCenter(path[len(path)-1].x, path[len(path)-1].z)
	if reached {
		end = m.onPlane(to)
	}

	corners = make([]mgl64.Vec3, 0, len(path))
	for _, p := range path[1:] {
		corners = append(corners, m.CellCenter(p.x, p.z))
	}
	if len(corners) == 0 {
		corners = append(corners, end)
	} else {
		corners[len(corners)-1] = end
	}
	return simplify(from, corners), reached
}

func (m *Mesh) onPlane(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p.X(), m.Origin.Y(), p.Z()}
}

// astar returns the cell path from start. If goal is unreachable the path
// leads to the visited cell nearest the goal.
func (m *Mesh) astar(start, goal gridPos) ([]gridPos, bool) {
	w, d := m.Width, m.Depth

	cameFrom := make([]int, w*d)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, w*d)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	closed := make([]bool, w*d)

	startIdx := start.z*w + start.x
	goalIdx := goal.z*w + goal.x
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{pos: start, f: heuristic(start, goal)})

	nearestIdx := startIdx
	nearestH := heuristic(start, goal)
	goalOpen := m.Walkable(goal.x, goal.z)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem).pos
		curIdx := cur.z*w + cur.x
		if closed[curIdx] {
			continue
		}
		closed[curIdx] = true

		if h := heuristic(cur, goal); h < nearestH {
			nearestH = h
			nearestIdx = curIdx
		}
		if goalOpen && curIdx == goalIdx {
			return reconstructPath(cameFrom, w, startIdx, goalIdx), true
		}

		for _, n := range m.neighbors(cur) {
			idx := n.z*w + n.x
			if closed[idx] {
				continue
			}
			tentative := gScore[curIdx] + 1
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{pos: n, f: tentative + heuristic(n, goal), g: tentative})
			}
		}
	}

	return reconstructPath(cameFrom, w, startIdx, nearestIdx), false
}

func reconstructPath(cameFrom []int, width int, startIdx, goalIdx int) []gridPos {
	path := make([]gridPos, 0, 32)
	cur := goalIdx
	for cur != -1 {
		path = append(path, gridPos{x: cur % width, z: cur / width})
		if cur == startIdx {
			break
		}
		cur = cameFrom[cur]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (m *Mesh) neighbors(p gridPos) []gridPos {
	out := make([]gridPos, 0, 4)
	for _, d := range [4]gridPos{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := gridPos{x: p.x + d.x, z: p.z + d.z}
		if m.Walkable(n.x, n.z) {
			out = append(out, n)
		}
	}
	return out
}

func heuristic(a, b gridPos) float64 {
	return math.Abs(float64(a.x-b.x)) + math.Abs(float64(a.z-b.z))
}

// simplify drops corners that continue in the same direction as the previous
// segment.
func simplify(from mgl64.Vec3, corners []mgl64.Vec3) []mgl64.Vec3 {
	if len(corners) < 2 {
		return corners
	}
	out := make([]mgl64.Vec3, 0, len(corners))
	prev := from
	for i := 0; i < len(corners)-1; i++ {
		a := corners[i].Sub(prev)
		b := corners[i+1].Sub(corners[i])
		if a.Len() > 1e-9 && b.Len() > 1e-9 && math.Abs(a.Normalize().Dot(b.Normalize())-1) < 1e-9 {
			continue
		}
		out = append(out, corners[i])
		prev = corners[i]
	}
	return append(out, corners[len(corners)-1])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type openItem struct {
	pos   gridPos
	f     float64
	g     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
