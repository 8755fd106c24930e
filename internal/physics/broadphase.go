package physics

import "math"

// Pair is a candidate pair of bodies with A < B.
type Pair struct {
	A, B Handle
}

// BroadPhase enumerates candidate pairs for the narrow phase. Pairs are
// appended to dst in ascending (A, B) order so resolution is reproducible.
type BroadPhase interface {
	Pairs(bodies []RigidBody, dst []Pair) []Pair
}

// eligible filters pairs that can never produce a contact.
func eligible(a, b *RigidBody) bool {
	if !a.IsDynamic() && !b.IsDynamic() {
		return false
	}
	return a.HasExtents() && b.HasExtents()
}

// AllPairs tests every unordered pair. O(n²), which is fine for a few dozen
// bodies.
type AllPairs struct{}

func (AllPairs) Pairs(bodies []RigidBody, dst []Pair) []Pair {
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if eligible(&bodies[i], &bodies[j]) {
				dst = append(dst, Pair{A: Handle(i), B: Handle(j)})
			}
		}
	}
	return dst
}

// CellKey identifies one cell of a SpatialGrid.
type CellKey struct {
	X, Y, Z int
}

// maxCellsPerBody caps how many cells a body is inserted into. Bigger bodies
// go on an oversize list that is checked against everything.
const maxCellsPerBody = 512

// SpatialGrid hashes body AABBs into uniform cells and only emits pairs whose
// boxes overlap.
type SpatialGrid struct {
	CellSize float32

	cells    map[CellKey][]Handle
	oversize []Handle
	seen     map[Pair]struct{}
}

func NewSpatialGrid(cellSize float32) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = DefaultConfig().GridCellSize
	}
	return &SpatialGrid{
		CellSize: cellSize,
		cells:    make(map[CellKey][]Handle),
		seen:     make(map[Pair]struct{}),
	}
}

// maxCellCoord bounds cell coordinates so they always fit in an int.
const maxCellCoord = 1 << 30

func (g *SpatialGrid) cellOf(v float32) float64 {
	return math.Floor(float64(v) / float64(g.CellSize))
}

// cellSpan returns the cells box covers. It reports false when the box is
// not finite, lies outside the addressable grid or covers more than
// maxCellsPerBody cells.
func (g *SpatialGrid) cellSpan(box AABB) (lo, hi CellKey, ok bool) {
	x0, x1 := g.cellOf(box.Min.X), g.cellOf(box.Max.X)
	y0, y1 := g.cellOf(box.Min.Y), g.cellOf(box.Max.Y)
	z0, z1 := g.cellOf(box.Min.Z), g.cellOf(box.Max.Z)

	n := (x1 - x0 + 1) * (y1 - y0 + 1) * (z1 - z0 + 1)
	if math.IsNaN(n) || n > maxCellsPerBody {
		return lo, hi, false
	}
	for _, c := range [...]float64{x0, x1, y0, y1, z0, z1} {
		if c < -maxCellCoord || c > maxCellCoord {
			return lo, hi, false
		}
	}
	return CellKey{int(x0), int(y0), int(z0)}, CellKey{int(x1), int(y1), int(z1)}, true
}

func (g *SpatialGrid) rebuild(bodies []RigidBody) {
	for k := range g.cells {
		delete(g.cells, k)
	}
	g.oversize = g.oversize[:0]

	for i := range bodies {
		b := &bodies[i]
		if !b.HasExtents() {
			continue
		}
		lo, hi, ok := g.cellSpan(b.Bounds())
		if !ok {
			g.oversize = append(g.oversize, Handle(i))
			continue
		}
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				for z := lo.Z; z <= hi.Z; z++ {
					key := CellKey{x, y, z}
					g.cells[key] = append(g.cells[key], Handle(i))
				}
			}
		}
	}
}

func (g *SpatialGrid) consider(bodies []RigidBody, a, b Handle) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	p := Pair{A: a, B: b}
	if _, ok := g.seen[p]; ok {
		return
	}
	ba, bb := &bodies[a], &bodies[b]
	if eligible(ba, bb) && ba.Bounds().Overlaps(bb.Bounds()) {
		g.seen[p] = struct{}{}
	}
}

func (g *SpatialGrid) Pairs(bodies []RigidBody, dst []Pair) []Pair {
	g.rebuild(bodies)
	for k := range g.seen {
		delete(g.seen, k)
	}

	for _, handles := range g.cells {
		for i := range handles {
			for j := i + 1; j < len(handles); j++ {
				g.consider(bodies, handles[i], handles[j])
			}
		}
	}
	for _, big := range g.oversize {
		for i := range bodies {
			g.consider(bodies, big, Handle(i))
		}
	}

	start := len(dst)
	for p := range g.seen {
		dst = append(dst, p)
	}
	sortPairs(dst[start:])
	return dst
}
