package field

import "math"

// PairFinder appends to dst every pair (a < b) whose distance is strictly
// below radius, and returns the extended slice.
type PairFinder interface {
	Pairs(particles []Particle, radius float64, dst []Connection) []Connection
}

// BruteForce compares every unordered pair once.
type BruteForce struct{}

// Pairs implements PairFinder.
func (BruteForce) Pairs(ps []Particle, radius float64, dst []Connection) []Connection {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < radius {
				dst = append(dst, Connection{A: i, B: j, Distance: d})
			}
		}
	}
	return dst
}

type cellKey struct{ x, y int }

// Grid buckets particles into square cells one radius wide so that only the
// surrounding 3x3 block of cells is searched for each particle. Results match
// BruteForce as a set; order differs.
type Grid struct {
	cells map[cellKey][]int
}

// NewGrid returns an empty grid finder.
func NewGrid() *Grid {
	return &Grid{cells: make(map[cellKey][]int)}
}

// Pairs implements PairFinder.
func (g *Grid) Pairs(ps []Particle, radius float64, dst []Connection) []Connection {
	if radius <= 0 {
		return dst
	}
	if g.cells == nil {
		g.cells = make(map[cellKey][]int)
	}
	for k, idx := range g.cells {
		if len(idx) == 0 {
			delete(g.cells, k)
			continue
		}
		g.cells[k] = idx[:0]
	}
	for i, p := range ps {
		k := cellOf(p, radius)
		g.cells[k] = append(g.cells[k], i)
	}
	for i, p := range ps {
		home := cellOf(p, radius)
		for oy := -1; oy <= 1; oy++ {
			for ox := -1; ox <= 1; ox++ {
				for _, j := range g.cells[cellKey{home.x + ox, home.y + oy}] {
					if j <= i {
						continue
					}
					dx := p.X - ps[j].X
					dy := p.Y - ps[j].Y
					d := math.Sqrt(dx*dx + dy*dy)
					if d < radius {
						dst = append(dst, Connection{A: i, B: j, Distance: d})
					}
				}
			}
		}
	}
	return dst
}

func cellOf(p Particle, size float64) cellKey {
	return cellKey{x: int(math.Floor(p.X / size)), y: int(math.Floor(p.Y / size))}
}
