package engine

import "math"

// accumulate zeroes and recomputes gravitational acceleration for every
// active body. Brute-force over unordered pairs; with the small arena
// capacity the O(n²) scan is cheaper than any spatial index would be to
// maintain.
//
// The softening term enters only the magnitude denominator; direction
// uses the true separation so close encounters bend but do not blow up.
func (e *Engine) accumulate() {
	bodies := e.store.Bodies()
	for i := range bodies {
		if bodies[i].Active {
			bodies[i].Acc.X = 0
			bodies[i].Acc.Y = 0
		}
	}

	eps2 := e.params.Softening * e.params.Softening
	for i := range bodies {
		bi := &bodies[i]
		if !bi.Active {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			bj := &bodies[j]
			if !bj.Active {
				continue
			}

			d := bj.Pos.Sub(bi.Pos)
			r2 := d.LenSq()
			dist := math.Sqrt(r2)
			if dist == 0 {
				// Coincident centers have no defined direction; the
				// collision pass will merge them this tick anyway.
				continue
			}

			f := e.params.G * bi.Mass * bj.Mass / (r2 + eps2)
			fx := f * d.X / dist
			fy := f * d.Y / dist

			bi.Acc.X += fx / bi.Mass
			bi.Acc.Y += fy / bi.Mass
			bj.Acc.X -= fx / bj.Mass
			bj.Acc.Y -= fy / bj.Mass
		}
	}
}
