package engine

import "math"

// Read-only diagnostics over the active bodies, consumed by the live
// view's chart. None of these participate in the tick.

func (e *Engine) TotalMass() float64 {
	total := 0.0
	for _, b := range e.store.Bodies() {
		if b.Active {
			total += b.Mass
		}
	}
	return total
}

func (e *Engine) KineticEnergy() float64 {
	ke := 0.0
	for _, b := range e.store.Bodies() {
		if b.Active {
			ke += 0.5 * b.Mass * b.Vel.LenSq()
		}
	}
	return ke
}

// Energy is kinetic plus softened gravitational potential, using the
// same softening length as the force law.
func (e *Engine) Energy() float64 {
	bodies := e.store.Bodies()
	eps2 := e.params.Softening * e.params.Softening
	total := e.KineticEnergy()
	for i := range bodies {
		if !bodies[i].Active {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			if !bodies[j].Active {
				continue
			}
			r := math.Sqrt(bodies[j].Pos.Sub(bodies[i].Pos).LenSq() + eps2)
			total -= e.params.G * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return total
}

func (e *Engine) Momentum() (px, py float64) {
	for _, b := range e.store.Bodies() {
		if b.Active {
			px += b.Mass * b.Vel.X
			py += b.Mass * b.Vel.Y
		}
	}
	return px, py
}
