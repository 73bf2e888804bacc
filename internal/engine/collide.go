package engine

import (
	"fmt"

	"github.com/Syrthax/gravity-sim/internal/body"
)

// resolveCollisions merges overlapping pairs in ascending index order
// (i, then j > i). Both active flags are rechecked before every
// comparison, so a body absorbed earlier in the pass is skipped for the
// rest of it. With three or more bodies overlapping at once the outcome
// therefore depends on scan order; that is intentional and pinned by
// tests rather than resolved "fairly".
func (e *Engine) resolveCollisions(out *TickOutcome) {
	bodies := e.store.Bodies()
	for i := 0; i < len(bodies); i++ {
		if !bodies[i].Active {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			if !bodies[i].Active {
				break
			}
			if !bodies[j].Active {
				continue
			}

			dist := bodies[j].Pos.Sub(bodies[i].Pos).Len()
			if dist >= bodies[i].Radius+bodies[j].Radius {
				continue
			}

			// The heavier body absorbs; ties go to the lower index.
			absorber, absorbed := i, j
			if bodies[j].Mass > bodies[i].Mass {
				absorber, absorbed = j, i
			}
			e.mergeInto(absorber, absorbed, out)
		}
	}
}

// mergeInto folds absorbed into absorber. The velocity is the
// momentum-weighted average with the pre-clamp masses in the numerator
// and the (possibly clamped) merged mass as denominator; when the clamp
// engages this is not exact momentum conservation, which matches the
// reference behavior and stays as-is. A clamped merge also hard-pauses
// the simulation.
func (e *Engine) mergeInto(absorber, absorbed int, out *TickOutcome) {
	a := e.store.At(absorber)
	b := e.store.At(absorbed)

	sum := a.Mass + b.Mass
	newMass := sum
	if newMass > e.params.MaxMass {
		newMass = e.params.MaxMass
		e.Paused = true
		out.MassLimitHit = true
		out.Advisories = append(out.Advisories, Advisory{
			Kind: AdvisoryMassClamped,
			Body: absorber,
			Detail: fmt.Sprintf("merged mass %.1f clamped to %.1f; simulation paused",
				sum, newMass),
		})
	}

	a.Vel = body.Vec2{
		X: (a.Mass*a.Vel.X + b.Mass*b.Vel.X) / newMass,
		Y: (a.Mass*a.Vel.Y + b.Mass*b.Vel.Y) / newMass,
	}

	a.Mass = newMass
	a.Radius = e.params.RadiusFor(newMass)

	ratio := b.Mass / newMass
	if ratio > 1 {
		ratio = 1
	}
	a.Color = a.Color.BlendRgb(b.Color, ratio)

	b.Active = false
	out.Collisions = append(out.Collisions, Collision{
		Absorber: absorber,
		Absorbed: absorbed,
		NewMass:  newMass,
	})
}
