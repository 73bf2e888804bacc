package engine

import "fmt"

// integrate advances every active body one semi-implicit Euler step:
// velocity from the freshly accumulated acceleration first, then
// position from the new velocity. Speeds above the limit are scaled
// back to exactly the limit, direction preserved; only the first clamp
// in the process raises an advisory. Positions wrap toroidally at the
// viewport edges.
func (e *Engine) integrate(out *TickOutcome) {
	p := e.params
	bodies := e.store.Bodies()
	for i := range bodies {
		b := &bodies[i]
		if !b.Active {
			continue
		}

		b.Vel = b.Vel.Add(b.Acc.Scale(p.Dt))

		speed := b.Vel.Len()
		if speed > p.MaxVelocity {
			b.Vel = b.Vel.Scale(p.MaxVelocity / speed)
			if !e.velocityAdvised {
				e.velocityAdvised = true
				out.Advisories = append(out.Advisories, Advisory{
					Kind: AdvisoryVelocityClamped,
					Body: i,
					Detail: fmt.Sprintf("speed %.2f clamped to %.2f; later clamps are silent",
						speed, p.MaxVelocity),
				})
			}
		}

		b.Pos = b.Pos.Add(b.Vel.Scale(p.Dt))

		// Wrap, not bounce: an exit below an edge re-enters at the
		// opposite bound exactly.
		if b.Pos.X < 0 {
			b.Pos.X = p.ViewportW
		} else if b.Pos.X > p.ViewportW {
			b.Pos.X = 0
		}
		if b.Pos.Y < 0 {
			b.Pos.Y = p.ViewportH
		} else if b.Pos.Y > p.ViewportH {
			b.Pos.Y = 0
		}
	}
}
