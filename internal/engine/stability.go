package engine

import "fmt"

// checkStability scans every active body before the physics passes run.
// Any non-finite position or velocity makes the tick fatal: the scan is
// read-only, so abandoning here guarantees no other body was touched.
// Bodies drifted far outside the viewport only raise an advisory.
func (e *Engine) checkStability(out *TickOutcome) bool {
	p := e.params
	bodies := e.store.Bodies()
	stable := true
	for i := range bodies {
		b := &bodies[i]
		if !b.Active {
			continue
		}

		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			out.Advisories = append(out.Advisories, Advisory{
				Kind: AdvisoryUnstable,
				Body: i,
				Detail: fmt.Sprintf("non-finite state: pos=(%g, %g) vel=(%g, %g) mass=%g",
					b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Mass),
			})
			stable = false
			continue
		}

		if b.Pos.X < -p.DriftMargin || b.Pos.X > p.ViewportW+p.DriftMargin ||
			b.Pos.Y < -p.DriftMargin || b.Pos.Y > p.ViewportH+p.DriftMargin {
			out.Advisories = append(out.Advisories, Advisory{
				Kind:   AdvisoryDrift,
				Body:   i,
				Detail: fmt.Sprintf("position (%.1f, %.1f) far outside viewport", b.Pos.X, b.Pos.Y),
			})
		}
	}
	return stable
}
