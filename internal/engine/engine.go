package engine

import (
	"math"
	"math/rand"

	"github.com/Syrthax/gravity-sim/internal/body"
)

// Engine is the simulation context. It owns the body arena, the pause
// flag and the one-shot velocity advisory; callers drive it one Tick at
// a time from a single goroutine.
type Engine struct {
	params Params
	store  *body.Store
	rng    *rand.Rand

	// Paused gates Tick. Set by callers, and by the engine itself on
	// numerical instability or a mass-limit merge.
	Paused bool

	velocityAdvised bool
	ticks           int
}

// New validates params and builds an engine. When InitialBodies is
// positive the arena starts with the randomized batch, as a Reset would
// leave it.
func New(p Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params: p,
		store:  body.NewStore(p.Capacity),
		rng:    rand.New(rand.NewSource(p.Seed)),
	}
	if p.InitialBodies > 0 {
		e.Reset()
	}
	return e, nil
}

func (e *Engine) Params() Params { return e.params }

// Ticks reports how many physics steps have run since the last Reset.
func (e *Engine) Ticks() int { return e.ticks }

func (e *Engine) SetPaused(v bool) { e.Paused = v }

func (e *Engine) TogglePause() { e.Paused = !e.Paused }

// Reset discards every body and repopulates the randomized starting
// batch: uniform positions in the viewport, small symmetric velocities,
// masses from the configured range, random colors. The pause flag is
// cleared; the one-shot velocity advisory is not, since it is scoped to
// the process, not the run.
func (e *Engine) Reset() {
	p := e.params
	e.store.Clear()
	e.Paused = false
	e.ticks = 0
	for i := 0; i < p.InitialBodies; i++ {
		mass := p.InitMassMin + e.rng.Float64()*(p.InitMassMax-p.InitMassMin)
		e.store.Spawn(body.Body{
			Pos: body.Vec2{
				X: e.rng.Float64() * p.ViewportW,
				Y: e.rng.Float64() * p.ViewportH,
			},
			Vel: body.Vec2{
				X: (e.rng.Float64()*2 - 1) * p.InitSpeed,
				Y: (e.rng.Float64()*2 - 1) * p.InitSpeed,
			},
			Mass:   mass,
			Radius: p.RadiusFor(mass),
			Color:  body.RandomColor(e.rng),
		})
	}
}

// Spawn adds a body at the given position. It returns
// ErrCapacityExceeded when the arena is full, leaving state unchanged.
func (e *Engine) Spawn(x, y, mass, vx, vy float64) (int, error) {
	idx, ok := e.store.Spawn(body.Body{
		Pos:    body.Vec2{X: x, Y: y},
		Vel:    body.Vec2{X: vx, Y: vy},
		Mass:   mass,
		Radius: e.params.RadiusFor(mass),
		Color:  body.RandomColor(e.rng),
	})
	if !ok {
		return -1, ErrCapacityExceeded
	}
	return idx, nil
}

// DeleteAt tombstones the nearest active body whose radius contains the
// point, returning its index, or ErrBodyNotFound when none does.
func (e *Engine) DeleteAt(x, y float64) (int, error) {
	pt := body.Vec2{X: x, Y: y}
	bodies := e.store.Bodies()
	best := -1
	bestDist := math.MaxFloat64
	for i := range bodies {
		b := &bodies[i]
		if !b.Active {
			continue
		}
		d := b.Pos.Sub(pt).Len()
		if d <= b.Radius && d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return -1, ErrBodyNotFound
	}
	e.store.Remove(best)
	return best, nil
}

// Tick advances the simulation by one fixed timestep. A paused engine
// does nothing. An unstable state abandons the tick before any mutation
// and pauses the engine.
func (e *Engine) Tick() TickOutcome {
	var out TickOutcome
	if e.Paused {
		return out
	}
	if !e.checkStability(&out) {
		e.Paused = true
		out.BecameUnstable = true
		return out
	}
	e.accumulate()
	e.integrate(&out)
	e.resolveCollisions(&out)
	e.ticks++
	out.RanPhysics = true
	return out
}

// Snapshot copies the arena for a renderer, tombstones included so that
// indices line up with Collision and Advisory records.
func (e *Engine) Snapshot() []BodyView {
	bodies := e.store.Bodies()
	views := make([]BodyView, len(bodies))
	for i := range bodies {
		b := &bodies[i]
		r, g, bl := b.Color.RGB255()
		views[i] = BodyView{
			Pos:    b.Pos,
			Vel:    b.Vel,
			Mass:   b.Mass,
			Radius: b.Radius,
			R:      r,
			G:      g,
			B:      bl,
			Active: b.Active,
		}
	}
	return views
}

// BodyCount counts all arena slots, tombstones included.
func (e *Engine) BodyCount() int { return e.store.Len() }

// ActiveBodies counts live bodies.
func (e *Engine) ActiveBodies() int { return e.store.ActiveCount() }
