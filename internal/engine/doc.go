// Package engine is the gravitational simulation core: force
// accumulation, symplectic integration, stability checking and
// collision merging over a shared body arena.
//
// An [Engine] owns all mutable simulation state, including the pause
// flag and the one-shot velocity advisory. One call to [Engine.Tick]
// advances the system by one fixed timestep:
//
//	validate state -> accumulate forces -> integrate -> resolve collisions
//
// The engine never prints; everything a front end might report is
// returned on the [TickOutcome]. All randomness is confined to
// [Engine.Spawn] and [Engine.Reset], so repeated ticks over a fixed
// arena are deterministic.
package engine
