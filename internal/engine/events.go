package engine

import "github.com/Syrthax/gravity-sim/internal/body"

type AdvisoryKind int

const (
	// AdvisoryVelocityClamped is emitted the first time any body's speed
	// is clamped; later clamps stay silent for the rest of the process.
	AdvisoryVelocityClamped AdvisoryKind = iota

	// AdvisoryDrift flags a body far outside the viewport. Informational
	// only; the tick proceeds.
	AdvisoryDrift

	// AdvisoryUnstable flags a non-finite position or velocity. The tick
	// is abandoned and the engine pauses itself.
	AdvisoryUnstable

	// AdvisoryMassClamped is emitted whenever a merge exceeds the mass
	// limit. The engine pauses itself.
	AdvisoryMassClamped
)

func (k AdvisoryKind) String() string {
	switch k {
	case AdvisoryVelocityClamped:
		return "velocity_clamped"
	case AdvisoryDrift:
		return "drift"
	case AdvisoryUnstable:
		return "unstable"
	case AdvisoryMassClamped:
		return "mass_clamped"
	default:
		return "unknown"
	}
}

// Advisory is a structured notification about a correction or anomaly.
// Body is the arena index of the body involved.
type Advisory struct {
	Kind   AdvisoryKind
	Body   int
	Detail string
}

// Collision records one merge: Absorbed was deactivated and folded into
// Absorber, whose mass is now NewMass.
type Collision struct {
	Absorber int
	Absorbed int
	NewMass  float64
}

// TickOutcome reports everything one Tick did. A paused engine returns a
// zero outcome.
type TickOutcome struct {
	RanPhysics     bool
	BecameUnstable bool
	MassLimitHit   bool
	Collisions     []Collision
	Advisories     []Advisory
}

// BodyView is a read-only copy of one arena slot for rendering.
type BodyView struct {
	Pos     body.Vec2
	Vel     body.Vec2
	Mass    float64
	Radius  float64
	R, G, B uint8
	Active  bool
}
