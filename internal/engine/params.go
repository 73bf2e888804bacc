package engine

import "fmt"

// Params carries every tuning constant the engine accepts. Values are
// tuned for visual behavior, not physical units.
type Params struct {
	G         float64 // gravitational constant
	Softening float64 // added to the squared distance in the force law
	Dt        float64 // fixed timestep

	MaxVelocity float64 // speed limit applied after each velocity update
	MaxMass     float64 // upper bound on merged mass
	MaxRadius   float64 // upper bound on derived radius

	Capacity        int     // arena slot count
	BaseRadius      float64 // radius offset before the mass term
	MassRadiusRatio float64 // radius = BaseRadius + mass/MassRadiusRatio

	ViewportW float64 // wrap bound, x axis
	ViewportH float64 // wrap bound, y axis

	DriftMargin float64 // distance beyond the viewport that trips the drift advisory

	InitialBodies int     // size of the randomized batch on reset
	InitMassMin   float64 // lower bound of the batch mass range
	InitMassMax   float64 // upper bound of the batch mass range
	InitSpeed     float64 // batch velocity components drawn from [-InitSpeed, InitSpeed)

	Seed int64
}

func DefaultParams() Params {
	return Params{
		G:               0.5,
		Softening:       5.0,
		Dt:              0.1,
		MaxVelocity:     50.0,
		MaxMass:         20000.0,
		MaxRadius:       60.0,
		Capacity:        100,
		BaseRadius:      5.0,
		MassRadiusRatio: 200.0,
		ViewportW:       1200.0,
		ViewportH:       800.0,
		DriftMargin:     1000.0,
		InitialBodies:   5,
		InitMassMin:     100.0,
		InitMassMax:     1000.0,
		InitSpeed:       1.0,
	}
}

func (p Params) Validate() error {
	if p.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidParams, p.Dt)
	}
	if p.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidParams, p.Capacity)
	}
	if p.Softening <= 0 {
		return fmt.Errorf("%w: softening must be positive, got %g", ErrInvalidParams, p.Softening)
	}
	if p.MaxVelocity <= 0 || p.MaxMass <= 0 || p.MaxRadius <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidParams)
	}
	if p.MassRadiusRatio <= 0 {
		return fmt.Errorf("%w: mass/radius ratio must be positive, got %g", ErrInvalidParams, p.MassRadiusRatio)
	}
	if p.ViewportW <= 0 || p.ViewportH <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %gx%g", ErrInvalidParams, p.ViewportW, p.ViewportH)
	}
	if p.InitialBodies < 0 || p.InitialBodies > p.Capacity {
		return fmt.Errorf("%w: initial bodies %d outside 0..%d", ErrInvalidParams, p.InitialBodies, p.Capacity)
	}
	return nil
}

// RadiusFor derives a collision radius from mass, clamped to MaxRadius.
func (p Params) RadiusFor(mass float64) float64 {
	r := p.BaseRadius + mass/p.MassRadiusRatio
	if r > p.MaxRadius {
		r = p.MaxRadius
	}
	return r
}
