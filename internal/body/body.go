package body

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Body is one point mass. Acc is transient scratch state owned by the
// force pass; it carries no meaning between ticks.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Acc    Vec2
	Mass   float64
	Radius float64
	Active bool
	Color  colorful.Color
}

// RandomColor draws a body color from the given source so that seeded
// runs stay reproducible. Saturation and value are kept high enough to
// read against a dark background.
func RandomColor(rng *rand.Rand) colorful.Color {
	h := rng.Float64() * 360.0
	s := 0.55 + 0.45*rng.Float64()
	v := 0.70 + 0.30*rng.Float64()
	return colorful.Hsv(h, s, v)
}
