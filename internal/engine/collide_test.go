package engine

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lucasb-eyer/go-colorful"
)

func emptyEngine(p Params) *Engine {
	p.InitialBodies = 0
	e, err := New(p)
	Expect(err).NotTo(HaveOccurred())
	return e
}

var _ = Describe("collision resolver", func() {
	var (
		e   *Engine
		out TickOutcome
	)

	BeforeEach(func() {
		e = emptyEngine(DefaultParams())
		out = TickOutcome{}
	})

	Describe("overlap detection", func() {
		It("collides on strict sum-of-radii overlap", func() {
			e.Spawn(100, 400, 500, 0, 0)
			e.Spawn(109, 400, 500, 0, 0)
			e.store.At(0).Radius = 5
			e.store.At(1).Radius = 5

			e.resolveCollisions(&out)
			Expect(out.Collisions).To(HaveLen(1))
		})

		It("does not collide at exactly the sum of radii", func() {
			e.Spawn(100, 400, 500, 0, 0)
			e.Spawn(110, 400, 500, 0, 0)
			e.store.At(0).Radius = 5
			e.store.At(1).Radius = 5

			e.resolveCollisions(&out)
			Expect(out.Collisions).To(BeEmpty())
		})
	})

	Describe("merging", func() {
		It("conserves momentum with the heavier body absorbing", func() {
			e.Spawn(600, 400, 100, 2, 0)
			e.Spawn(600, 400, 300, 0, 0)

			e.resolveCollisions(&out)

			Expect(out.Collisions).To(Equal([]Collision{{Absorber: 1, Absorbed: 0, NewMass: 400}}))
			absorber := e.store.At(1)
			Expect(absorber.Active).To(BeTrue())
			Expect(absorber.Mass).To(Equal(400.0))
			Expect(absorber.Vel.X).To(BeNumerically("~", 0.5, 1e-12))
			Expect(absorber.Vel.Y).To(BeZero())
			Expect(absorber.Radius).To(Equal(e.params.RadiusFor(400)))
			Expect(e.store.At(0).Active).To(BeFalse())
		})

		It("breaks mass ties toward the lower index", func() {
			e.Spawn(600, 400, 250, 0, 0)
			e.Spawn(600, 400, 250, 0, 0)

			e.resolveCollisions(&out)

			Expect(out.Collisions).To(HaveLen(1))
			Expect(out.Collisions[0].Absorber).To(Equal(0))
			Expect(out.Collisions[0].Absorbed).To(Equal(1))
		})

		It("blends colors weighted by the absorbed mass fraction", func() {
			e.Spawn(600, 400, 300, 0, 0)
			e.Spawn(600, 400, 100, 0, 0)
			a := colorful.Color{R: 1, G: 0, B: 0}
			b := colorful.Color{R: 0, G: 0, B: 1}
			e.store.At(0).Color = a
			e.store.At(1).Color = b

			e.resolveCollisions(&out)

			got := e.store.At(0).Color
			want := a.BlendRgb(b, 100.0/400.0)
			Expect(got.R).To(BeNumerically("~", want.R, 1e-12))
			Expect(got.G).To(BeNumerically("~", want.G, 1e-12))
			Expect(got.B).To(BeNumerically("~", want.B, 1e-12))
		})

		It("clamps the merged radius to the maximum", func() {
			p := DefaultParams()
			p.MaxMass = 1e9
			e = emptyEngine(p)
			e.Spawn(600, 400, 15000, 0, 0)
			e.Spawn(600, 400, 15000, 0, 0)

			e.resolveCollisions(&out)
			Expect(e.store.At(0).Radius).To(Equal(p.MaxRadius))
		})
	})

	Describe("mass limit", func() {
		It("clamps the merged mass and hard-pauses the simulation", func() {
			e.Spawn(600, 400, 15000, 4, 0)
			e.Spawn(600, 400, 10000, 0, 0)

			e.resolveCollisions(&out)

			absorber := e.store.At(0)
			Expect(absorber.Mass).To(Equal(e.params.MaxMass))
			Expect(out.MassLimitHit).To(BeTrue())
			Expect(e.Paused).To(BeTrue())
			Expect(out.Advisories).To(ContainElement(HaveField("Kind", AdvisoryMassClamped)))

			// momentum weights use the pre-clamp masses over the clamped
			// total: (15000*4 + 10000*0) / 20000
			Expect(absorber.Vel.X).To(BeNumerically("~", 3.0, 1e-12))
		})

		It("advises on every clamped merge, not just the first", func() {
			p := DefaultParams()
			p.MaxMass = 1000
			e = emptyEngine(p)
			e.Spawn(100, 100, 900, 0, 0)
			e.Spawn(100, 100, 900, 0, 0)
			e.Spawn(900, 700, 900, 0, 0)
			e.Spawn(900, 700, 900, 0, 0)

			e.resolveCollisions(&out)

			count := 0
			for _, adv := range out.Advisories {
				if adv.Kind == AdvisoryMassClamped {
					count++
				}
			}
			Expect(count).To(Equal(2))
		})
	})

	Describe("simultaneous overlaps", func() {
		It("resolves pairs in ascending index order and skips absorbed bodies", func() {
			e.Spawn(600, 400, 100, 0, 0)
			e.Spawn(600, 400, 50, 0, 0)
			e.Spawn(600, 400, 60, 0, 0)

			e.resolveCollisions(&out)

			Expect(out.Collisions).To(Equal([]Collision{
				{Absorber: 0, Absorbed: 1, NewMass: 150},
				{Absorber: 0, Absorbed: 2, NewMass: 210},
			}))
			Expect(e.store.At(0).Mass).To(Equal(210.0))
			Expect(e.store.At(1).Active).To(BeFalse())
			Expect(e.store.At(2).Active).To(BeFalse())
		})

		It("never reads a body absorbed earlier in the same pass", func() {
			// body 0 is absorbed by the heavier body 1; the 0-2 pair must
			// then be skipped even though they still overlap spatially
			e.Spawn(600, 400, 100, 0, 0)
			e.Spawn(600, 400, 500, 0, 0)
			e.Spawn(600, 400, 50, 0, 0)

			e.resolveCollisions(&out)

			for _, c := range out.Collisions {
				Expect(c.Absorber).NotTo(Equal(0))
			}
			Expect(e.store.At(1).Mass).To(Equal(650.0))
		})
	})
})
