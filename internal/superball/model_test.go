package superball_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
)

type recorder struct {
	events    []string
	dts       []float64
	actuators int
}

func (r *recorder) OnSetup(m *superball.Model) {
	r.events = append(r.events, "setup")
	r.actuators = len(m.Actuators())
}

func (r *recorder) OnStep(_ *superball.Model, dt float64) {
	r.events = append(r.events, "step")
	r.dts = append(r.dts, dt)
}

func (r *recorder) OnTeardown(*superball.Model) {
	r.events = append(r.events, "teardown")
}

type counter struct {
	rods, motors, muscles int
}

func (c *counter) VisitRod(r *core.Rod) {
	if r.Tags().Contains(superball.TagMotor) {
		c.motors++
		return
	}
	c.rods++
}

func (c *counter) VisitActuator(*core.BasicActuator) { c.muscles++ }

var _ = Describe("Model", func() {
	var (
		model *superball.Model
		obs   *recorder
		world *core.World
	)

	BeforeEach(func() {
		model = superball.NewModel(superball.DefaultConfig())
		obs = &recorder{}
		model.Attach(obs)
		world = core.NewWorld(core.DefaultWorldConfig())
	})

	When("set up", func() {
		BeforeEach(func() {
			Expect(model.Setup(world)).To(Succeed())
		})

		AfterEach(func() {
			model.Teardown()
		})

		It("exposes only actuators", func() {
			acts := model.Actuators()
			Expect(acts).NotTo(BeEmpty())
			Expect(acts).To(HaveLen(25))
			for _, a := range acts {
				Expect(a.Tags()).To(ContainElement(superball.TagMuscle))
			}
		})

		It("builds twelve rods and six motors", func() {
			Expect(model.Rods()).To(HaveLen(18))

			c := &counter{}
			model.Accept(c)
			Expect(c.rods).To(Equal(12))
			Expect(c.motors).To(Equal(6))
			Expect(c.muscles).To(Equal(25))
		})

		It("uses the motor radius for motors", func() {
			for _, r := range model.Rods() {
				if r.Tags().Contains(superball.TagMotor) {
					Expect(r.Config().Radius).To(Equal(superball.DefaultMotorRadius))
					Expect(r.Length()).To(BeNumerically("~", superball.MotorLength, 1e-9))
				} else {
					Expect(r.Config().Radius).To(Equal(superball.DefaultRadius))
					Expect(r.Length()).To(BeNumerically("~", superball.ThirdLength, 1e-9))
				}
			}
		})

		It("starts every actuator at pretension", func() {
			for _, a := range model.Actuators() {
				Expect(a.Tension()).To(BeNumerically("~", superball.DefaultPretension, 1e-6))
			}
		})

		It("notifies observers after the actuators are collected", func() {
			Expect(obs.events).To(Equal([]string{"setup"}))
			Expect(obs.actuators).To(Equal(25))
		})

		It("places the structure above the ground", func() {
			for _, n := range model.Structure().Nodes() {
				Expect(n.Y()).To(BeNumerically(">", world.GroundHeight()))
			}
		})

		It("rejects a second setup", func() {
			Expect(model.Setup(world)).To(MatchError(core.ErrAlreadySetup))
		})

		It("forwards positive steps to observers and actuators", func() {
			a := model.Actuators()[0]
			Expect(a.SetControlInput(a.RestLength() - 0.1)).To(Succeed())

			Expect(model.Step(0.01)).To(Succeed())
			Expect(obs.events).To(Equal([]string{"setup", "step"}))
			Expect(obs.dts).To(Equal([]float64{0.01}))
			Expect(a.Tension()).To(BeNumerically(">", superball.DefaultPretension))
		})

		DescribeTable("rejects non-positive dt",
			func(dt float64) {
				Expect(model.Step(dt)).To(MatchError(core.ErrInvalidArgument))
				Expect(obs.events).To(Equal([]string{"setup"}))
			},
			Entry("zero", 0.0),
			Entry("negative", -0.01),
		)
	})

	It("fails to step before setup", func() {
		Expect(model.Step(0.01)).To(MatchError(core.ErrNotSetup))
	})

	It("still rejects a bad dt before setup", func() {
		Expect(model.Step(0)).To(MatchError(core.ErrInvalidArgument))
	})

	It("notifies teardown and can be rebuilt", func() {
		Expect(model.Setup(world)).To(Succeed())
		model.Teardown()

		Expect(obs.events).To(Equal([]string{"setup", "teardown"}))
		Expect(model.Actuators()).To(BeEmpty())
		Expect(model.Children()).To(BeEmpty())
		Expect(model.Built()).To(BeFalse())

		Expect(model.Setup(world)).To(Succeed())
		Expect(model.Actuators()).To(HaveLen(25))
		model.Teardown()
	})

	It("rejects an invalid config", func() {
		cfg := superball.DefaultConfig()
		cfg.Stiffness = 0
		m := superball.NewModel(cfg)
		Expect(m.Setup(world)).To(MatchError(core.ErrInvalidArgument))
		Expect(m.Children()).To(BeEmpty())
	})

	It("fails when the ground is above the structure", func() {
		high := core.NewWorld(core.WorldConfig{Gravity: core.DefaultGravity, GroundHeight: 8})
		Expect(model.Setup(high)).NotTo(Succeed())
		Expect(model.Built()).To(BeFalse())
	})

	It("records actuator history when enabled", func() {
		cfg := superball.DefaultConfig()
		cfg.History = true
		m := superball.NewModel(cfg)
		Expect(m.Setup(world)).To(Succeed())
		defer m.Teardown()

		for i := 0; i < 5; i++ {
			Expect(m.Step(0.01)).To(Succeed())
		}
		for _, a := range m.Actuators() {
			Expect(a.History()).To(HaveLen(5))
		}
	})
})

var _ = Describe("Structure", func() {
	It("keeps the motor length between nodes 1 and 2 after placement", func() {
		s, err := superball.NewStructure(superball.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		d, err := s.Distance(1, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(BeNumerically("~", superball.MotorLength, 1e-9))
	})

	It("moves then rotates node 0", func() {
		s, err := superball.NewStructure(superball.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		end := superball.ThirdLength + superball.MotorLength/2
		want := mgl64.Vec3{-end, 10 - superball.DefaultRodSpace, 0}
		Expect(s.Nodes()[0].ApproxEqualThreshold(want, 1e-9)).To(BeTrue(), "got %v want %v", s.Nodes()[0], want)
	})
})
