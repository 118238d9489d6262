package superball

import (
	"fmt"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/creator"
	"go.uber.org/zap"
)

// Model is a built SUPERball. Controllers attach as observers and drive the
// actuators returned by Actuators.
type Model struct {
	core.Base
	observers core.Subject[*Model]
	cfg       Config
	structure *creator.Structure
	actuators []*core.BasicActuator
	rods      []*core.Rod
	built     bool
	log       *zap.Logger
}

type Option func(*Model)

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

func NewModel(cfg Config, opts ...Option) *Model {
	m := &Model{
		Base: core.NewBase(core.Tags{"superball"}),
		cfg:  cfg,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Config() Config { return m.cfg }

// Attach registers an observer notified on setup, every step and teardown.
func (m *Model) Attach(o core.Observer[*Model]) { m.observers.Attach(o) }

// Setup builds the structure into m, collects the actuators, notifies the
// observers and sets up the children.
func (m *Model) Setup(w *core.World) error {
	if m.built {
		return core.ErrAlreadySetup
	}
	if w == nil {
		return core.ErrNilWorld
	}
	if err := m.cfg.Validate(); err != nil {
		return fmt.Errorf("superball: %w", err)
	}

	s, err := NewStructure(m.cfg)
	if err != nil {
		return fmt.Errorf("superball: %w", err)
	}

	spec := creator.NewBuildSpec()
	if err := spec.AddBuilder(TagRod, creator.NewRodInfo(m.cfg.RodConfig())); err != nil {
		return err
	}
	if err := spec.AddBuilder(TagMuscle, creator.NewActuatorInfo(m.cfg.ActuatorConfig())); err != nil {
		return err
	}
	if err := spec.AddBuilder(TagMotor, creator.NewRodInfo(m.cfg.MotorConfig())); err != nil {
		return err
	}

	if err := creator.NewStructureInfo(s, spec).BuildInto(&m.Base, w); err != nil {
		return fmt.Errorf("superball: build: %w", err)
	}

	m.structure = s
	m.actuators = core.Filter[*core.BasicActuator](m.Descendants())
	m.rods = core.Filter[*core.Rod](m.Descendants())
	m.built = true

	m.log.Info("superball built",
		zap.Int("nodes", len(s.Nodes())),
		zap.Int("rods", len(m.rods)),
		zap.Int("actuators", len(m.actuators)),
		zap.Float64("mass", m.Mass()),
	)

	m.observers.NotifySetup(m)

	return m.Base.Setup(w)
}

// Step notifies the observers and then steps the children. dt must be
// strictly positive.
func (m *Model) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: dt is not positive (%g)", core.ErrInvalidArgument, dt)
	}
	if !m.built {
		return core.ErrNotSetup
	}
	m.observers.NotifyStep(m, dt)
	return m.Base.Step(dt)
}

// Teardown notifies the observers and releases the built children. The
// model can be set up again afterwards.
func (m *Model) Teardown() {
	m.observers.NotifyTeardown(m)
	m.Base.Teardown()
	m.actuators = nil
	m.rods = nil
	m.structure = nil
	if m.built {
		m.log.Debug("superball torn down")
	}
	m.built = false
}

func (m *Model) Accept(v core.Visitor) {
	m.Base.Accept(v)
}

// Actuators returns the actuators built by Setup; nil before setup.
func (m *Model) Actuators() []*core.BasicActuator { return m.actuators }

// Rods returns the rod and motor segments built by Setup.
func (m *Model) Rods() []*core.Rod { return m.rods }

// Structure returns the placed structure the model was built from.
func (m *Model) Structure() *creator.Structure { return m.structure }

func (m *Model) Built() bool { return m.built }

// Mass is the total mass of the rigid segments.
func (m *Model) Mass() float64 {
	total := 0.0
	for _, r := range m.rods {
		total += r.Mass()
	}
	return total
}
