package core

// Length units scale with gravity: at 98.1 lengths are in decimetres.
const (
	DefaultGravity      = 98.1
	DefaultGroundHeight = 0.0
)

type WorldConfig struct {
	Gravity      float64 `yaml:"gravity"`
	GroundHeight float64 `yaml:"ground_height"`
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:      DefaultGravity,
		GroundHeight: DefaultGroundHeight,
	}
}

// World is the environment structures are set up in.
type World struct {
	cfg WorldConfig
}

func NewWorld(cfg WorldConfig) *World {
	return &World{cfg: cfg}
}

func (w *World) Config() WorldConfig   { return w.cfg }
func (w *World) Gravity() float64      { return w.cfg.Gravity }
func (w *World) GroundHeight() float64 { return w.cfg.GroundHeight }
