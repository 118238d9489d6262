package metrics

import (
	"math"

	"github.com/san-kum/superball/internal/sim"
)

// ControlEffort is the mean total rest length travel per step. One unit is
// one length unit (a decimetre) of cable paid in or out: each step adds the
// absolute rest length change of every actuator, and the sum is divided by
// the number of observed steps.
type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{
		name: "control_effort",
	}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) Observe(x sim.State, u sim.Control, t float64) {
	for _, val := range u {
		c.sum += math.Abs(val)
	}
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}
