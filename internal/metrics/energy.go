package metrics

import "github.com/san-kum/superball/internal/sim"

// ElasticEnergy reports the energy stored in the cables at the last sample,
// T^2 / 2k summed over every cable.
type ElasticEnergy struct {
	name      string
	stiffness float64
	energy    float64
}

func NewElasticEnergy(stiffness float64) *ElasticEnergy {
	return &ElasticEnergy{
		name:      "elastic_energy",
		stiffness: stiffness,
	}
}

func (e *ElasticEnergy) Name() string {
	return e.name
}

func (e *ElasticEnergy) Observe(x sim.State, u sim.Control, t float64) {
	if e.stiffness <= 0 {
		return
	}
	total := 0.0
	for _, tension := range x {
		total += tension * tension / (2 * e.stiffness)
	}
	e.energy = total
}

func (e *ElasticEnergy) Value() float64 {
	return e.energy
}

func (e *ElasticEnergy) Reset() {
	e.energy = 0
}
