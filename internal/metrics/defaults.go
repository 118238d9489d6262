package metrics

import "github.com/san-kum/superball/internal/sim"

// Defaults returns a fresh instance of every metric for a model with the
// given cable stiffness.
func Defaults(stiffness float64) []sim.Metric {
	return []sim.Metric{
		NewMeanTension(),
		NewPeakTension(),
		NewSlack(1.0),
		NewControlEffort(),
		NewElasticEnergy(stiffness),
	}
}
