package metrics

import "github.com/san-kum/superball/internal/sim"

// Slack is the fraction of cable samples carrying less than threshold.
// A tensegrity with slack cables has lost its shape.
type Slack struct {
	name      string
	threshold float64
	slack     int
	total     int
}

func NewSlack(threshold float64) *Slack {
	return &Slack{
		name:      "slack",
		threshold: threshold,
	}
}

func (s *Slack) Name() string {
	return s.name
}

func (s *Slack) Observe(x sim.State, u sim.Control, t float64) {
	for _, v := range x {
		if v < s.threshold {
			s.slack++
		}
	}
	s.total += len(x)
}

func (s *Slack) Value() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.slack) / float64(s.total)
}

func (s *Slack) Reset() {
	s.slack = 0
	s.total = 0
}
