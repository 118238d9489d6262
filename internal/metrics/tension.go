package metrics

import "github.com/san-kum/superball/internal/sim"

// MeanTension averages the mean cable tension over all samples.
type MeanTension struct {
	name    string
	sum     float64
	samples int
}

func NewMeanTension() *MeanTension {
	return &MeanTension{name: "mean_tension"}
}

func (m *MeanTension) Name() string { return m.name }

func (m *MeanTension) Observe(x sim.State, u sim.Control, t float64) {
	m.sum += x.Mean()
	m.samples++
}

func (m *MeanTension) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanTension) Reset() {
	m.sum = 0
	m.samples = 0
}

// PeakTension is the largest tension any cable reached.
type PeakTension struct {
	name string
	peak float64
}

func NewPeakTension() *PeakTension {
	return &PeakTension{name: "peak_tension"}
}

func (p *PeakTension) Name() string { return p.name }

func (p *PeakTension) Observe(x sim.State, u sim.Control, t float64) {
	if v := x.Max(); v > p.peak {
		p.peak = v
	}
}

func (p *PeakTension) Value() float64 { return p.peak }
func (p *PeakTension) Reset()         { p.peak = 0 }
