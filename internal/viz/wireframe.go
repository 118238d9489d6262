package viz

import (
	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
)

// collector gathers the edges of a built structure.
type collector struct {
	w *Wireframe
}

func (c *collector) VisitRod(r *core.Rod) {
	from, to := r.Endpoints()
	kind := EdgeRod
	if r.Tags().Contains(superball.TagMotor) {
		kind = EdgeMotor
	}
	c.w.Add(Edge{Name: r.Name(), Start: from, End: to, Kind: kind})
}

func (c *collector) VisitActuator(a *core.BasicActuator) {
	from, to := a.Endpoints()
	c.w.Add(Edge{Name: a.Name(), Start: from, End: to, Kind: EdgeMuscle, Tension: a.Tension()})
}

// FromModel collects a wireframe from a built model. An unbuilt model
// yields an empty wireframe.
func FromModel(m core.Model) *Wireframe {
	c := &collector{w: NewWireframe()}
	m.Accept(c)
	return c.w
}
