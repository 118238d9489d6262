package creator

import (
	"fmt"

	"github.com/san-kum/superball/internal/core"
)

// Parent receives the models built from a structure.
type Parent interface {
	AddChild(m core.Model) error
}

// StructureInfo pairs a structure with the build spec that resolves its tags.
type StructureInfo struct {
	structure *Structure
	spec      *BuildSpec
}

func NewStructureInfo(s *Structure, spec *BuildSpec) *StructureInfo {
	return &StructureInfo{structure: s, spec: spec}
}

// BuildInto builds every pair and adds the results to parent in pair order.
// Nothing is added unless every pair builds.
func (si *StructureInfo) BuildInto(parent Parent, w *core.World) error {
	if w == nil {
		return core.ErrNilWorld
	}

	for i, n := range si.structure.Nodes() {
		if n.Y() < w.GroundHeight() {
			return fmt.Errorf("%w: node %d at y=%.4f, ground at %.4f", ErrBelowGround, i, n.Y(), w.GroundHeight())
		}
	}

	built := make([]core.Model, 0, len(si.structure.Pairs()))
	for _, p := range si.structure.Pairs() {
		from, err := si.structure.Node(p.From)
		if err != nil {
			return fmt.Errorf("pair %s: %w", p.Name(), err)
		}
		to, err := si.structure.Node(p.To)
		if err != nil {
			return fmt.Errorf("pair %s: %w", p.Name(), err)
		}

		b, _, ok := si.spec.Resolve(p.Tags)
		if !ok {
			return fmt.Errorf("%w: pair %s tagged %q", ErrNoBuilder, p.Name(), p.Tags.String())
		}

		m, err := b.Build(p, from, to)
		if err != nil {
			return fmt.Errorf("pair %s: %w", p.Name(), err)
		}
		built = append(built, m)
	}

	for _, m := range built {
		if err := parent.AddChild(m); err != nil {
			return err
		}
	}
	return nil
}
