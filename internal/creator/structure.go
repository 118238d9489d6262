// Package creator turns tagged structure descriptions into built models.
package creator

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/superball/internal/core"
)

// Pair is an edge between two nodes. Its tags select the builder.
type Pair struct {
	From, To int
	Tags     core.Tags
}

func (p Pair) Name() string {
	return fmt.Sprintf("%d-%d", p.From, p.To)
}

// Structure is the pre-physics description of a tensegrity: nodes and
// tagged pairs.
type Structure struct {
	nodes []mgl64.Vec3
	pairs []Pair
}

func NewStructure() *Structure {
	return &Structure{}
}

// AddNode appends a node and returns its index.
func (s *Structure) AddNode(x, y, z float64) int {
	s.nodes = append(s.nodes, mgl64.Vec3{x, y, z})
	return len(s.nodes) - 1
}

// AddPair records an edge. Indices are checked when the structure is built.
func (s *Structure) AddPair(from, to int, tags ...string) {
	s.pairs = append(s.pairs, Pair{From: from, To: to, Tags: core.Tags(tags).Clone()})
}

// Move translates every node by offset.
func (s *Structure) Move(offset mgl64.Vec3) {
	for i := range s.nodes {
		s.nodes[i] = s.nodes[i].Add(offset)
	}
}

// AddRotation rotates every node by angle radians about the axis through
// point, right-handed.
func (s *Structure) AddRotation(point, axis mgl64.Vec3, angle float64) error {
	if axis.Len() == 0 {
		return ErrZeroAxis
	}
	q := mgl64.QuatRotate(angle, axis.Normalize())
	for i := range s.nodes {
		s.nodes[i] = q.Rotate(s.nodes[i].Sub(point)).Add(point)
	}
	return nil
}

func (s *Structure) Nodes() []mgl64.Vec3 { return s.nodes }
func (s *Structure) Pairs() []Pair       { return s.pairs }

func (s *Structure) Node(i int) (mgl64.Vec3, error) {
	if i < 0 || i >= len(s.nodes) {
		return mgl64.Vec3{}, fmt.Errorf("%w: %d (have %d nodes)", ErrNodeOutOfRange, i, len(s.nodes))
	}
	return s.nodes[i], nil
}

func (s *Structure) PairsTagged(tag string) []Pair {
	var out []Pair
	for _, p := range s.pairs {
		if p.Tags.Contains(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Distance returns the distance between nodes a and b.
func (s *Structure) Distance(a, b int) (float64, error) {
	pa, err := s.Node(a)
	if err != nil {
		return 0, err
	}
	pb, err := s.Node(b)
	if err != nil {
		return 0, err
	}
	return pb.Sub(pa).Len(), nil
}
