package superball

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/superball/internal/creator"
)

const (
	ThirdLength = 2.26155 // 226.155 mm
	MotorLength = 1.9769  // 197.69 mm

	NumNodes = 24
	NumBars  = 6
)

// Tags resolved by the build spec.
const (
	TagRod    = "rod"
	TagMotor  = "motor"
	TagMuscle = "muscle"
)

var (
	// Placement keeps every node above the ground. The quarter turn about
	// +Y stops glitches from putting a rod below sloped ground.
	Offset        = mgl64.Vec3{0, 10, 0}
	RotationPoint = mgl64.Vec3{0, 0, 0}
	RotationAxis  = mgl64.Vec3{0, 1, 0}
	RotationAngle = math.Pi / 2
)

// AddNodes declares the 24 bar nodes. Each bar contributes four collinear
// nodes: rod end, motor end, motor end, rod end.
func AddNodes(s *creator.Structure, c Config) {
	end := ThirdLength + MotorLength/2
	mid := MotorLength / 2
	along := [4]float64{-end, -mid, mid, end}

	// bars along z, offset in y
	for _, y := range []float64{-c.RodSpace, c.RodSpace} {
		for _, z := range along {
			s.AddNode(0, y, z)
		}
	}
	// bars along x, offset in z
	for _, z := range []float64{c.RodSpace, -c.RodSpace} {
		for _, x := range along {
			s.AddNode(x, 0, z)
		}
	}
	// bars along y, offset in x
	for _, x := range []float64{-c.RodSpace, c.RodSpace} {
		for _, y := range along {
			s.AddNode(x, y, 0)
		}
	}
}

// AddRods joins the nodes of each bar: rod, motor, rod.
func AddRods(s *creator.Structure) {
	for bar := 0; bar < NumBars; bar++ {
		n := bar * 4
		s.AddPair(n, n+1, TagRod)
		s.AddPair(n+1, n+2, TagMotor)
		s.AddPair(n+2, n+3, TagRod)
	}
}

// muscles lists the cable actuators as node pairs. 0-20 repeats 20-0.
var muscles = [][2]int{
	{16, 0}, {16, 3}, {16, 8}, {16, 12},
	{19, 4}, {19, 7}, {19, 8}, {19, 12},
	{20, 0}, {20, 3}, {20, 11}, {20, 15},
	{23, 7}, {23, 4}, {23, 11}, {23, 15},
	{0, 20}, {0, 12}, {0, 15},
	{3, 8}, {3, 11},
	{4, 12}, {4, 15},
	{7, 8}, {7, 11},
}

func AddActuators(s *creator.Structure) {
	for _, m := range muscles {
		s.AddPair(m[0], m[1], TagMuscle)
	}
}

// NewStructure declares the geometry and places it in the world: moved up by
// Offset, then rotated by RotationAngle about RotationAxis.
func NewStructure(c Config) (*creator.Structure, error) {
	s := creator.NewStructure()
	AddNodes(s, c)
	AddRods(s)
	AddActuators(s)

	s.Move(Offset)
	if err := s.AddRotation(RotationPoint, RotationAxis, RotationAngle); err != nil {
		return nil, err
	}
	return s, nil
}
