package viz

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera orbits a centre point and projects world coordinates to the
// screen with a simple perspective divide.
type Camera struct {
	Center     mgl64.Vec3
	Distance   float64
	Near       float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.01, c.Zoom/1.2) }

// Fit centres the camera on the wireframe and scales it to fill most of
// the view.
func (c *Camera) Fit(w *Wireframe) {
	pts := w.Points()
	if len(pts) == 0 {
		return
	}
	center := mgl64.Vec3{}
	for _, p := range pts {
		center = center.Add(p)
	}
	center = center.Mul(1 / float64(len(pts)))

	radius := 0.0
	for _, p := range pts {
		radius = math.Max(radius, p.Sub(center).Len())
	}
	c.Center = center
	c.RotX, c.RotY = 0, 0
	if radius > 0 {
		c.Zoom = 1.2 / radius
	}
}

// View moves p into camera space.
func (c *Camera) View(p mgl64.Vec3) mgl64.Vec3 {
	rot := mgl64.Rotate3DY(c.RotY).Mul3(mgl64.Rotate3DX(c.RotX))
	return rot.Mul3x1(p.Sub(c.Center)).Mul(c.Zoom)
}

// InFront reports whether p lies in front of the near plane.
func (c *Camera) InFront(p mgl64.Vec3) bool {
	return c.View(p).Z() < c.Distance-c.Near
}

// Project converts world coordinates to screen coordinates of a sw x sh
// surface. Returns x, y, depth, and visibility.
func (c *Camera) Project(p mgl64.Vec3, sw, sh int) (int, int, float64, bool) {
	if !c.InFront(p) {
		return 0, 0, 0, false
	}
	v := c.View(p)
	scale := c.Distance / (c.Distance - v.Z())
	pScale := float64(min(sw, sh)) / 3.0
	sx := int(v.X()*scale*pScale) + sw/2
	sy := int(-v.Y()*scale*pScale) + sh/2
	return sx, sy, v.Z(), sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type EdgeKind int

const (
	EdgeRod EdgeKind = iota
	EdgeMotor
	EdgeMuscle
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeRod:
		return "rod"
	case EdgeMotor:
		return "motor"
	default:
		return "muscle"
	}
}

type Edge struct {
	Name       string
	Start, End mgl64.Vec3
	Kind       EdgeKind
	Tension    float64
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) Add(e Edge) { w.Edges = append(w.Edges, e) }

func (w *Wireframe) Count(kind EdgeKind) int {
	n := 0
	for _, e := range w.Edges {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Points returns every edge endpoint.
func (w *Wireframe) Points() []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, 0, 2*len(w.Edges))
	for _, e := range w.Edges {
		pts = append(pts, e.Start, e.End)
	}
	return pts
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Kind           EdgeKind
	Tension        float64
}

// Project projects every edge with at least one visible endpoint, far edges
// first. Edges crossing the near plane are dropped.
func Project(w *Wireframe, cam *Camera, sw, sh int) []ProjectedEdge {
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		if !cam.InFront(e.Start) || !cam.InFront(e.End) {
			continue
		}
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Kind, e.Tension})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	return proj
}

// Render3D draws the wireframe to the canvas. Muscles are dotted so bars
// stand out.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	for _, e := range Project(w, cam, c.PixelWidth(), c.PixelHeight()) {
		if e.Kind == EdgeMuscle {
			dottedLine(c, e.X1, e.Y1, e.X2, e.Y2)
			continue
		}
		c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
	}
}

func dottedLine(c *Canvas, x0, y0, x1, y1 int) {
	n := max(absInt(x1-x0), absInt(y1-y0))
	if n == 0 {
		c.Set(x0, y0)
		return
	}
	for i := 0; i <= n; i += 2 {
		t := float64(i) / float64(n)
		c.Set(x0+int(math.Round(t*float64(x1-x0))), y0+int(math.Round(t*float64(y1-y0))))
	}
}
