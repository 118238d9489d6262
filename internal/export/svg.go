// Package export renders structures and tension series as SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/superball/internal/viz"
)

var strokes = map[viz.EdgeKind]struct {
	color string
	width float64
}{
	viz.EdgeRod:    {"#e0e0e0", 3},
	viz.EdgeMotor:  {"#ffaa00", 6},
	viz.EdgeMuscle: {"#00ccff", 1},
}

func header(sb *strings.Builder, width, height int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
}

// StructureSVG projects the wireframe through cam and draws one line per
// edge, far edges first. Muscle opacity follows tension relative to the
// most loaded muscle.
func StructureSVG(w *viz.Wireframe, cam *viz.Camera, width, height int) string {
	if w == nil || cam == nil {
		return ""
	}

	peak := 0.0
	for _, e := range w.Edges {
		if e.Kind == viz.EdgeMuscle {
			peak = max(peak, e.Tension)
		}
	}

	var sb strings.Builder
	header(&sb, width, height)
	for _, e := range viz.Project(w, cam, width, height) {
		st := strokes[e.Kind]
		opacity := 1.0
		if e.Kind == viz.EdgeMuscle && peak > 0 {
			opacity = 0.3 + 0.7*e.Tension/peak
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f" class="%s"/>
`, e.X1, e.Y1, e.X2, e.Y2, st.color, st.width, opacity, e.Kind))
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	var sb strings.Builder
	header(&sb, int(float64(canvas.PixelWidth())*scale), int(float64(canvas.PixelHeight())*scale))
	sb.WriteString(`<g fill="#00ff00">` + "\n")

	dotRadius := scale * 0.4
	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG plots values against times as a polyline.
func SeriesToSVG(times, values []float64, width, height int, strokeColor string) string {
	n := min(len(times), len(values))
	if n < 2 {
		return ""
	}

	minX, maxX := times[0], times[0]
	minY, maxY := values[0], values[0]
	for i := 0; i < n; i++ {
		minX, maxX = min(minX, times[i]), max(maxX, times[i])
		minY, maxY = min(minY, values[i]), max(maxY, values[i])
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i := 0; i < n; i++ {
		x := (times[i] - minX) / rangeX * float64(width)
		y := float64(height) - (values[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
