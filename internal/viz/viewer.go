package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/superball/internal/superball"
)

const historyCapacity = 200

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Viewer steps a built model and draws it every frame.
type Viewer struct {
	model         *superball.Model
	camera        *Camera
	canvas        *Canvas
	dt            float64
	stepsPerFrame int
	running       bool
	t             float64
	steps         int
	tensions      []float64
	err           error
}

// NewViewer takes a model that has already been set up.
func NewViewer(m *superball.Model, dt float64, stepsPerFrame int) *Viewer {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	v := &Viewer{
		model:         m,
		camera:        NewCamera(),
		canvas:        NewCanvas(60, 24),
		dt:            dt,
		stepsPerFrame: stepsPerFrame,
		running:       true,
		tensions:      make([]float64, 0, historyCapacity),
	}
	v.camera.Fit(FromModel(m))
	return v
}

func (v *Viewer) Init() tea.Cmd { return tick() }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return v, tea.Quit
		case " ":
			v.running = !v.running
		case "r":
			v.camera.Fit(FromModel(v.model))
		case "x":
			v.camera.RotateX(0.1)
		case "X":
			v.camera.RotateX(-0.1)
		case "y":
			v.camera.RotateY(0.1)
		case "Y":
			v.camera.RotateY(-0.1)
		case "+", "=":
			v.camera.ZoomIn()
		case "-", "_":
			v.camera.ZoomOut()
		}
	case tea.WindowSizeMsg:
		w := max(20, msg.Width-36)
		h := max(8, msg.Height-4)
		v.canvas = NewCanvas(w, h)
	case TickMsg:
		if v.running && v.err == nil {
			v.Advance(v.stepsPerFrame)
		}
		return v, tick()
	}
	return v, nil
}

// Advance steps the model n times and records the mean tension.
func (v *Viewer) Advance(n int) {
	for i := 0; i < n; i++ {
		if err := v.model.Step(v.dt); err != nil {
			v.err = err
			v.running = false
			return
		}
		v.t += v.dt
		v.steps++
	}

	v.tensions = append(v.tensions, v.meanTension())
	if len(v.tensions) > historyCapacity {
		v.tensions = v.tensions[1:]
	}
}

func (v *Viewer) meanTension() float64 {
	acts := v.model.Actuators()
	if len(acts) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range acts {
		sum += a.Tension()
	}
	return sum / float64(len(acts))
}

func (v *Viewer) Steps() int      { return v.steps }
func (v *Viewer) Err() error      { return v.err }
func (v *Viewer) Time() float64   { return v.t }
func (v *Viewer) Running() bool   { return v.running }
func (v *Viewer) Camera() *Camera { return v.camera }

func (v *Viewer) View() string {
	wire := FromModel(v.model)
	v.canvas.Clear()
	Render3D(v.canvas, wire, v.camera)

	status := StatusRunning.Render("RUNNING")
	if !v.running {
		status = StatusPaused.Render("PAUSED")
	}
	if v.err != nil {
		status = StatusError.Render("ERROR")
	}

	peak, slack := 0.0, 0
	for _, e := range wire.Edges {
		if e.Kind != EdgeMuscle {
			continue
		}
		peak = max(peak, e.Tension)
		if e.Tension <= 0 {
			slack++
		}
	}
	mean := v.meanTension()
	maxTension := v.model.Config().MaxTension

	var s strings.Builder
	s.WriteString(Title.Render("SUPERBALL") + "  " + status + "\n\n")
	line := func(label, value string) {
		s.WriteString(MetricLabel.Render(fmt.Sprintf("%-10s", label)) + MetricValue.Render(value) + "\n")
	}
	line("time", fmt.Sprintf("%.3fs", v.t))
	line("steps", fmt.Sprintf("%d", v.steps))
	line("bars", fmt.Sprintf("%d rods %d motors", wire.Count(EdgeRod), wire.Count(EdgeMotor)))
	line("muscles", fmt.Sprintf("%d (%d slack)", wire.Count(EdgeMuscle), slack))
	line("mean T", fmt.Sprintf("%.1f", mean))
	line("peak T", fmt.Sprintf("%.1f", peak))
	line("mass", fmt.Sprintf("%.2f", v.model.Mass()))
	s.WriteString("\n" + ProgressBar(peak/maxTension, 24) + "\n")
	s.WriteString(SparkMid.Render(Sparkline(v.tensions, 24)) + "\n")
	if v.err != nil {
		s.WriteString("\n" + StatusError.Render(v.err.Error()) + "\n")
	}
	s.WriteString("\n" + KeyHint.Render("space pause  x/y rotate  +/- zoom  r reset  q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, Panel.Render(v.canvas.String()), Panel.Render(s.String()))
}

// Run starts the full-screen program and blocks until the user quits.
func (v *Viewer) Run() error {
	_, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}
