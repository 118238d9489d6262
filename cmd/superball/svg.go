package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/export"
	"github.com/san-kum/superball/internal/storage"
	"github.com/san-kum/superball/internal/superball"
	"github.com/san-kum/superball/internal/viz"
	"github.com/spf13/cobra"
)

var (
	svgOut     string
	svgRun     string
	svgBraille bool
	rotX       float64
	rotY       float64
)

func renderSVG(cmd *cobra.Command, args []string) error {
	var doc string

	if svgRun != "" {
		samples, err := storage.New(dataDir).LoadSamples(svgRun)
		if err != nil {
			return err
		}
		doc = export.SeriesToSVG(samples.Times, samples.MeanTension(), 800, 300, "#00ccff")
		if doc == "" {
			return fmt.Errorf("run %s has too few samples to plot", svgRun)
		}
	} else {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		m := superball.NewModel(cfg.Model, superball.WithLogger(logger()))
		if err := m.Setup(core.NewWorld(cfg.World)); err != nil {
			return err
		}
		defer m.Teardown()

		wire := viz.FromModel(m)
		cam := viz.NewCamera()
		cam.Fit(wire)
		cam.RotateX(rotX)
		cam.RotateY(rotY)

		if svgBraille {
			c := viz.NewCanvas(80, 40)
			viz.Render3D(c, wire, cam)
			doc = export.CanvasToSVG(c, 4)
		} else {
			doc = export.StructureSVG(wire, cam, 600, 600)
		}
	}

	var w io.Writer = os.Stdout
	if svgOut != "" {
		f, err := os.Create(svgOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, doc+"\n")
	return err
}
