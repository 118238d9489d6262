package main

import (
	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
	"github.com/san-kum/superball/internal/viz"
	"github.com/spf13/cobra"
)

var stepsPerFrame int

func viewModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	m := superball.NewModel(cfg.Model, superball.WithLogger(logger()))
	m.Attach(ctrl)
	if err := m.Setup(core.NewWorld(cfg.World)); err != nil {
		return err
	}
	defer m.Teardown()

	return viz.NewViewer(m, cfg.Dt, stepsPerFrame).Run()
}
