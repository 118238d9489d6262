package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/superball/internal/creator"
	"github.com/san-kum/superball/internal/superball"
	"github.com/spf13/cobra"
)

var declared bool

// geometryStructure returns the structure as declared, or as placed in the
// world when declared is false.
func geometryStructure(cfg superball.Config, declared bool) (*creator.Structure, error) {
	if !declared {
		return superball.NewStructure(cfg)
	}
	s := creator.NewStructure()
	superball.AddNodes(s, cfg)
	superball.AddRods(s)
	superball.AddActuators(s)
	return s, nil
}

func printGeometry(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := geometryStructure(cfg.Model, declared)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "NODE\tX\tY\tZ\t")
	for i, n := range s.Nodes() {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t\n", i, n.X(), n.Y(), n.Z())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tTAGS\tLENGTH")
	for _, p := range s.Pairs() {
		d, err := s.Distance(p.From, p.To)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%.4f\n", p.Name(), p.Tags.String(), d)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d nodes, %d rods, %d motors, %d muscles\n",
		len(s.Nodes()),
		len(s.PairsTagged(superball.TagRod)),
		len(s.PairsTagged(superball.TagMotor)),
		len(s.PairsTagged(superball.TagMuscle)),
	)
	return nil
}
