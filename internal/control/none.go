package control

import "github.com/san-kum/superball/internal/superball"

type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) OnSetup(*superball.Model)          {}
func (n *None) OnStep(*superball.Model, float64) {}
func (n *None) OnTeardown(*superball.Model)       {}
