package control

import (
	"fmt"
	"sort"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
)

type Factory func(params map[string]float64) core.Observer[*superball.Model]

var factories = map[string]Factory{
	"none": func(map[string]float64) core.Observer[*superball.Model] {
		return NewNone()
	},
	"pid": func(params map[string]float64) core.Observer[*superball.Model] {
		target, ok := params["target"]
		if !ok {
			target = superball.DefaultPretension
		}
		return NewPID(params["kp"], params["ki"], params["kd"], target)
	},
}

// New builds the named controller. Every call returns a fresh instance.
func New(name string, params map[string]float64) (core.Observer[*superball.Model], error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown controller: %s", name)
	}
	return f(params), nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
