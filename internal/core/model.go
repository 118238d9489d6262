package core

import "fmt"

// Model is the lifecycle every object in a built structure follows.
type Model interface {
	Setup(w *World) error
	Step(dt float64) error
	Teardown()
	Accept(v Visitor)
	Children() []Model
	Tags() Tags
}

// Base holds the children of a model and forwards the lifecycle to them.
// Embed it and override the methods that need extra behaviour.
type Base struct {
	tags     Tags
	children []Model
}

func NewBase(tags Tags) Base {
	return Base{tags: tags.Clone()}
}

func (b *Base) Tags() Tags { return b.tags }

func (b *Base) AddChild(m Model) error {
	if m == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidArgument)
	}
	b.children = append(b.children, m)
	return nil
}

func (b *Base) Children() []Model { return b.children }

// Descendants returns every model below b in depth-first pre-order.
func (b *Base) Descendants() []Model {
	var out []Model
	var walk func(ms []Model)
	walk = func(ms []Model) {
		for _, m := range ms {
			out = append(out, m)
			walk(m.Children())
		}
	}
	walk(b.children)
	return out
}

func (b *Base) Setup(w *World) error {
	if w == nil {
		return ErrNilWorld
	}
	for _, c := range b.children {
		if err := c.Setup(w); err != nil {
			return err
		}
	}
	return nil
}

func (b *Base) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: dt is not positive (%g)", ErrInvalidArgument, dt)
	}
	for _, c := range b.children {
		if err := c.Step(dt); err != nil {
			return err
		}
	}
	return nil
}

// Teardown tears down every child and drops them.
func (b *Base) Teardown() {
	for _, c := range b.children {
		c.Teardown()
	}
	b.children = nil
}

func (b *Base) Accept(v Visitor) {
	for _, c := range b.children {
		c.Accept(v)
	}
}

// Filter returns the models in ms that have type T, preserving order.
func Filter[T Model](ms []Model) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if t, ok := m.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
