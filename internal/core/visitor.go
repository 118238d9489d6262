package core

// Visitor walks a built structure.
type Visitor interface {
	VisitRod(r *Rod)
	VisitActuator(a *BasicActuator)
}
