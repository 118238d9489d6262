package core

// Observer is notified of the lifecycle of a subject of type T.
// Controllers attach to models as observers.
type Observer[T any] interface {
	OnSetup(subject T)
	OnStep(subject T, dt float64)
	OnTeardown(subject T)
}

// Subject keeps the observers of a T in attach order.
type Subject[T any] struct {
	observers []Observer[T]
}

func (s *Subject[T]) Attach(o Observer[T]) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

func (s *Subject[T]) Observers() []Observer[T] { return s.observers }

func (s *Subject[T]) NotifySetup(subject T) {
	for _, o := range s.observers {
		o.OnSetup(subject)
	}
}

func (s *Subject[T]) NotifyStep(subject T, dt float64) {
	for _, o := range s.observers {
		o.OnStep(subject, dt)
	}
}

func (s *Subject[T]) NotifyTeardown(subject T) {
	for _, o := range s.observers {
		o.OnTeardown(subject)
	}
}
