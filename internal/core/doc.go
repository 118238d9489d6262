// Package core provides the object model that tensegrity structures are
// built into.
//
// The package defines the lifecycle and the simulation objects produced by
// the builders in package creator:
//
//   - [Model]: lifecycle interface (Setup, Step, Teardown, Accept)
//   - [Base]: child bookkeeping shared by every model
//   - [Subject]: observer registry for controllers and loggers
//   - [Rod]: rigid segment between two nodes
//   - [BasicActuator]: tensioned cable with a commanded rest length
//   - [World]: the environment a structure is set up in
//
// # Lifecycle
//
// A model is built, set up once, stepped any number of times with a
// strictly positive dt and finally torn down:
//
//	w := core.NewWorld(core.DefaultWorldConfig())
//	if err := m.Setup(w); err != nil {
//	    return err
//	}
//	defer m.Teardown()
//	for i := 0; i < steps; i++ {
//	    if err := m.Step(dt); err != nil {
//	        return err
//	    }
//	}
//
// Geometry is fixed once built. Actuator tension is a spring evaluation on
// that geometry; no forces are integrated into rigid-body motion.
//
// # Thread Safety
//
// Models are NOT thread-safe. Run independent models in separate goroutines
// instead of sharing one.
package core
