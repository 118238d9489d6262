// Package superball describes the SUPERball v3 tensegrity robot: six bars,
// each a rod-motor-rod chain, held together by 25 cable actuators.
//
// The geometry is declared in [AddNodes], [AddRods] and [AddActuators].
// [NewStructure] assembles it and places it in the world; [Model] builds it
// into live rods and actuators and exposes the actuators to controllers:
//
//	m := superball.NewModel(superball.DefaultConfig())
//	m.Attach(controller)
//	if err := m.Setup(core.NewWorld(core.DefaultWorldConfig())); err != nil {
//	    return err
//	}
//	for _, a := range m.Actuators() {
//	    _ = a.SetControlInput(a.RestLength() * 0.95)
//	}
//
// Length units scale with gravity. With gravity at 98.1 they are decimetres.
package superball
