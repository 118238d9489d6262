// Package control provides controllers for the SUPERball actuators.
//
// Controllers attach to a [superball.Model] as observers and command
// actuator rest lengths from OnStep:
//
//   - [PID]: drives every cable's tension toward a setpoint
//   - [None]: leaves the rest lengths where setup put them
//
// # Usage
//
//	pid := control.NewPID(0.5, 0.05, 0, 2100) // Kp, Ki, Kd, tension setpoint
//	m := superball.NewModel(superball.DefaultConfig())
//	m.Attach(pid)
//
// Controllers keep per-run state and must not be shared between models.
package control
