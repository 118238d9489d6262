// Package viz draws the robot in the terminal.
//
// A [Wireframe] is collected from a built model with a visitor, projected
// through a [Camera] and rasterised onto a braille [Canvas]. [Viewer] wraps
// that in a Bubble Tea program that steps the model live.
//
// # Key Bindings
//
//	Space - Pause/Resume stepping
//	R     - Reset the camera
//	X/Y   - Rotate about the X/Y axis
//	+/-   - Zoom
//	Q     - Quit
package viz
