// Package viz renders shower events in the terminal.
//
// The package draws on a Braille pixel canvas through a rotatable,
// zoomable 3D camera:
//
//   - [Canvas]: Braille-based pixel canvas
//   - [Camera]: 3D-to-canvas projection with axis rotations and zoom
//   - [ShowerWireframe]: shower segments as a renderable wireframe
//   - [Model]: interactive Bubble Tea viewer
//
// # Key Bindings
//
//	Space  - Pause/resume auto-rotation
//	N      - Reseed and regrow the shower
//	[ ]    - Fewer/more layers
//	x/y/z  - Rotate camera (shift for reverse)
//	+/-    - Zoom
//	A      - Toggle reference axes
//	T      - Cycle color themes
package viz
