// Package preview draws interpolated frames with Ebitengine and drives
// them from pointer input. Elements render as tinted rectangles; a
// Director fires click, hover and delay triggers between states.
package preview
