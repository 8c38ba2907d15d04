// Package raster is the CPU-only rasterizer behind the orrery view.
//
// Everything draws into a Target through bounds-checked Set calls, so callers
// never need to clip: pixels outside the target are dropped silently.
//
// Pipeline pieces (composed by package compose, in this order):
//
//	Clear → Starfield → Orbit outlines → Spheres (+rings) → Ship → Overlays.
//
// Lighting is deliberately stylized: a screen-space direction towards the
// light source with a fixed out-of-plane component (LightZ), a Lambert term
// and an ambient floor. It is not a physical model.
package raster
