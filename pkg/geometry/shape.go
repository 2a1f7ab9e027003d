package geometry

import "github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"

// Shape interface for primitives that can be intersected by rays.
// Intersect returns the interaction for the nearest hit inside the ray's
// valid interval, or (nil, false) when the ray misses. Degenerate numeric
// cases (parallel rays, zero divisors) are reported as misses, never as
// interactions carrying NaN or Inf.
type Shape interface {
	Intersect(ray core.Ray) (*core.Interaction, bool)
}
