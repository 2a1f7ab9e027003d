package core

import "math"

// DefaultTMin is the near bound for rays when no explicit bound is given.
// It keeps intersection tests from reporting the surface a ray starts on.
const DefaultTMin = 1e-4

// Ray represents a ray with an origin, direction and a valid parametric interval.
// The direction is not required to be unit length; t values are expressed in
// units of the direction's length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default parametric interval [DefaultTMin, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: DefaultTMin, TMax: math.Inf(1)}
}

// NewBoundedRay creates a ray with an explicit parametric interval
func NewBoundedRay(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t lies inside the ray's valid interval.
// Non-finite t values are excluded, so degenerate intersection math
// (division by zero, NaN roots) is normalized to a miss.
func (r Ray) Contains(t float64) bool {
	return t >= r.TMin && t <= r.TMax && !math.IsNaN(t) && !math.IsInf(t, 0)
}
