package core

// InteractionType distinguishes a surface hit from a direct light-source hit
type InteractionType int

const (
	// GeometryInteraction marks a hit on ordinary scene geometry
	GeometryInteraction InteractionType = iota
	// LightInteraction marks a hit on a light source's emitting surface
	LightInteraction
)

// MaterialModel holds the shading coefficients evaluated at a hit point
type MaterialModel struct {
	Ambient   Vec3
	Diffuse   Vec3
	Specular  Vec3
	Shininess float64
}

// Interaction describes a ray/surface hit. Distance is the parametric t of
// the hit along the ray that produced it, Position is ray.At(Distance), and
// Normal is unit length, pointing outward as the primitive defines it.
type Interaction struct {
	Distance float64
	Position Vec3
	Normal   Vec3
	Type     InteractionType
	Material MaterialModel
}

// Material evaluates shading coefficients at a hit point. Implementations are
// pure functions of the interaction and their own fixed parameters, which
// allows spatially varying materials without changing the primitive contract.
type Material interface {
	Evaluate(interaction *Interaction) MaterialModel
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
