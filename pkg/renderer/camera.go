package renderer

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// CameraConfig contains camera placement and image parameters
type CameraConfig struct {
	Position    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VerticalFov float64 // Vertical field of view in degrees
	Width       int
	Height      int
}

// DefaultCameraConfig returns a camera suited to the built-in scenes
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, -6, 2),
		LookAt:      core.NewVec3(0, 0, 1.5),
		Up:          core.NewVec3(0, 0, 1),
		VerticalFov: 45,
		Width:       400,
		Height:      300,
	}
}

// Camera generates primary rays through image-plane sample points
type Camera struct {
	position   core.Vec3
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	tanHalfFov float64
	aspect     float64
	width      int
	height     int
}

// NewCamera creates a camera from a config, building an orthonormal basis
// from the view direction and the up hint
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Position).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	return &Camera{
		position:   config.Position,
		forward:    forward,
		right:      right,
		up:         up,
		tanHalfFov: math.Tan(config.VerticalFov * math.Pi / 360),
		aspect:     float64(config.Width) / float64(config.Height),
		width:      config.Width,
		height:     config.Height,
	}
}

// Resolution returns the image width and height in pixels
func (c *Camera) Resolution() (int, int) {
	return c.width, c.height
}

// SuperSamplePoints returns the spp x spp sub-pixel sample positions for
// pixel (dx, dy) in continuous raster coordinates. Samples sit at stratified
// cell centers, so sampling is deterministic and restartable.
func (c *Camera) SuperSamplePoints(dx, dy, spp int) []core.Vec2 {
	if spp < 1 {
		spp = 1
	}
	points := make([]core.Vec2, 0, spp*spp)
	for i := 0; i < spp; i++ {
		for j := 0; j < spp; j++ {
			points = append(points, core.NewVec2(
				float64(dx)+(float64(i)+0.5)/float64(spp),
				float64(dy)+(float64(j)+0.5)/float64(spp),
			))
		}
	}
	return points
}

// GenerateRay generates a primary ray through the continuous raster
// position (x, y). The returned direction is unit length.
func (c *Camera) GenerateRay(x, y float64) core.Ray {
	// Raster to normalized device coordinates, y down in raster space
	u := (2*x/float64(c.width) - 1) * c.tanHalfFov * c.aspect
	v := (1 - 2*y/float64(c.height)) * c.tanHalfFov

	direction := c.forward.
		Add(c.right.Multiply(u)).
		Add(c.up.Multiply(v)).
		Normalize()
	return core.NewRay(c.position, direction)
}
