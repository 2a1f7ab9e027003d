package renderer

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/lights"
)

// shadowBias offsets shadow-ray origins along the surface normal so a shadow
// ray does not immediately re-intersect the surface it starts on.
const shadowBias = 1e-3

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int     // Supersampling grid size; spp² rays per pixel
	NumWorkers      int     // Number of parallel workers (0 = CPU count)
	ChunkSize       int     // Columns per work unit; >1 amortizes scheduling
	Gamma           float64 // Gamma for 8-bit output conversion
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 2,
		NumWorkers:      0,
		ChunkSize:       2,
		Gamma:           2.0,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	Intersect(ray core.Ray) (*core.Interaction, bool)
	IsShadowed(ray core.Ray) bool
	Light() lights.Light
	AmbientColor() core.Vec3
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RayTracer renders a scene through a camera into a Film using VPL-based
// Blinn-Phong shading with shadow rays
type RayTracer struct {
	scene  Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRayTracer creates a new raytracer. A nil logger defaults to stdout.
func NewRayTracer(scene Scene, camera *Camera, config Config, logger core.Logger) *RayTracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	return &RayTracer{
		scene:  scene,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render renders the full image. Image columns are distributed to workers in
// chunks; each worker owns its columns' pixels exclusively, so the only
// shared mutable state is the atomic progress and hit counters. Pixel values
// are deterministic regardless of worker count, since every pixel's samples
// are accumulated sequentially within one work unit.
func (rt *RayTracer) Render() (*Film, RenderStats) {
	width, height := rt.camera.Resolution()
	film := NewFilm(width, height)

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	chunk := rt.config.ChunkSize
	if chunk < 1 {
		chunk = 1
	}

	columns := make(chan int)
	var wg sync.WaitGroup
	var columnsDone atomic.Int64
	var primaryHits atomic.Int64
	start := time.Now()

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x0 := range columns {
				x1 := min(x0+chunk, width)
				var hits int64
				for dx := x0; dx < x1; dx++ {
					for dy := 0; dy < height; dy++ {
						color, pixelHits := rt.renderPixel(dx, dy)
						film.SetPixel(dx, dy, color)
						hits += pixelHits
					}
					done := columnsDone.Add(1)
					// Progress is a side channel; interleaving between
					// workers does not affect pixel values
					rt.logger.Printf("\rRendering: %.2f%%", 100*float64(done)/float64(width))
				}
				primaryHits.Add(hits)
			}
		}()
	}

	for x := 0; x < width; x += chunk {
		columns <- x
	}
	close(columns)
	wg.Wait()
	rt.logger.Printf("\n")

	spp := rt.config.SamplesPerPixel
	return film, RenderStats{
		TotalPixels: width * height,
		PrimaryRays: int64(width*height) * int64(spp*spp),
		PrimaryHits: primaryHits.Load(),
		Elapsed:     time.Since(start),
	}
}

// renderPixel accumulates radiance over the pixel's supersample rays and
// returns the averaged color and the number of rays that hit anything
func (rt *RayTracer) renderPixel(dx, dy int) (core.Vec3, int64) {
	spp := rt.config.SamplesPerPixel
	points := rt.camera.SuperSamplePoints(dx, dy, spp)

	var accum core.Vec3
	var hits int64
	for _, p := range points {
		ray := rt.camera.GenerateRay(p.X, p.Y)
		if interaction, ok := rt.scene.Intersect(ray); ok {
			accum = accum.Add(rt.EvalRadiance(ray, interaction))
			hits++
		}
	}
	return accum.Multiply(1.0 / float64(len(points))), hits
}

// EvalRadiance computes the outgoing color for a ray and its interaction:
// ambient plus per-VPL Lambertian diffuse and Blinn-Phong specular, with a
// shadow test per VPL. Contributions are divided by the VPL count so many
// VPLs behave like one light of equivalent total energy. A direct hit on the
// light source returns the light's color, bypassing shading.
func (rt *RayTracer) EvalRadiance(ray core.Ray, interaction *core.Interaction) core.Vec3 {
	if interaction.Type == core.LightInteraction {
		return rt.scene.Light().Color()
	}

	mat := interaction.Material
	ambient := mat.Ambient.MultiplyVec(rt.scene.AmbientColor())

	vpls := rt.scene.Light().VPLs()
	if len(vpls) == 0 {
		return ambient
	}

	viewDir := ray.Direction.Normalize()
	invN := 1.0 / float64(len(vpls))
	var diffuse, specular core.Vec3

	for _, vpl := range vpls {
		toLight := vpl.Position.Subtract(interaction.Position)
		dist := toLight.Length()
		if dist <= shadowBias {
			continue
		}
		lightDir := toLight.Multiply(1 / dist)

		// Shadow ray: origin pushed off the surface, bounded just short of
		// the VPL so the emitter's own surface does not occlude it
		shadowOrigin := interaction.Position.Add(interaction.Normal.Multiply(shadowBias))
		shadowRay := core.NewBoundedRay(shadowOrigin, lightDir, core.DefaultTMin, dist-shadowBias)
		if rt.scene.IsShadowed(shadowRay) {
			continue
		}

		diffFactor := math.Max(0, interaction.Normal.Dot(lightDir))
		reflectDir := interaction.Normal.Multiply(2 * interaction.Normal.Dot(lightDir)).
			Subtract(lightDir).Normalize()
		specFactor := math.Pow(math.Max(0, reflectDir.Dot(viewDir.Negate())), mat.Shininess)

		diffuse = diffuse.Add(mat.Diffuse.MultiplyVec(vpl.Color).Multiply(diffFactor * invN))
		specular = specular.Add(mat.Specular.MultiplyVec(vpl.Color).Multiply(specFactor * invN))
	}

	return ambient.Add(diffuse).Add(specular)
}
