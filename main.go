package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/renderer"
	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/scene"
)

// createScene builds the scene selected on the command line. The mesh
// scene requires an OBJ path; load failures are fatal to the caller,
// there is no partial or fallback scene.
func createScene(sceneType, meshPath string) (*scene.Scene, error) {
	switch sceneType {
	case "mesh":
		if meshPath == "" {
			return nil, fmt.Errorf("the mesh scene requires -mesh <file.obj>")
		}
		return scene.NewMeshScene(meshPath)
	case "default":
		return scene.NewDefaultScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// createOutputDir returns the per-scene output directory path.
func createOutputDir(sceneType string) string {
	return filepath.Join("output", sceneType)
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'mesh'")
	meshPath := flag.String("mesh", "", "OBJ file for the mesh scene")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 300, "Image height in pixels")
	spp := flag.Int("spp", 2, "Supersampling grid size (spp*spp rays per pixel)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Hypox Ray Tracer")
		fmt.Println("Usage: hypox-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Ellipsoids over a checkered ground with an area light")
		fmt.Println("  mesh    - An OBJ mesh (requires -mesh) over a checkered ground")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneType, *meshPath)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Scene %q: %d primitives, %d VPLs\n",
		*sceneType, selectedScene.PrimitiveCount(), len(selectedScene.Light().VPLs()))

	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Width = *width
	cameraConfig.Height = *height
	camera := renderer.NewCamera(cameraConfig)

	config := renderer.DefaultConfig()
	config.SamplesPerPixel = *spp
	config.NumWorkers = *workers

	raytracer := renderer.NewRayTracer(selectedScene, camera, config, nil)
	film, stats := raytracer.Render()

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Primary rays: %d (%.1f%% hit)\n", stats.PrimaryRays, 100*stats.HitRate())

	outputDir := createOutputDir(*sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, film.ToRGBA(config.Gamma)); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
