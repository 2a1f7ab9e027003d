package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/HypoxanthineOvO/HypoxRayTracer/pkg/core"
)

// OBJData contains the raw geometry loaded from a Wavefront OBJ file.
// Faces are triangulated; every three index entries form one triangle.
// NormalIndices is empty when the file carries no normal references.
type OBJData struct {
	Vertices      []core.Vec3
	Normals       []core.Vec3
	VertexIndices []int
	NormalIndices []int
}

// LoadOBJ loads an OBJ file and returns the raw vertex, normal and index data.
// Materials in the file are ignored; this loader only reads geometry.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ parses OBJ geometry from a reader. Supported statements are
// v, vn and f; faces with more than three vertices are fan-triangulated.
// Everything else (vt, usemtl, groups, comments) is skipped.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNum, err)
			}
			data.Vertices = append(data.Vertices, v)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", lineNum, err)
			}
			data.Normals = append(data.Normals, n)

		case "f":
			if err := parseFace(data, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: invalid face: %w", lineNum, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	if len(data.NormalIndices) != 0 && len(data.NormalIndices) != len(data.VertexIndices) {
		return nil, fmt.Errorf("faces mix normal-indexed and plain vertices")
	}
	return data, nil
}

// parseVec3 parses three float fields
func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, err
		}
		c[i] = val
	}
	return core.NewVec3(c[0], c[1], c[2]), nil
}

// parseFace parses one face statement, fan-triangulating polygons.
// Vertex references may be v, v/vt, v//vn or v/vt/vn; indices are 1-based
// and may be negative (relative to the end of the list read so far).
func parseFace(data *OBJData, refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face has %d vertices, need at least 3", len(refs))
	}

	vIdx := make([]int, len(refs))
	nIdx := make([]int, len(refs))
	hasNormals := false

	for i, ref := range refs {
		parts := strings.Split(ref, "/")

		v, err := resolveIndex(parts[0], len(data.Vertices))
		if err != nil {
			return fmt.Errorf("vertex reference %q: %w", ref, err)
		}
		vIdx[i] = v
		nIdx[i] = -1

		if len(parts) == 3 && parts[2] != "" {
			n, err := resolveIndex(parts[2], len(data.Normals))
			if err != nil {
				return fmt.Errorf("normal reference %q: %w", ref, err)
			}
			nIdx[i] = n
			hasNormals = true
		}
	}

	if hasNormals {
		for i := range refs {
			if nIdx[i] < 0 {
				return fmt.Errorf("face mixes vertices with and without normals")
			}
		}
	}

	for i := 1; i+1 < len(refs); i++ {
		data.VertexIndices = append(data.VertexIndices, vIdx[0], vIdx[i], vIdx[i+1])
		if hasNormals {
			data.NormalIndices = append(data.NormalIndices, nIdx[0], nIdx[i], nIdx[i+1])
		}
	}
	return nil
}

// resolveIndex converts a 1-based (or negative relative) OBJ index to a
// 0-based slice index and bounds-checks it
func resolveIndex(field string, count int) (int, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = count + idx
	} else {
		idx = idx - 1
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %s out of range (have %d elements)", field, count)
	}
	return idx, nil
}
