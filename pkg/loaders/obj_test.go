package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const simpleOBJ = `# simple wedge
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vn 0 0 1
vn 0 0 -1
f 1//1 2//1 3//1
f 1//2 3//2 4//2
`

func TestParseOBJ_Simple(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(simpleOBJ))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if len(data.Normals) != 2 {
		t.Errorf("Expected 2 normals, got %d", len(data.Normals))
	}
	if len(data.VertexIndices) != 6 {
		t.Errorf("Expected 6 vertex indices, got %d", len(data.VertexIndices))
	}
	if len(data.NormalIndices) != 6 {
		t.Errorf("Expected 6 normal indices, got %d", len(data.NormalIndices))
	}

	// OBJ indices are 1-based; parsed indices are 0-based
	want := []int{0, 1, 2, 0, 2, 3}
	for i, idx := range data.VertexIndices {
		if idx != want[i] {
			t.Errorf("Vertex index %d: expected %d, got %d", i, want[i], idx)
		}
	}
}

func TestParseOBJ_QuadTriangulation(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// A quad fans into two triangles: (0,1,2) and (0,2,3)
	want := []int{0, 1, 2, 0, 2, 3}
	if len(data.VertexIndices) != len(want) {
		t.Fatalf("Expected %d indices, got %d", len(want), len(data.VertexIndices))
	}
	for i, idx := range data.VertexIndices {
		if idx != want[i] {
			t.Errorf("Index %d: expected %d, got %d", i, want[i], idx)
		}
	}
	if len(data.NormalIndices) != 0 {
		t.Errorf("Expected no normal indices, got %d", len(data.NormalIndices))
	}
}

func TestParseOBJ_NegativeIndices(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []int{0, 1, 2}
	for i, idx := range data.VertexIndices {
		if idx != want[i] {
			t.Errorf("Index %d: expected %d, got %d", i, want[i], idx)
		}
	}
}

func TestParseOBJ_SkipsUnknownStatements(t *testing.T) {
	input := `mtllib scene.mtl
o wedge
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
usemtl ivory
s off
f 1/1 2/1 3/1
`
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.VertexIndices) != 3 {
		t.Errorf("Expected 3 vertex indices, got %d", len(data.VertexIndices))
	}
	if len(data.NormalIndices) != 0 {
		t.Errorf("Expected no normal indices for v/vt faces, got %d", len(data.NormalIndices))
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "vertex index out of range", input: "v 0 0 0\nf 1 2 3\n"},
		{name: "malformed vertex", input: "v 1 2\n"},
		{name: "non-numeric coordinate", input: "v a b c\n"},
		{name: "face with two vertices", input: "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{name: "normal index out of range", input: "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected parse error, got nil")
			}
		})
	}
}

func TestLoadOBJ_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wedge.obj")
	if err := os.WriteFile(path, []byte(simpleOBJ), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.Vertices) != 4 || len(data.VertexIndices) != 6 {
		t.Errorf("Unexpected data: %d vertices, %d indices", len(data.Vertices), len(data.VertexIndices))
	}
}

func TestLoadOBJ_MissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
