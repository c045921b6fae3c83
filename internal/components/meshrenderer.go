package components

import (
	"demos3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
	MeshCylinder
)

func (t MeshType) String() string {
	switch t {
	case MeshCube:
		return "cube"
	case MeshSphere:
		return "sphere"
	case MeshPlane:
		return "plane"
	case MeshCylinder:
		return "cylinder"
	}
	return "unknown"
}

// Material is the mutable surface description of a mesh. Each renderer owns
// its material, so recolouring one object never touches another.
type Material struct {
	BaseColor rl.Color
}

// MeshRenderer draws a unit primitive stretched to Size (full extents; the
// sphere and cylinder use X as their diameter).
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Size     rl.Vector3
	Material *Material
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Size:     size,
		Material: &Material{BaseColor: color},
	}
}

// ColorFromFloats converts 0-1 channels to an rl.Color.
func ColorFromFloats(r, g, b, a float32) rl.Color {
	return rl.ColorFromNormalized(rl.Vector4{X: r, Y: g, Z: b, W: a})
}

// ModelMatrix maps the unit mesh into world space.
func (m *MeshRenderer) ModelMatrix() rl.Matrix {
	size := rl.MatrixScale(m.Size.X, m.Size.Y, m.Size.Z)
	g := m.GetGameObject()
	if g == nil {
		return size
	}
	return rl.MatrixMultiply(size, g.WorldMatrix())
}

// Color returns the material colour, white when no material is set.
func (m *MeshRenderer) Color() rl.Color {
	if m.Material == nil {
		return rl.White
	}
	return m.Material.BaseColor
}
