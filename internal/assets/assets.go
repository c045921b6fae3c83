// Package assets owns the embedded shaders and the cache of primitive
// models the renderer draws mesh renderers with.
package assets

import (
	_ "embed"

	"demos3d/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/lighting.vs
var LightingVS string

//go:embed shaders/lighting.fs
var LightingFS string

var manager *Manager

// Manager lazily generates one unit model per mesh type. Models need a GL
// context, so nothing is built before the first draw.
type Manager struct {
	models map[components.MeshType]rl.Model
	shader rl.Shader
}

func Init(shader rl.Shader) {
	manager = &Manager{
		models: make(map[components.MeshType]rl.Model),
		shader: shader,
	}
}

// Model returns the unit model for t: a 1x1x1 cube, a sphere of diameter 1,
// a 1x1 plane, or a cylinder of diameter 1 and height 1 centred on the
// origin.
func Model(t components.MeshType) rl.Model {
	if manager == nil {
		Init(rl.Shader{})
	}

	if model, exists := manager.models[t]; exists {
		return model
	}

	var mesh rl.Mesh
	switch t {
	case components.MeshSphere:
		mesh = rl.GenMeshSphere(0.5, 16, 16)
	case components.MeshPlane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	case components.MeshCylinder:
		mesh = rl.GenMeshCylinder(0.5, 1, 16)
	default:
		mesh = rl.GenMeshCube(1, 1, 1)
	}
	model := rl.LoadModelFromMesh(mesh)
	if manager.shader.ID != 0 {
		model.Materials.Shader = manager.shader
	}
	manager.models[t] = model
	return model
}

// MeshOffset maps the generated mesh onto the unit shape centred on the
// origin. GenMeshCylinder builds upward from y=0.
func MeshOffset(t components.MeshType) rl.Matrix {
	if t == components.MeshCylinder {
		return rl.MatrixTranslate(0, -0.5, 0)
	}
	return rl.MatrixIdentity()
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[components.MeshType]rl.Model)
}
