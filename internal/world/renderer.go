package world

import (
	"errors"
	"sort"

	"demos3d/internal/assets"
	"demos3d/internal/components"
	"demos3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var defaultAmbient = []float32{0.15, 0.15, 0.18}

type Renderer struct {
	Shader rl.Shader

	// Stats from the last frame
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Initialize compiles the embedded lighting shader. It needs a GL context.
func (r *Renderer) Initialize() error {
	r.Shader = rl.LoadShaderFromMemory(assets.LightingVS, assets.LightingFS)
	if !rl.IsShaderValid(r.Shader) {
		return errors.New("lighting shader failed to compile")
	}
	assets.Init(r.Shader)
	return nil
}

// updateLights feeds the first point light and directional light in the
// scene to the shader. Missing lights are switched off.
func (r *Renderer) updateLights(scene *engine.Scene, viewPos rl.Vector3) {
	r.setVec3("viewPos", []float32{viewPos.X, viewPos.Y, viewPos.Z})
	ambient := defaultAmbient

	sunEnabled := float32(0)
	if suns := engine.FindComponents[*components.DirectionalLight](scene); len(suns) > 0 {
		sun := suns[0]
		sunEnabled = 1
		r.setVec3("sunDir", []float32{sun.Direction.X, sun.Direction.Y, sun.Direction.Z})
		r.setVec3("sunColor", sun.GetColorFloat())
		ambient = sun.GetAmbientFloat()
	}
	r.setFloat("sunEnabled", sunEnabled)

	pointEnabled := float32(0)
	if points := engine.FindComponents[*components.PointLight](scene); len(points) > 0 {
		p := points[0]
		pos := p.GetPosition()
		pointEnabled = 1
		r.setVec3("pointPos", []float32{pos.X, pos.Y, pos.Z})
		r.setVec3("pointColor", p.GetColorFloat())
		r.setFloat("pointRange", p.Range)
	}
	r.setFloat("pointEnabled", pointEnabled)

	r.setVec3("ambient", ambient)
}

func (r *Renderer) setVec3(name string, v []float32) {
	rl.SetShaderValue(r.Shader, rl.GetShaderLocation(r.Shader, name), v, rl.ShaderUniformVec3)
}

func (r *Renderer) setFloat(name string, v float32) {
	rl.SetShaderValue(r.Shader, rl.GetShaderLocation(r.Shader, name), []float32{v}, rl.ShaderUniformFloat)
}

// Draw renders the 3D scene through cam, optionally with collider outlines.
func (r *Renderer) Draw(scene *engine.Scene, cam rl.Camera3D, aspect float32, debug bool) {
	r.updateLights(scene, cam.Position)
	frustum := ExtractFrustum(cam, aspect)
	r.Drawn, r.Culled = 0, 0

	rl.BeginMode3D(cam)
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		center, radius := boundingSphere(mr)
		if !frustum.ContainsSphere(center, radius) {
			r.Culled++
			continue
		}
		model := assets.Model(mr.MeshType)
		model.Transform = rl.MatrixMultiply(assets.MeshOffset(mr.MeshType), mr.ModelMatrix())
		rl.DrawModel(model, rl.Vector3{}, 1, mr.Color())
		r.Drawn++
	}
	if debug {
		drawColliders(scene)
	}
	rl.EndMode3D()
}

// boundingSphere bounds the unit mesh stretched by Size and the object's
// world scale.
func boundingSphere(mr *components.MeshRenderer) (rl.Vector3, float32) {
	g := mr.GetGameObject()
	s := g.WorldScale()
	ext := rl.Vector3{X: mr.Size.X * s.X, Y: mr.Size.Y * s.Y, Z: mr.Size.Z * s.Z}
	return g.WorldPosition(), rl.Vector3Length(ext) / 2
}

// DrawUI renders every canvas in sort order over the 3D view.
func (r *Renderer) DrawUI(scene *engine.Scene, screen rl.Rectangle) {
	canvases := engine.FindComponents[*components.UICanvas](scene)
	sort.SliceStable(canvases, func(i, j int) bool {
		return canvases[i].SortOrder < canvases[j].SortOrder
	})
	for _, c := range canvases {
		c.Draw(screen)
	}
}

// DrawStatus draws the raygui status bar along the bottom of the screen.
func (r *Renderer) DrawStatus(screen rl.Rectangle, text string) {
	gui.StatusBar(rl.Rectangle{X: 0, Y: screen.Height - 24, Width: screen.Width, Height: 24}, text)
}

// DrawHelp draws the control hints as raygui labels.
func (r *Renderer) DrawHelp(lines []string) {
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: 10, Y: 10 + float32(i)*22, Width: 520, Height: 20}, line)
	}
}

func (r *Renderer) Unload() {
	assets.Unload()
	rl.UnloadShader(r.Shader)
}
