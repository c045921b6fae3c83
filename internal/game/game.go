package game

import (
	"fmt"
	"time"

	"demos3d/internal/config"
	"demos3d/internal/input"
	"demos3d/internal/logging"
	"demos3d/internal/scenes"
	"demos3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var background = rl.NewColor(20, 20, 30, 255)

type Game struct {
	Config config.Config
	World  *world.World

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
	frames   uint64
}

// New builds the configured scene. No window is needed until Run.
func New(cfg config.Config) (*Game, error) {
	scene, err := scenes.Build(cfg.Scene, scenes.Options{
		MouseSensitivity: cfg.MouseSensitivity,
		Seed:             cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	in := input.NewRaylib()
	w := world.New(scene, in, in)
	w.Debug = cfg.Debug

	return &Game{Config: cfg, World: w}, nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.Config.Window.Width), int32(g.Config.Window.Height), g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.Config.TargetFPS))
	// Escape releases the cursor instead of closing the window
	rl.SetExitKey(0)

	// Renderer after OpenGL context is created
	g.World.Renderer = world.NewRenderer()
	if err := g.World.Renderer.Initialize(); err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer g.World.Renderer.Unload()

	g.World.Start()
	logging.Logger.Info().
		Str("scene", g.Config.Scene).
		Int("objects", len(g.World.Scene.GameObjects)).
		Msg("scene started")

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}

	logging.Logger.Info().Uint64("frames", g.frames).Msg("window closed")
	return nil
}

func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()
	g.World.Update(deltaTime)
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
	g.frames++
}

func (g *Game) Draw() {
	screen := rl.Rectangle{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
	r := g.World.Renderer

	rl.BeginDrawing()
	rl.ClearBackground(background)

	drawStart := time.Now()
	if cam, ok := g.World.ActiveCamera(); ok && screen.Height > 0 {
		r.Draw(g.World.Scene, cam, screen.Width/screen.Height, g.World.Debug)
	}
	r.DrawUI(g.World.Scene, screen)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	r.DrawHelp(HelpLines(g.Config.Scene))
	if g.World.Debug {
		r.DrawStatus(screen, g.statusText())
		rl.DrawFPS(int32(screen.Width)-90, 10)
	}
	rl.EndDrawing()

	logging.FrameSample.Trace().
		Float64("updateMs", g.updateMs).
		Float64("drawMs", g.drawMs).
		Int("drawn", r.Drawn).
		Int("culled", r.Culled).
		Msg("frame")
}

func (g *Game) statusText() string {
	r := g.World.Renderer
	return fmt.Sprintf("Update %.2f ms | Draw %.2f ms | Total %.2f ms | meshes %d drawn, %d culled | bodies %d",
		g.updateMs, g.drawMs, g.updateMs+g.drawMs, r.Drawn, r.Culled, len(g.World.GetCollidableObjects()))
}

// HelpLines returns the control hints for a scene.
func HelpLines(scene string) []string {
	if scene == "shooter" {
		return []string{
			"WASD to move, Space for jetpack, Shift to dash",
			"Aim with the mouse, hold left button to fire",
			"F1 to toggle collider debug",
		}
	}
	return []string{
		"WASD to move, Shift to run, Space to jump, Mouse to look",
		"Click to grab the cursor and recolour props, Esc to release",
		"F1 to toggle collider debug",
	}
}
