package game

import (
	"time"

	"farmdrive/internal/camera"
	"farmdrive/internal/components"
	"farmdrive/internal/config"
	"farmdrive/internal/physics"
	"farmdrive/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// maxFrameTime caps the step after a stall (window drag, breakpoint) so
// bodies do not tunnel.
const maxFrameTime = 1.0 / 20

var skyColor = rl.NewColor(135, 190, 235, 255)

type Game struct {
	World    *world.World
	Camera   *camera.FollowCamera
	Renderer *world.Renderer
	HUD      *HUD

	DebugMode bool

	cfg    config.GameConfig
	logger zerolog.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the simulation and the scene. It does not touch the window, so
// it can run headless; Run opens the window.
func New(cfg config.GameConfig, physCfg physics.Config, tuning components.VehicleTuning, logger zerolog.Logger) (*Game, error) {
	scene := world.FarmScene()
	if cfg.SceneFile != "" {
		sf, err := world.LoadSceneFile(cfg.SceneFile)
		if err != nil {
			return nil, err
		}
		scene = sf
	}

	phys := physics.NewWorld(physCfg, logger)
	w := world.New(phys, tuning, logger)
	if err := w.Build(scene); err != nil {
		return nil, err
	}

	g := &Game{
		World:    w,
		Camera:   camera.NewFollow(phys),
		Renderer: world.NewRenderer(world.FloorSize),
		cfg:      cfg,
		logger:   logger.With().Str("component", "game").Logger(),
	}
	g.HUD = NewHUD(g)
	g.Camera.Follow(w.VehicleObject())
	w.OnReset.AddListener(func() {
		g.Camera.Follow(w.VehicleObject())
	})
	return g, nil
}

// SetMetrics forwards metric instruments to the physics world.
func (g *Game) SetMetrics(m *physics.Metrics) {
	g.World.Physics.SetMetrics(m)
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))

	applyStyle()

	// Meshes need the GL context.
	g.World.Start()

	g.logger.Info().
		Int("bodies", g.World.Physics.BodyCount()).
		Str("broadPhase", g.World.Physics.Config.BroadPhase).
		Msg("running")

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	g.unload()
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()
	if deltaTime > maxFrameTime {
		deltaTime = maxFrameTime
	}

	for _, a := range pollActions() {
		g.Apply(a)
	}

	g.World.Update(deltaTime)
	g.Camera.Update(deltaTime, g.World.Scene)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	drawStart := time.Now()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	g.Renderer.Debug = g.DebugMode
	g.Renderer.Draw(g.Camera.Camera, aspect, g.World)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw()
	rl.EndDrawing()
}

func (g *Game) unload() {
	for _, obj := range g.World.Scene.GameObjects {
		for _, c := range obj.Components() {
			if u, ok := c.(interface{ Unload() }); ok {
				u.Unload()
			}
		}
	}
}
