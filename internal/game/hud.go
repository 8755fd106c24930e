package game

import (
	"fmt"

	"farmdrive/internal/components"
	"farmdrive/internal/engine"
	"farmdrive/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark    = rl.NewColor(16, 20, 18, 255)
	colorBgPanel   = rl.NewColor(24, 30, 26, 220)
	colorBgElement = rl.NewColor(40, 52, 44, 255)
	colorBgHover   = rl.NewColor(56, 72, 60, 255)
	colorAccent    = rl.NewColor(214, 160, 60, 255) // straw

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(206, 214, 200, 255)
)

const (
	hudX     = 10
	hudY     = 10
	hudWidth = 230
	rowH     = 22
)

// Stats is a snapshot of what the HUD shows.
type Stats struct {
	SpeedKmh   float32
	Bodies     int
	Contacts   int
	Impacts    int
	Toppled    int
	StepMs     float64
	Drawn      int
	Culled     int
	BroadPhase string
}

func (g *Game) Stats() Stats {
	s := Stats{
		Bodies:     g.World.Physics.BodyCount(),
		Contacts:   g.World.Physics.LastContacts,
		Impacts:    g.World.Physics.LastImpacts,
		Toppled:    g.World.Toppled,
		StepMs:     float64(g.World.Physics.LastStep.Microseconds()) / 1000.0,
		Drawn:      g.Renderer.Drawn,
		Culled:     g.Renderer.Culled,
		BroadPhase: g.World.Physics.Config.BroadPhase,
	}
	if car := g.World.VehicleObject(); car != nil {
		if vc := engine.GetComponent[*components.VehicleController](car); vc != nil {
			s.SpeedKmh = vc.Speed() * 3.6
		}
	}
	return s
}

// Lines formats the readout, one entry per HUD row.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Speed     %5.1f km/h", s.SpeedKmh),
		fmt.Sprintf("Bodies    %d", s.Bodies),
		fmt.Sprintf("Contacts  %d", s.Contacts),
		fmt.Sprintf("Impacts   %d", s.Impacts),
		fmt.Sprintf("Toppled   %d", s.Toppled),
		fmt.Sprintf("Step      %.2f ms", s.StepMs),
		fmt.Sprintf("Drawn     %d (culled %d)", s.Drawn, s.Culled),
	}
}

// HUD is the raygui overlay.
type HUD struct {
	game *Game
}

func NewHUD(g *Game) *HUD {
	return &HUD{game: g}
}

func (h *HUD) Draw() {
	g := h.game
	stats := g.Stats()
	lines := stats.Lines()

	height := float32(rowH*(len(lines)+6) + 16)
	gui.Panel(rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: height}, "Farm Drive")

	y := float32(hudY + 30)
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: hudX + 10, Y: y, Width: hudWidth - 20, Height: rowH}, line)
		y += rowH
	}
	y += 6

	debug := gui.CheckBox(rl.Rectangle{X: hudX + 10, Y: y + 4, Width: 14, Height: 14}, "Debug boxes (F1)", g.DebugMode)
	if debug != g.DebugMode {
		g.Apply(ActionToggleDebug)
	}
	y += rowH + 2

	active := int32(0)
	if stats.BroadPhase == physics.BroadPhaseGrid {
		active = 1
	}
	half := float32(hudWidth-20) / 2
	if next := gui.ToggleGroup(rl.Rectangle{X: hudX + 10, Y: y, Width: half, Height: rowH}, "All pairs;Grid", active); next != active {
		if next == 1 {
			g.Apply(ActionUseGrid)
		} else {
			g.Apply(ActionUseAllPairs)
		}
	}
	y += rowH + 6

	if gui.Button(rl.Rectangle{X: hudX + 10, Y: y, Width: half - 4, Height: rowH}, "Spawn (F)") {
		g.Apply(ActionSpawnCrate)
	}
	if gui.Button(rl.Rectangle{X: hudX + 14 + half, Y: y, Width: half - 4, Height: rowH}, "Reset (R)") {
		g.Apply(ActionResetScene)
	}
	y += rowH + 8

	rl.DrawText("WASD drive, Space brake, Shift boost, Q/E orbit", hudX, int32(y)+4, 10, colorBgDark)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)

	if g.DebugMode {
		sw := int32(rl.GetScreenWidth())
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), sw-160, 36, 16, rl.DarkGreen)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), sw-160, 56, 16, rl.DarkGreen)
	}
}

func applyStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}
