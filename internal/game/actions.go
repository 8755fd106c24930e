package game

import (
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a one-shot command from the keyboard or the HUD.
type Action int

const (
	ActionNone Action = iota
	ActionSpawnCrate
	ActionResetScene
	ActionToggleDebug
	ActionUseAllPairs
	ActionUseGrid
	ActionOrbitLeft
	ActionOrbitRight
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionSpawnCrate:  "spawn-crate",
	ActionResetScene:  "reset-scene",
	ActionToggleDebug: "toggle-debug",
	ActionUseAllPairs: "use-allpairs",
	ActionUseGrid:     "use-grid",
	ActionOrbitLeft:   "orbit-left",
	ActionOrbitRight:  "orbit-right",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

const orbitStep = 15 // degrees per key press

var keyActions = []struct {
	key    int32
	action Action
}{
	{rl.KeyF, ActionSpawnCrate},
	{rl.KeyR, ActionResetScene},
	{rl.KeyF1, ActionToggleDebug},
	{rl.KeyQ, ActionOrbitLeft},
	{rl.KeyE, ActionOrbitRight},
}

func pollActions() []Action {
	var out []Action
	for _, ka := range keyActions {
		if rl.IsKeyPressed(ka.key) {
			out = append(out, ka.action)
		}
	}
	return out
}

// Apply runs an action. Failures are logged, not returned, because there is
// nobody to hand them to in the middle of a frame.
func (g *Game) Apply(a Action) {
	switch a {
	case ActionSpawnCrate:
		if _, err := g.World.SpawnCrate(); err != nil {
			g.logger.Error().Err(err).Msg("spawn failed")
			return
		}
	case ActionResetScene:
		if err := g.World.Reset(); err != nil {
			g.logger.Error().Err(err).Msg("reset failed")
			return
		}
	case ActionToggleDebug:
		g.DebugMode = !g.DebugMode
	case ActionUseAllPairs:
		g.useBroadPhase(physics.BroadPhaseAllPairs)
	case ActionUseGrid:
		g.useBroadPhase(physics.BroadPhaseGrid)
	case ActionOrbitLeft:
		g.Camera.Orbit(-orbitStep)
	case ActionOrbitRight:
		g.Camera.Orbit(orbitStep)
	default:
		return
	}
	g.logger.Debug().Stringer("action", a).Msg("applied")
}

func (g *Game) useBroadPhase(name string) {
	phys := g.World.Physics
	if phys.Config.BroadPhase == name {
		return
	}
	phys.Config.BroadPhase = name
	phys.SetBroadPhase(phys.Config.NewBroadPhase())
	g.logger.Info().Str("broadPhase", name).Msg("broad phase switched")
}
