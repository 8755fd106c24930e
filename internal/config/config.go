package config

import (
	"farmdrive/internal/components"
	"farmdrive/internal/physics"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FileName is looked up in the directory passed to Load.
const FileName = "farmdrive.cfg.json"

// WindowConfig holds the raylib window settings.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// GameConfig is everything the game loop needs besides physics tuning.
type GameConfig struct {
	LogLevel       string
	Window         WindowConfig
	SceneFile      string
	MetricsEnabled bool
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "Farm Drive")
	viper.SetDefault("window.targetFps", 60)

	viper.SetDefault("scene.file", "")
	viper.SetDefault("metrics.enabled", false)

	p := physics.DefaultConfig()
	viper.SetDefault("physics.gravity", p.Gravity)
	viper.SetDefault("physics.linearDrag", p.LinearDrag)
	viper.SetDefault("physics.angularDamping", p.AngularDamping)
	viper.SetDefault("physics.restitution", p.Restitution)
	viper.SetDefault("physics.friction", p.Friction)
	viper.SetDefault("physics.frictionEpsilon", p.FrictionEpsilon)
	viper.SetDefault("physics.slop", p.Slop)
	viper.SetDefault("physics.iterations", p.Iterations)
	viper.SetDefault("physics.broadPhase", p.BroadPhase)
	viper.SetDefault("physics.gridCellSize", p.GridCellSize)
	viper.SetDefault("physics.groundBounce", p.GroundBounce)
	viper.SetDefault("physics.groundSettleSpeed", p.GroundSettleSpeed)
	viper.SetDefault("physics.groundFriction", p.GroundFriction)
	viper.SetDefault("physics.groundContactEpsilon", p.GroundContactEpsilon)
	viper.SetDefault("physics.steeringGain", p.SteeringGain)
	viper.SetDefault("physics.brakeForce", p.BrakeForce)
	viper.SetDefault("physics.brakeMinSpeed", p.BrakeMinSpeed)
	viper.SetDefault("physics.boostMultiplier", p.BoostMultiplier)
	viper.SetDefault("physics.minImpactSpeedSq", p.MinImpactSpeedSq)
	viper.SetDefault("physics.fallStrength", p.FallStrength)
	viper.SetDefault("physics.fallDecay", p.FallDecay)
	viper.SetDefault("physics.minFallSpeed", p.MinFallSpeed)

	v := components.DefaultVehicleTuning()
	viper.SetDefault("vehicle.engineForce", v.EngineForce)
	viper.SetDefault("vehicle.reverseForce", v.ReverseForce)
	viper.SetDefault("vehicle.maxSpeed", v.MaxSpeed)
	viper.SetDefault("vehicle.steerTorque", v.SteerTorque)
	viper.SetDefault("vehicle.turnSpeedRef", v.TurnSpeedRef)

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "error reading config file")
	}

	switch bp := viper.GetString("physics.broadPhase"); bp {
	case physics.BroadPhaseAllPairs, physics.BroadPhaseGrid:
	default:
		return errors.Errorf("physics.broadPhase: unknown broad phase %q", bp)
	}
	if viper.GetInt("physics.iterations") < 1 {
		return errors.New("physics.iterations must be at least 1")
	}
	return nil
}

func getFloat32(key string) float32 {
	return float32(viper.GetFloat64(key))
}

// Physics builds the simulation tuning from the loaded keys.
func Physics() physics.Config {
	return physics.Config{
		Gravity:        getFloat32("physics.gravity"),
		LinearDrag:     getFloat32("physics.linearDrag"),
		AngularDamping: getFloat32("physics.angularDamping"),

		Restitution:     getFloat32("physics.restitution"),
		Friction:        getFloat32("physics.friction"),
		FrictionEpsilon: getFloat32("physics.frictionEpsilon"),
		Slop:            getFloat32("physics.slop"),
		Iterations:      viper.GetInt("physics.iterations"),
		BroadPhase:      viper.GetString("physics.broadPhase"),
		GridCellSize:    getFloat32("physics.gridCellSize"),

		GroundBounce:         getFloat32("physics.groundBounce"),
		GroundSettleSpeed:    getFloat32("physics.groundSettleSpeed"),
		GroundFriction:       getFloat32("physics.groundFriction"),
		GroundContactEpsilon: getFloat32("physics.groundContactEpsilon"),

		SteeringGain:    getFloat32("physics.steeringGain"),
		BrakeForce:      getFloat32("physics.brakeForce"),
		BrakeMinSpeed:   getFloat32("physics.brakeMinSpeed"),
		BoostMultiplier: getFloat32("physics.boostMultiplier"),

		MinImpactSpeedSq: getFloat32("physics.minImpactSpeedSq"),
		FallStrength:     getFloat32("physics.fallStrength"),
		FallDecay:        getFloat32("physics.fallDecay"),
		MinFallSpeed:     getFloat32("physics.minFallSpeed"),
	}
}

// Vehicle builds the controller tuning. The boost multiplier is shared with
// the physics side so the speed cap and the engine boost agree.
func Vehicle() components.VehicleTuning {
	return components.VehicleTuning{
		EngineForce:     getFloat32("vehicle.engineForce"),
		ReverseForce:    getFloat32("vehicle.reverseForce"),
		MaxSpeed:        getFloat32("vehicle.maxSpeed"),
		SteerTorque:     getFloat32("vehicle.steerTorque"),
		TurnSpeedRef:    getFloat32("vehicle.turnSpeedRef"),
		BoostMultiplier: getFloat32("physics.boostMultiplier"),
	}
}

func Game() GameConfig {
	return GameConfig{
		LogLevel: viper.GetString("logLevel"),
		Window: WindowConfig{
			Width:     viper.GetInt("window.width"),
			Height:    viper.GetInt("window.height"),
			Title:     viper.GetString("window.title"),
			TargetFPS: viper.GetInt("window.targetFps"),
		},
		SceneFile:      viper.GetString("scene.file"),
		MetricsEnabled: viper.GetBool("metrics.enabled"),
	}
}
