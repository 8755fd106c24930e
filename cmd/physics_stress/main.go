// Stress test comparing the all-pairs and spatial-grid broad phases.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"farmdrive/internal/logging"
	"farmdrive/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "physics_stress",
		Usage: "time the broad phases over random bodies and check they agree",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  "counts",
				Value: cli.NewIntSlice(100, 500, 1000, 2000, 5000),
				Usage: "body counts to test",
			},
			&cli.IntFlag{Name: "iterations", Value: 10, Usage: "timed runs per broad phase"},
			&cli.Float64Flag{Name: "cell", Value: 4, Usage: "spatial grid cell size"},
			&cli.Int64Flag{Name: "seed", Value: 42},
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Action: func(c *cli.Context) error {
			logger := logging.Setup(c.String("log-level"), os.Stderr)
			for _, n := range c.IntSlice("counts") {
				r, err := compare(n, c.Int("iterations"), float32(c.Float64("cell")), c.Int64("seed"))
				if err != nil {
					return err
				}
				r.log(logger)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type result struct {
	Bodies   int
	Pairs    int // candidates from all-pairs
	Contacts int
	AllPairs time.Duration
	Grid     time.Duration
}

func (r result) log(logger zerolog.Logger) {
	speedup := 0.0
	if r.Grid > 0 {
		speedup = float64(r.AllPairs) / float64(r.Grid)
	}
	logger.Info().
		Int("bodies", r.Bodies).
		Int("candidates", r.Pairs).
		Int("contacts", r.Contacts).
		Dur("allPairs", r.AllPairs.Round(time.Microsecond)).
		Dur("grid", r.Grid.Round(time.Microsecond)).
		Float64("speedup", speedup).
		Msg("broad phase")
}

// randomBodies scatters boxes in a cube that grows with n to keep density
// roughly constant. One in twenty is static.
func randomBodies(n int, seed int64) []physics.RigidBody {
	rng := rand.New(rand.NewSource(seed))
	spread := 30 + float32(n)/20

	var store physics.Store
	for i := 0; i < n; i++ {
		mass := float32(1)
		if i%20 == 0 {
			mass = 0
		}
		def := physics.BodyDef{
			Name: fmt.Sprintf("box-%d", i),
			Position: rl.Vector3{
				X: rng.Float32()*spread - spread/2,
				Y: rng.Float32() * spread / 4,
				Z: rng.Float32()*spread - spread/2,
			},
			Size: rl.Vector3{
				X: 0.5 + rng.Float32()*1.5,
				Y: 0.5 + rng.Float32()*1.5,
				Z: 0.5 + rng.Float32()*1.5,
			},
			Mass: mass,
		}
		if _, err := store.Add(def); err != nil {
			panic(err) // every def above is valid
		}
	}
	return store.Bodies()
}

func timePairs(bp physics.BroadPhase, bodies []physics.RigidBody, iterations int) ([]physics.Pair, time.Duration) {
	var pairs []physics.Pair
	pairs = bp.Pairs(bodies, pairs) // warm up
	start := time.Now()
	for i := 0; i < iterations; i++ {
		pairs = bp.Pairs(bodies, pairs[:0])
	}
	return pairs, time.Since(start) / time.Duration(iterations)
}

func contacts(bodies []physics.RigidBody, pairs []physics.Pair) []physics.Pair {
	var out []physics.Pair
	for _, p := range pairs {
		if _, ok := physics.CollideAABB(&bodies[p.A], &bodies[p.B]); ok {
			out = append(out, p)
		}
	}
	return out
}

// compare runs both broad phases on the same bodies. It fails if they do
// not lead to the same contacts.
func compare(n, iterations int, cell float32, seed int64) (result, error) {
	if iterations < 1 {
		iterations = 1
	}
	bodies := randomBodies(n, seed)

	allPairs, allTime := timePairs(physics.AllPairs{}, bodies, iterations)
	gridPairs, gridTime := timePairs(physics.NewSpatialGrid(cell), bodies, iterations)

	want := contacts(bodies, allPairs)
	got := contacts(bodies, gridPairs)
	if len(want) != len(got) {
		return result{}, errors.Errorf("%d bodies: all-pairs found %d contacts, grid %d", n, len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return result{}, errors.Errorf("%d bodies: contact %d differs: %v vs %v", n, i, want[i], got[i])
		}
	}

	return result{
		Bodies:   n,
		Pairs:    len(allPairs),
		Contacts: len(want),
		AllPairs: allTime,
		Grid:     gridTime,
	}, nil
}
