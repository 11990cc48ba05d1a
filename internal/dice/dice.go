package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/pig/internal/dice Roller

import (
	"math/rand/v2"
	"time"
)

// DefaultSides is the number of faces on a standard die
const DefaultSides = 6

const goldenRatio64 = 0x9e3779b97f4a7c15

// Roller is the single source of randomness for a game
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int

	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// randomRoller implements Roller on top of one seeded generator
type randomRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	u := uint64(seed)
	return &randomRoller{
		random: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *randomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}
	return r.random.IntN(sides) + 1
}

// Intn picks a uniform index in [0, n). n must be positive.
func (r *randomRoller) Intn(n int) int {
	return r.random.IntN(n)
}

// mix spreads a 64-bit seed so nearby seeds give unrelated PCG states
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
