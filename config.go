package wavepick

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config carries the §6 configuration knobs, read once at driver
// construction. Every field has the spec's default; callers needing a
// non-default value can either set the environment variable before
// calling NewConfigFromEnv or construct a Config literal directly.
// This is deliberately just scalar os.Getenv/strconv parsing — the
// teacher configures exclusively through flag.* in its main()
// functions (flagTypes.go), never a config library, and seven scalar
// knobs read once do not justify introducing one here either.
type Config struct {
	MaxWallClock           time.Duration
	SmallCorridorThreshold int
	ParallelPoolSize       int
	PerSubsolveTimeSmall   time.Duration
	SolverThreads          int
	MaxDinkelbachIters     int
	LPIterCap              int

	PruneDominatedCorridors bool
}

// DefaultConfig returns the spec's §6 defaults.
func DefaultConfig() Config {
	return Config{
		MaxWallClock:           10*time.Minute - 5*time.Second,
		SmallCorridorThreshold: 20,
		ParallelPoolSize:       4,
		PerSubsolveTimeSmall:   120 * time.Second,
		SolverThreads:          defaultSolverThreads(),
		MaxDinkelbachIters:     50,
		LPIterCap:              50,
	}
}

// NewConfigFromEnv starts from DefaultConfig and overrides any field
// whose environment variable is set and parses cleanly; a malformed or
// absent variable silently keeps the default, matching §6's "optional"
// framing for everything but the hard wall clock.
func NewConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v, ok := envInt("SMALL_CORRIDOR_THRESHOLD"); ok {
		cfg.SmallCorridorThreshold = v
	}
	if v, ok := envInt("PARALLEL_POOL_SIZE"); ok {
		cfg.ParallelPoolSize = v
	}
	if v, ok := envInt("SOLVER_THREADS"); ok {
		cfg.SolverThreads = v
	}
	if v, ok := envInt("MAX_DINKELBACH_ITERS"); ok {
		cfg.MaxDinkelbachIters = v
	}
	if v, ok := envInt("LP_ITER_CAP"); ok {
		cfg.LPIterCap = v
	}
	if v, ok := envInt("MAX_WALL_CLOCK_MS"); ok {
		cfg.MaxWallClock = time.Duration(v) * time.Millisecond
	}
	if v, ok := envFloat("PER_SUBSOLVE_TIME_SMALL"); ok {
		cfg.PerSubsolveTimeSmall = time.Duration(v * float64(time.Second))
	}

	return cfg
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(name string) (float64, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func defaultSolverThreads() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
