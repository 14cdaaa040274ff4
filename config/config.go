// Package config reads gridpath's command-line settings from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvRows      = "GRIDPATH_ROWS"
	EnvCols      = "GRIDPATH_COLS"
	EnvAlgorithm = "GRIDPATH_ALGORITHM"
	EnvMaze      = "GRIDPATH_MAZE"
	EnvDensity   = "GRIDPATH_DENSITY"
	EnvSeed      = "GRIDPATH_SEED"
	EnvDelay     = "GRIDPATH_DELAY"
)

// Algorithm names accepted in GRIDPATH_ALGORITHM.
const (
	AlgorithmBFS   = "bfs"
	AlgorithmAStar = "astar"
	AlgorithmBoth  = "both"
)

// ErrInvalidValue wraps every parse or range failure.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the CLI's run parameters.
type Config struct {
	Rows      int           // grid height, odd when Maze is set
	Cols      int           // grid width, odd when Maze is set
	Algorithm string        // bfs, astar or both
	Maze      bool          // carve a perfect maze instead of scattering walls
	Density   float64       // wall probability for scattered layouts
	Seed      int64         // 0 lets the caller pick one
	Delay     time.Duration // pause between printed events; 0 prints only the result
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Rows:      21,
		Cols:      41,
		Algorithm: AlgorithmAStar,
		Maze:      true,
		Density:   0.3,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and then calls FromEnv. A missing file is not an
// error; variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from GRIDPATH_* variables on top of Default and
// validates it.
func FromEnv() (Config, error) {
	c := Default()
	var err error

	if c.Rows, err = getEnvAsInt(EnvRows, c.Rows); err != nil {
		return Config{}, err
	}
	if c.Cols, err = getEnvAsInt(EnvCols, c.Cols); err != nil {
		return Config{}, err
	}
	c.Algorithm = getEnvWithDefault(EnvAlgorithm, c.Algorithm)
	if c.Maze, err = getEnvAsBool(EnvMaze, c.Maze); err != nil {
		return Config{}, err
	}
	if c.Density, err = getEnvAsFloat(EnvDensity, c.Density); err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt(EnvSeed, int(c.Seed))
	if err != nil {
		return Config{}, err
	}
	c.Seed = int64(seed)
	if c.Delay, err = getEnvAsDuration(EnvDelay, c.Delay); err != nil {
		return Config{}, err
	}

	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges that do not depend on the grid itself. Odd maze
// dimensions are left to maze.New, which reports them precisely.
func (c Config) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("%w: size %dx%d is below 3x3", ErrInvalidValue, c.Rows, c.Cols)
	}
	switch c.Algorithm {
	case AlgorithmBFS, AlgorithmAStar, AlgorithmBoth:
	default:
		return fmt.Errorf("%w: algorithm %q (want bfs, astar or both)", ErrInvalidValue, c.Algorithm)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidValue, c.Density)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: negative delay %v", ErrInvalidValue, c.Delay)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return v, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidValue, key, err)
	}
	return v, nil
}

// getEnvAsDuration accepts Go durations ("50ms") and bare integers, which
// are read as milliseconds.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidValue, key, err)
	}
	return v, nil
}
