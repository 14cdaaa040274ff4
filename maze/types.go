package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for maze operations.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrInvalidOrigin is returned when the carve origin is not an odd
	// interior coordinate.
	ErrInvalidOrigin = errors.New("maze: origin must lie on odd interior coordinates")

	// ErrInvalidDensity is returned when Scatter density is outside [0,1].
	ErrInvalidDensity = errors.New("maze: density must be within [0,1]")

	// ErrCycle is returned by Verify when passable cells contain a loop.
	ErrCycle = errors.New("maze: passable cells contain a cycle")

	// ErrDisconnected is returned by Verify when passable cells form more
	// than one component.
	ErrDisconnected = errors.New("maze: passable cells are disconnected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Option configures maze generation via functional arguments.
type Option func(*Options)

// Options holds the random source and event settings.
type Options struct {
	// Seed feeds a fresh *rand.Rand on every iteration of the carve
	// sequence, so replays reproduce the same maze. 0 selects defaultSeed.
	Seed int64

	// Rand, when non-nil, replaces the Seed-derived source. Its state is
	// shared across iterations, so replays differ.
	Rand *rand.Rand

	// HeadTracking emits StateCurrent for the top of the carve stack and
	// restores it to StateEmpty when the head moves on.
	HeadTracking bool

	err error
}

// DefaultOptions returns Options with the default seed, no external source
// and no head tracking.
func DefaultOptions() Options {
	return Options{Seed: defaultSeed}
}

// WithSeed selects a deterministic seed. 0 maps to defaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a caller-owned random source.
// A nil source is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithHeadTracking enables StateCurrent events for the carving head.
func WithHeadTracking() Option {
	return func(o *Options) {
		o.HeadTracking = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
