// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package plotgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/2dChan/plotgen/geom"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultSeedCount     = 64
	defaultSize          = 256
	defaultPadding       = 8
	defaultStreetWidth   = 6
	defaultMinEdgeLength = 2
	defaultMinAngle      = 25
	defaultMinArea       = 40
	defaultInset         = 2
	defaultSeed          = 1
)

// Config holds every tunable of sector generation. The zero value is not
// usable; start from DefaultConfig or pass options to New.
type Config struct {
	SeedCount int
	Bounds    r2.Rect
	// Padding keeps seeds away from the sector boundary.
	Padding float64
	// StreetWidth is the gap between neighbouring pavement plots. Each cell
	// is inset by half of it.
	StreetWidth float64
	// SnapSize is the grid step cell vertices are rounded to. Values at or
	// below geom.Eps disable snapping.
	SnapSize      float64
	MinEdgeLength float64
	// MinAngle is in degrees.
	MinAngle float64
	MinArea  float64
	// Inset is the footprint offset from the pavement plot.
	Inset      float64
	RelaxSteps int
	Seed       int64

	Rand         *rand.Rand
	Logger       *zap.Logger
	Triangulator Triangulator
}

// DefaultConfig returns the configuration New starts from.
func DefaultConfig() Config {
	return Config{
		SeedCount:     defaultSeedCount,
		Bounds:        r2.Rect{X: r1.Interval{Lo: 0, Hi: defaultSize}, Y: r1.Interval{Lo: 0, Hi: defaultSize}},
		Padding:       defaultPadding,
		StreetWidth:   defaultStreetWidth,
		MinEdgeLength: defaultMinEdgeLength,
		MinAngle:      defaultMinAngle,
		MinArea:       defaultMinArea,
		Inset:         defaultInset,
		Seed:          defaultSeed,
	}
}

// Thresholds returns the validator limits applied to pavement and footprint
// plots.
func (c Config) Thresholds() geom.Thresholds {
	return geom.Thresholds{
		MinEdgeLength: c.MinEdgeLength,
		MinAngle:      c.MinAngle,
		MinArea:       c.MinArea,
	}
}

// SeedBounds returns the region seeds are sampled from: Bounds shrunk by
// Padding on every side.
func (c Config) SeedBounds() r2.Rect {
	return c.Bounds.ExpandedByMargin(-c.Padding)
}

// Validate reports every inconsistency in c at once.
func (c Config) Validate() error {
	var err error
	if c.SeedCount < 0 {
		err = multierr.Append(err, fmt.Errorf("seed count must be non-negative, got %d", c.SeedCount))
	}
	if c.Bounds.IsEmpty() || c.Bounds.X.Length() <= 0 || c.Bounds.Y.Length() <= 0 {
		err = multierr.Append(err, fmt.Errorf("bounds must have positive size, got %v", c.Bounds))
	} else if sb := c.SeedBounds(); sb.IsEmpty() || sb.X.Length() <= 0 || sb.Y.Length() <= 0 {
		err = multierr.Append(err, fmt.Errorf("padding %v leaves no room for seeds in %v", c.Padding, c.Bounds))
	}
	if c.Padding < 0 {
		err = multierr.Append(err, fmt.Errorf("padding must be non-negative, got %v", c.Padding))
	}
	if c.StreetWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("street width must be non-negative, got %v", c.StreetWidth))
	}
	if c.SnapSize < 0 {
		err = multierr.Append(err, fmt.Errorf("snap size must be non-negative, got %v", c.SnapSize))
	}
	if c.MinEdgeLength < 0 {
		err = multierr.Append(err, fmt.Errorf("min edge length must be non-negative, got %v", c.MinEdgeLength))
	}
	if c.MinAngle < 0 || c.MinAngle >= 180 {
		err = multierr.Append(err, fmt.Errorf("min angle must be in [0 180), got %v", c.MinAngle))
	}
	if c.MinArea < 0 {
		err = multierr.Append(err, fmt.Errorf("min area must be non-negative, got %v", c.MinArea))
	}
	if c.Inset < 0 {
		err = multierr.Append(err, fmt.Errorf("inset must be non-negative, got %v", c.Inset))
	}
	if c.RelaxSteps < 0 {
		err = multierr.Append(err, fmt.Errorf("relax steps must be non-negative, got %d", c.RelaxSteps))
	}
	if err != nil {
		return fmt.Errorf("plotgen: invalid config: %w", err)
	}
	return nil
}

type Option func(*Config) error

// WithSeedCount sets the number of seed points sampled.
func WithSeedCount(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("WithSeedCount: n must be non-negative, got %d", n)
		}
		c.SeedCount = n
		return nil
	}
}

// WithSize sets Bounds to [0 w]x[0 h].
func WithSize(w, h float64) Option {
	return func(c *Config) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("WithSize: size must be positive, got %vx%v", w, h)
		}
		c.Bounds = r2.Rect{X: r1.Interval{Lo: 0, Hi: w}, Y: r1.Interval{Lo: 0, Hi: h}}
		return nil
	}
}

// WithBounds sets the sector rectangle.
func WithBounds(r r2.Rect) Option {
	return func(c *Config) error {
		if r.IsEmpty() || r.X.Length() <= 0 || r.Y.Length() <= 0 {
			return fmt.Errorf("WithBounds: bounds must have positive size, got %v", r)
		}
		c.Bounds = r
		return nil
	}
}

func WithPadding(padding float64) Option {
	return func(c *Config) error {
		if padding < 0 {
			return fmt.Errorf("WithPadding: padding must be non-negative, got %v", padding)
		}
		c.Padding = padding
		return nil
	}
}

func WithStreetWidth(width float64) Option {
	return func(c *Config) error {
		if width < 0 {
			return fmt.Errorf("WithStreetWidth: width must be non-negative, got %v", width)
		}
		c.StreetWidth = width
		return nil
	}
}

// WithSnapSize sets the snapping grid step. Zero disables snapping.
func WithSnapSize(size float64) Option {
	return func(c *Config) error {
		if size < 0 {
			return fmt.Errorf("WithSnapSize: size must be non-negative, got %v", size)
		}
		c.SnapSize = size
		return nil
	}
}

func WithMinEdgeLength(length float64) Option {
	return func(c *Config) error {
		if length < 0 {
			return fmt.Errorf("WithMinEdgeLength: length must be non-negative, got %v", length)
		}
		c.MinEdgeLength = length
		return nil
	}
}

// WithMinAngle sets the smallest allowed interior angle, in degrees.
func WithMinAngle(deg float64) Option {
	return func(c *Config) error {
		if deg < 0 || deg >= 180 {
			return fmt.Errorf("WithMinAngle: angle must be in [0 180), got %v", deg)
		}
		c.MinAngle = deg
		return nil
	}
}

func WithMinArea(area float64) Option {
	return func(c *Config) error {
		if area < 0 {
			return fmt.Errorf("WithMinArea: area must be non-negative, got %v", area)
		}
		c.MinArea = area
		return nil
	}
}

func WithInset(inset float64) Option {
	return func(c *Config) error {
		if inset < 0 {
			return fmt.Errorf("WithInset: inset must be non-negative, got %v", inset)
		}
		c.Inset = inset
		return nil
	}
}

// WithRelaxSteps sets the number of Lloyd relaxation steps applied to the
// seeds before cells are built.
func WithRelaxSteps(steps int) Option {
	return func(c *Config) error {
		if steps < 0 {
			return fmt.Errorf("WithRelaxSteps: steps must be non-negative, got %d", steps)
		}
		c.RelaxSteps = steps
		return nil
	}
}

// WithSeed seeds the default random source. It has no effect together with
// WithRand.
func WithSeed(seed int64) Option {
	return func(c *Config) error {
		c.Seed = seed
		return nil
	}
}

// WithRand injects the random source used for seed sampling.
func WithRand(random *rand.Rand) Option {
	return func(c *Config) error {
		if random == nil {
			return errors.New("WithRand: random must not be nil")
		}
		c.Rand = random
		return nil
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Config) error {
		if log == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		c.Logger = log
		return nil
	}
}

// WithTriangulator replaces the default Delaunay provider.
func WithTriangulator(t Triangulator) Option {
	return func(c *Config) error {
		if t == nil {
			return errors.New("WithTriangulator: triangulator must not be nil")
		}
		c.Triangulator = t
		return nil
	}
}
