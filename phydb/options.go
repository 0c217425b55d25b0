package phydb

import "github.com/rs/zerolog"

// Default values for the two numeric knobs a driver program can tune:
// the partition's bucket width and the capacitance query's
// neighborhood-bin radius.
const (
	DefaultPartitionSize    = 750.0
	DefaultNeighborhoodBins = 2
)

// Options configures a DB at construction time. Use DefaultOptions and
// the With... constructors rather than building the struct directly, so
// future fields default safely.
type Options struct {
	// PartitionSize is the uniform spatial partition's bucket width, in
	// design database units (default 750).
	PartitionSize float64
	// NeighborhoodBins is the number of bins of radius a capacitance
	// query expands a rectangle's own bucket range by (default 2).
	NeighborhoodBins int
	// Logger receives soft-warning diagnostics (inconsistent split,
	// duplicate fuse, re-invoking an already-built DB). Defaults to a
	// no-op logger.
	Logger zerolog.Logger
}

// Option mutates an Options during DB construction.
type Option func(*Options)

// DefaultOptions returns PartitionSize 750, NeighborhoodBins 2, and a
// no-op Logger.
func DefaultOptions() Options {
	return Options{
		PartitionSize:    DefaultPartitionSize,
		NeighborhoodBins: DefaultNeighborhoodBins,
		Logger:           zerolog.Nop(),
	}
}

// WithPartitionSize overrides the uniform spatial partition's bucket
// width.
func WithPartitionSize(size float64) Option {
	return func(o *Options) { o.PartitionSize = size }
}

// WithNeighborhoodBins overrides the capacitance query's neighborhood-bin
// radius.
func WithNeighborhoodBins(bins int) Option {
	return func(o *Options) { o.NeighborhoodBins = bins }
}

// WithLogger overrides the Logger soft warnings are written to.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}
