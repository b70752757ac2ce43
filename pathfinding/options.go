package pathfinding

// Options defines how an Engine resolves endpoints and what it emits.
type Options struct {
	// StrictEndpoints turns a missing end, unknown start or out-of-range tile
	// into an error instead of the (0, 0) / skip fallbacks.
	StrictEndpoints bool

	// LegacyWrapPairing compares the row delta against half the column count
	// and the column delta against half the row count when wrapping the
	// heuristic. Only differs from the default on non-square grids.
	LegacyWrapPairing bool

	// CheckedEvents emits a Checked event for every neighbor examined.
	CheckedEvents bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStrictEndpoints rejects searches whose endpoints cannot be resolved.
func WithStrictEndpoints() Option {
	return func(options *Options) { options.StrictEndpoints = true }
}

// WithLegacyWrapPairing restores the cross-paired wraparound thresholds.
func WithLegacyWrapPairing() Option {
	return func(options *Options) { options.LegacyWrapPairing = true }
}

// WithCheckedEvents enables Checked events.
func WithCheckedEvents() Option {
	return func(options *Options) { options.CheckedEvents = true }
}
