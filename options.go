package twisty

// Option configures engine behavior.
type Option func(*config)

type config struct {
	gap         float64
	baseSpeed   float64
	epsilon     float64
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		gap:         DefaultGap,
		baseSpeed:   DefaultBaseSpeed,
		epsilon:     completionEpsilon,
		moveHistory: true,
	}
}

// WithGap sets the spacing between adjacent cubies. The lattice step
// becomes 1 + gap. Must be >= 0.
func WithGap(gap float64) Option {
	return func(c *config) {
		if gap >= 0 {
			c.gap = gap
		}
	}
}

// WithBaseSpeed sets the base angular speed of layer turns in radians per
// second, before per-move speed multipliers. Must be > 0.
func WithBaseSpeed(radPerSec float64) Option {
	return func(c *config) {
		if radPerSec > 0 {
			c.baseSpeed = radPerSec
		}
	}
}

// WithCompletionEpsilon sets the angular tolerance, in radians, at which a
// quarter turn counts as complete. Must be > 0 and well under pi/2.
func WithCompletionEpsilon(rad float64) Option {
	return func(c *config) {
		if rad > 0 {
			c.epsilon = rad
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), completed moves are stored and accessible via
// Moves(). Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
