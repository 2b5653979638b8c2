package kmeans

const (
	// DefaultMaxIterations is the iteration cap used when none is configured.
	DefaultMaxIterations = 400

	// DefaultEpsilon is the convergence threshold used when none is configured.
	DefaultEpsilon = 1e-3

	// MaxIterationLimit is the exclusive upper bound on the iteration cap.
	MaxIterationLimit = 1000
)

type options struct {
	maxIter int
	eps     float64
	logger  *Logger
}

// Option configures Fit behavior.
type Option func(*options)

// WithMaxIterations configures the iteration cap.
// Fit rejects values outside the open interval (1, MaxIterationLimit).
func WithMaxIterations(maxIter int) Option {
	return func(o *options) {
		o.maxIter = maxIter
	}
}

// WithEpsilon configures the convergence threshold.
//
// If a non-positive value is passed, DefaultEpsilon is used.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps <= 0 {
			eps = DefaultEpsilon
		}
		o.eps = eps
	}
}

// WithLogger configures structured logging of iteration progress.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		maxIter: DefaultMaxIterations,
		eps:     DefaultEpsilon,
		logger:  NoopLogger(),
	}
}
