package mlqueue

// Options holds configuration options for the [Queue].
type Options struct {
	Metrics MetricsHook
}

// Option is a function that configures [Options].
type Option func(*Options)

// WithMetricsHook sets the metrics hook for the [Queue].
func WithMetricsHook(hook MetricsHook) Option {
	return func(o *Options) {
		o.Metrics = hook
	}
}
