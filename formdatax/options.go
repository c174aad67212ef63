package formdatax

// Option is a named func that sets custom options on a Builder
type Option func(*Builder)

// WithBoundarySource replaces the random boundary generator. Tests use
// this to make built bodies deterministic.
func WithBoundarySource(source func() string) Option {
	return func(b *Builder) {
		b.newBoundary = source
	}
}
