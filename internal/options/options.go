package options

// Option configures a target of type T. Implementations report invalid
// settings by returning an error, which aborts the remaining options.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] struct {
	fn func(T) error
}

func (o optionFunc[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps fn as an Option[T].
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T]{fn: fn}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
