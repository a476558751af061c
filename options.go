package reactive

// EqualFunc decides whether two values of a signal or derivation should
// be treated as unchanged for propagation purposes. The default, used
// when no EqualFunc is supplied, is strict identity with the convention
// that two NaN float64 values compare equal.
type EqualFunc[T any] func(prev, next T) bool

// Options configures the equality predicate used by a signal or
// derivation.
type Options[T any] struct {
	Equals EqualFunc[T]
}

// as converts an untyped engine value back to T, treating a nil engine
// value (what a nil value of an interface type T is stored as) as the
// zero value of T.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// wrapEquals adapts a typed EqualFunc to the engine's untyped
// comparator. A nil EqualFunc yields a nil comparator, signaling the
// engine to fall back to its own default.
func wrapEquals[T any](eq EqualFunc[T]) func(prev, next any) bool {
	if eq == nil {
		return nil
	}
	return func(prev, next any) bool {
		return eq(as[T](prev), as[T](next))
	}
}
