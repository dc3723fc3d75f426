package model

// Fact is a model fact that is either known or absent with a reason.
// Generation checks a fact before synthesizing anything that depends on it,
// so an unresolved fact removes only its dependent fragments.
type Fact[T any] struct {
	value  T
	ok     bool
	reason string
}

// Known returns a resolved fact.
func Known[T any](v T) Fact[T] {
	return Fact[T]{value: v, ok: true}
}

// Unresolved returns an absent fact carrying the reason it could not be resolved.
func Unresolved[T any](reason string) Fact[T] {
	return Fact[T]{reason: reason}
}

// Get returns the value and whether it is known.
func (f Fact[T]) Get() (T, bool) {
	return f.value, f.ok
}

// OK reports whether the fact is known.
func (f Fact[T]) OK() bool {
	return f.ok
}

// Value returns the value, or the zero value when unresolved.
func (f Fact[T]) Value() T {
	return f.value
}

// Reason explains why the fact is unresolved. It is empty for known facts.
func (f Fact[T]) Reason() string {
	return f.reason
}
