package domain

// Optional carries a value together with whether it was supplied at all.
// Update inputs use it so that an omitted field and a field explicitly set
// to its zero value can be told apart.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Or returns the value when supplied, def otherwise.
func (o Optional[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}
	return def
}

// Apply overwrites *dst when the value was supplied.
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// Fields holds raw submitted form values keyed by field name.
// A key missing from the map was not submitted.
type Fields map[string]string

// Lookup returns the raw value of name and whether it was submitted.
func (f Fields) Lookup(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}
