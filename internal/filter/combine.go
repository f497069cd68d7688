package filter

// Always matches every value.
func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Never matches no value.
func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// And matches when every predicate matches. And() is Always.
// Nil predicates are skipped; if every argument is nil the result is nil,
// which Filter rejects with ErrNilPredicate.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	ps, ok := compact(predicates)
	if !ok {
		return nil
	}
	return func(value T) bool {
		for _, p := range ps {
			if !p(value) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches. Or() is Never.
// Nil handling follows And.
func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	ps, ok := compact(predicates)
	if !ok {
		return nil
	}
	return func(value T) bool {
		for _, p := range ps {
			if p(value) {
				return true
			}
		}
		return false
	}
}

// Not inverts p. Not(nil) is nil.
func Not[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		return nil
	}
	return func(value T) bool {
		return !p(value)
	}
}

// AndE is And for fallible predicates. Evaluation stops at the first false or error.
func AndE[T any](predicates ...PredicateE[T]) PredicateE[T] {
	ps, ok := compactE(predicates)
	if !ok {
		return nil
	}
	return func(value T) (bool, error) {
		for _, p := range ps {
			ok, err := p(value)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// NotE inverts p and passes its errors through. NotE(nil) is nil.
func NotE[T any](p PredicateE[T]) PredicateE[T] {
	if p == nil {
		return nil
	}
	return func(value T) (bool, error) {
		ok, err := p(value)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// compact drops nil entries. It reports false when arguments were given
// but all of them were nil.
func compact[T any](predicates []Predicate[T]) ([]Predicate[T], bool) {
	out := make([]Predicate[T], 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, len(predicates) == 0 || len(out) > 0
}

func compactE[T any](predicates []PredicateE[T]) ([]PredicateE[T], bool) {
	out := make([]PredicateE[T], 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, len(predicates) == 0 || len(out) > 0
}
