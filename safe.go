package structmap

// Safe maps src, swallowing every engine failure, panics included. On
// failure it returns the zero destination value and false. Error kinds are
// deliberately not differentiated.
func Safe[T any](s *Service, src interface{}) (dest T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			dest, ok = zero, false
		}
	}()
	if err := s.Map(&dest, src); err != nil {
		var zero T
		return zero, false
	}
	return dest, true
}

// OrDefault maps src, substituting defaultValue on any failure.
func OrDefault[T any](s *Service, src interface{}, defaultValue T) (dest T) {
	defer func() {
		if r := recover(); r != nil {
			dest = defaultValue
		}
	}()
	var mapped T
	if err := s.Map(&mapped, src); err != nil {
		return defaultValue
	}
	return mapped
}

// If maps src only when the predicate holds. The predicate is evaluated
// exactly once per call; engine errors propagate unchanged. The bool result
// reports whether mapping took place.
func If[T any](s *Service, src interface{}, predicate func() bool) (T, bool, error) {
	var dest T
	if !predicate() {
		return dest, false, nil
	}
	if err := s.Map(&dest, src); err != nil {
		return dest, false, err
	}
	return dest, true, nil
}

// Unless maps src only when the predicate does not hold, with the same
// contracts as If.
func Unless[T any](s *Service, src interface{}, predicate func() bool) (T, bool, error) {
	var dest T
	if predicate() {
		return dest, false, nil
	}
	if err := s.Map(&dest, src); err != nil {
		return dest, false, err
	}
	return dest, true, nil
}
