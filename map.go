package structmap

import "context"

// Generic operations are top level functions since methods cannot have type
// parameters.

// To maps src into a fresh destination value.
func To[T any](s *Service, src interface{}) (T, error) {
	var dest T
	err := s.Map(&dest, src)
	return dest, err
}

// Make maps src into a freshly allocated destination.
func Make[T any](s *Service, src interface{}) (*T, error) {
	dest := new(T)
	if err := s.Map(dest, src); err != nil {
		return nil, err
	}
	return dest, nil
}

// Into maps src into a caller supplied destination.
func Into(s *Service, dest, src interface{}) error {
	return s.Map(dest, src)
}

// Clone maps src to its own type; mapped fields of the result equal the
// source with independent storage.
func Clone[T any](s *Service, src T) (T, error) {
	var dest T
	err := s.cloning().Map(&dest, src)
	return dest, err
}

// Apply maps src, then runs fn on the result before returning it.
func Apply[T any](s *Service, src interface{}, fn func(*T)) (T, error) {
	dest, err := To[T](s, src)
	if err != nil {
		return dest, err
	}
	if fn != nil {
		fn(&dest)
	}
	return dest, nil
}

// Then maps src synchronously, then awaits fn with the result. The callback
// error is returned unchanged.
func Then[T any](ctx context.Context, s *Service, src interface{}, fn func(ctx context.Context, dest T) error) error {
	dest, err := To[T](s, src)
	if err != nil {
		return err
	}
	return fn(ctx, dest)
}
