package structmap

import (
	"github.com/viant/structmap/visitor"
)

// Slice maps every element of src; element order and cardinality are
// preserved, nil input yields nil output.
func Slice[S, D any](s *Service, src []S) ([]D, error) {
	if src == nil {
		return nil, nil
	}
	result := make([]D, len(src))
	for i := range src {
		if err := s.Map(&result[i], src[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SliceFunc maps every element with a caller supplied function.
func SliceFunc[S, D any](src []S, fn func(S) D) []D {
	if src == nil {
		return nil
	}
	result := make([]D, len(src))
	for i, item := range src {
		result[i] = fn(item)
	}
	return result
}

// SliceOf maps elements of an arbitrary slice value into []D.
func SliceOf[D any](s *Service, src interface{}) ([]D, error) {
	if src == nil {
		return nil, nil
	}
	visit, err := visitor.AnySliceVisitorOf(src)
	if err != nil {
		return nil, err
	}
	var result []D
	err = visit(func(key int, element any) (bool, error) {
		var dest D
		if err := s.Map(&dest, element); err != nil {
			return false, err
		}
		result = append(result, dest)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Set maps every element and de-duplicates the results.
func Set[S any, D comparable](s *Service, src []S) (map[D]struct{}, error) {
	mapped, err := Slice[S, D](s, src)
	if err != nil {
		return nil, err
	}
	if mapped == nil {
		return nil, nil
	}
	result := make(map[D]struct{}, len(mapped))
	for _, item := range mapped {
		result[item] = struct{}{}
	}
	return result, nil
}

// Index maps every element into a dictionary keyed by the selector; a later
// element overwrites an earlier one sharing its key.
func Index[S any, K comparable, D any](s *Service, src []S, key func(D) K) (map[K]D, error) {
	mapped, err := Slice[S, D](s, src)
	if err != nil {
		return nil, err
	}
	if mapped == nil {
		return nil, nil
	}
	result := make(map[K]D, len(mapped))
	for _, item := range mapped {
		result[key(item)] = item
	}
	return result, nil
}

// Group maps every element into a dictionary of slices keyed by the
// selector; element order within each group is preserved.
func Group[S any, K comparable, D any](s *Service, src []S, key func(D) K) (map[K][]D, error) {
	mapped, err := Slice[S, D](s, src)
	if err != nil {
		return nil, err
	}
	if mapped == nil {
		return nil, nil
	}
	result := make(map[K][]D)
	for _, item := range mapped {
		k := key(item)
		result[k] = append(result[k], item)
	}
	return result, nil
}
