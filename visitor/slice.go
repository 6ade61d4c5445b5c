package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a visitor over a typed slice; the key is the index.
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		for i, element := range slice {
			cont, err := f(i, element)
			if err != nil {
				return err
			}
			if !cont {
				break
			}
		}
		return nil
	}
}

// AnySliceVisitorOf creates a visitor over an arbitrary slice value. Common
// element types avoid reflection.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return erased(actual), nil
	case []string:
		return erased(actual), nil
	case []int:
		return erased(actual), nil
	case []int64:
		return erased(actual), nil
	case []float64:
		return erased(actual), nil
	case []bool:
		return erased(actual), nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Slice {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			cont, err := f(i, rValue.Index(i).Interface())
			if err != nil {
				return err
			}
			if !cont {
				break
			}
		}
		return nil
	}, nil
}

func erased[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, element := range slice {
			cont, err := f(i, element)
			if err != nil {
				return err
			}
			if !cont {
				break
			}
		}
		return nil
	}
}
