package visitor

import (
	"fmt"
	"reflect"
)

// MapVisitorOf creates a visitor over a typed map.
func MapVisitorOf[K comparable, E any](aMap map[K]E) Visitor[K, E] {
	return func(f func(key K, element E) (bool, error)) error {
		for k, e := range aMap {
			cont, err := f(k, e)
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

// AnyMapVisitorOf creates a visitor over an arbitrary map value.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return erasedMap(actual), nil
	case map[string]string:
		return erasedMap(actual), nil
	case map[string]int:
		return erasedMap(actual), nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key any, element any) (bool, error)) error {
		iter := rValue.MapRange()
		for iter.Next() {
			cont, err := f(iter.Key().Interface(), iter.Value().Interface())
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

func erasedMap[K comparable, E any](aMap map[K]E) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			cont, err := f(k, e)
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
