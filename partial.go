package structmap

import (
	"reflect"

	"github.com/viant/xunsafe"
)

// Partial maps src populating only the named destination members; every
// other member remains at its zero value. A fresh restricted configuration
// is built per call.
func Partial[T any](s *Service, src interface{}, fields ...string) (T, error) {
	var dest T
	set, err := NewFieldSet(reflect.TypeOf(dest), fields...)
	if err != nil {
		return dest, err
	}
	return mapRestricted(s, src, dest, set)
}

// Ignoring maps src skipping the named destination members.
func Ignoring[T any](s *Service, src interface{}, fields ...string) (T, error) {
	var dest T
	set, err := NewExclusionSet(reflect.TypeOf(dest), fields...)
	if err != nil {
		return dest, err
	}
	return mapRestricted(s, src, dest, set)
}

func mapRestricted[T any](s *Service, src interface{}, dest T, set *FieldSet) (T, error) {
	if engine := s.restricted(set.Permits); engine != nil {
		err := engine.Map(&dest, src)
		return dest, err
	}
	// foreign engines cannot be reconfigured; map fully, then reset
	if err := s.Map(&dest, src); err != nil {
		return dest, err
	}
	// the set indexes the struct type, so resolve pointer destinations
	// down to the struct before zeroing
	holder := reflect.ValueOf(&dest).Elem()
	for holder.Kind() == reflect.Ptr {
		if holder.IsNil() {
			return dest, nil
		}
		holder = holder.Elem()
	}
	set.ZeroExcluded(xunsafe.AsPointer(holder.Addr().Interface()))
	return dest, nil
}
