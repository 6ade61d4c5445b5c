package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *xunsafe.Struct]()

// StructVisitorOf creates a visitor over the direct members of a struct;
// pointer values are resolved down to the struct they point to. The key is
// the member name.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr && !rValue.IsNil() {
		rValue = rValue.Elem()
	}
	if rValue.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or struct pointer, got %T", value)
	}
	structType := rValue.Type()
	xStruct, ok := structCache.Get(structType)
	if !ok {
		xStruct = xunsafe.NewStruct(structType)
		structCache.Put(structType, xStruct)
	}
	holder := value
	if rValue.CanAddr() {
		holder = rValue.Addr().Interface()
	} else {
		rPtr := reflect.New(structType)
		rPtr.Elem().Set(rValue)
		holder = rPtr.Interface()
	}
	ptr := xunsafe.AsPointer(holder)
	return func(f func(key string, element interface{}) (bool, error)) error {
		for i := range xStruct.Fields {
			field := &xStruct.Fields[i]
			cont, err := f(field.Name, field.Value(ptr))
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
