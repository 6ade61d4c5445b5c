package structmap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// FieldSet restricts mapping to a subset of destination struct members.
// Construction indexes the destination type on every call; restricted
// mapping deliberately caches nothing.
type FieldSet struct {
	xStruct *xunsafe.Struct
	names   map[string]bool
	// include indicates whether names enumerate permitted or excluded members
	include bool
}

// NewFieldSet creates a set permitting only the named members.
func NewFieldSet(t reflect.Type, names ...string) (*FieldSet, error) {
	return newFieldSet(t, names, true)
}

// NewExclusionSet creates a set permitting all but the named members.
func NewExclusionSet(t reflect.Type, names ...string) (*FieldSet, error) {
	return newFieldSet(t, names, false)
}

func newFieldSet(t reflect.Type, names []string, include bool) (*FieldSet, error) {
	structType := ensureStruct(t)
	if structType == nil {
		return nil, fmt.Errorf("expected struct type, got %s", t.String())
	}
	result := &FieldSet{xStruct: xunsafe.NewStruct(structType), names: make(map[string]bool, len(names)), include: include}
	for _, name := range names {
		result.names[name] = true
	}
	return result, nil
}

// Permits returns true when the named member may be populated.
func (f *FieldSet) Permits(name string) bool {
	if f.names[name] {
		return f.include
	}
	return !f.include
}

// ZeroExcluded resets members outside the permitted set to their zero value.
func (f *FieldSet) ZeroExcluded(ptr unsafe.Pointer) {
	for i := range f.xStruct.Fields {
		field := &f.xStruct.Fields[i]
		if f.Permits(field.Name) {
			continue
		}
		field.SetValue(ptr, reflect.Zero(field.Type).Interface())
	}
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
