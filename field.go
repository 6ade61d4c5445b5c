package structmap

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Field surgery operations locate a member by name and read or write it
// directly, bypassing the configured mapping rules. Lookup is string based:
// an absent member, a non addressable destination, or a value the member
// cannot hold is a silent no-op.

// CopyField copies the named member from src to dest.
func CopyField(dest, src interface{}, name string) {
	CopyFieldAs(dest, src, name, name)
}

// CopyFieldAs copies the member named srcName on src into the member named
// destName on dest.
func CopyFieldAs(dest, src interface{}, srcName, destName string) {
	srcField, srcPtr := lookupField(src, srcName)
	if srcField == nil {
		return
	}
	SetIfExists(dest, destName, srcField.Value(srcPtr))
}

// SetIfExists sets the named member on dest when it exists and can hold the
// value.
func SetIfExists(dest interface{}, name string, value interface{}) {
	if dest == nil || reflect.TypeOf(dest).Kind() != reflect.Ptr {
		return
	}
	field, ptr := lookupField(dest, name)
	if field == nil || value == nil {
		return
	}
	setter := LookupSetter(reflect.TypeOf(value), field.Type)
	if setter == nil {
		return
	}
	_ = setter(value, field, ptr)
}

// TransformField reads the named member, applies fn, and writes back the
// result.
func TransformField(dest interface{}, name string, fn func(value interface{}) interface{}) {
	field, ptr := lookupField(dest, name)
	if field == nil || fn == nil {
		return
	}
	SetIfExists(dest, name, fn(field.Value(ptr)))
}

// DefaultField sets the named member to value when it currently holds its
// zero value.
func DefaultField(dest interface{}, name string, value interface{}) {
	field, ptr := lookupField(dest, name)
	if field == nil {
		return
	}
	current := field.Value(ptr)
	if current != nil && !reflect.ValueOf(current).IsZero() {
		return
	}
	SetIfExists(dest, name, value)
}

// lookupField resolves a direct member of a struct or struct pointer; nil
// when the holder is not a struct or the member is absent.
func lookupField(holder interface{}, name string) (*xunsafe.Field, unsafe.Pointer) {
	if holder == nil {
		return nil, nil
	}
	holderType := reflect.TypeOf(holder)
	structType := ensureStruct(holderType)
	if structType == nil {
		return nil, nil
	}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Name != name || !field.IsExported() {
			continue
		}
		return xunsafe.NewField(field), xunsafe.AsPointer(holder)
	}
	return nil, nil
}
