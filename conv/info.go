package conv

import (
	"reflect"
	"strings"
	"unsafe"
)

type structField struct {
	name    string
	tagName string
	index   []int
}

type structInfo struct {
	fields []structField
}

func (c *Converter) structInfoFor(t reflect.Type) *structInfo {
	if v, ok := c.structInfo.Load(t); ok {
		return v.(*structInfo)
	}
	info := &structInfo{}
	c.buildStructInfo(t, info, nil)
	c.structInfo.Store(t, info)
	return info
}

func (c *Converter) buildStructInfo(t reflect.Type, info *structInfo, index []int) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldIndex := make([]int, len(index)+1)
		copy(fieldIndex, index)
		fieldIndex[len(index)] = i

		if field.Anonymous {
			fieldType := field.Type
			if fieldType.Kind() == reflect.Ptr {
				fieldType = fieldType.Elem()
			}
			if fieldType.Kind() == reflect.Struct {
				c.buildStructInfo(fieldType, info, fieldIndex)
				continue
			}
		}
		tagName := ""
		if tag := field.Tag.Get(c.tagName()); tag != "" {
			tagName = strings.Split(tag, ",")[0]
		}
		info.fields = append(info.fields, structField{name: field.Name, tagName: tagName, index: fieldIndex})
	}
}

func (c *Converter) tagName() string {
	if c.options.TagName == "" {
		return "json"
	}
	return c.options.TagName
}

func forceValue(field reflect.Value) interface{} {
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem().Interface()
}

func forceSet(field reflect.Value, value interface{}) {
	reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem().Set(reflect.ValueOf(value))
}
