package conv

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/tagly/format"
)

var timeType = reflect.TypeOf(time.Time{})

func (c *Converter) convertComplex(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	if !srcValue.IsValid() {
		return nil
	}
	destType := destValue.Type().Elem()
	switch destType.Kind() {
	case reflect.Slice:
		return c.toSlice(destValue, srcValue)
	case reflect.Map:
		return c.toMap(destValue, srcValue)
	case reflect.Struct:
		if destType == timeType {
			return c.toTime(destValue, srcValue)
		}
		return c.toStruct(destValue, srcValue)
	case reflect.Ptr:
		if destValue.Elem().IsNil() {
			destValue.Elem().Set(reflect.New(destType.Elem()))
		}
		return c.Convert(srcValue.Interface(), destValue.Elem().Interface())
	}
	return fmt.Errorf("%w: %v to %v", ErrUnsupported, srcValue.Type(), destType)
}

func (c *Converter) toTime(destValue, srcValue reflect.Value) error {
	var t time.Time
	switch srcValue.Kind() {
	case reflect.String:
		layout := c.options.TimeLayout
		if layout == "" {
			layout = DefaultTimeLayout
		}
		tag := &format.Tag{TimeLayout: layout}
		parsed, err := tag.ParseTime(srcValue.String())
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, srcValue.String())
			if err != nil {
				return fmt.Errorf("cannot parse time string %q: %w", srcValue.String(), err)
			}
		}
		t = parsed
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		t = unixTime(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		t = unixTime(int64(srcValue.Uint()))
	case reflect.Float32, reflect.Float64:
		seconds := int64(srcValue.Float())
		nanos := int64((srcValue.Float() - float64(seconds)) * 1e9)
		t = time.Unix(seconds, nanos)
	case reflect.Struct:
		if srcValue.Type() != timeType {
			return fmt.Errorf("%w: %v to time.Time", ErrUnsupported, srcValue.Type())
		}
		t = srcValue.Interface().(time.Time)
	default:
		return fmt.Errorf("%w: %v to time.Time", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().Set(reflect.ValueOf(t))
	return nil
}

// unixTime treats very large values as nanoseconds
func unixTime(value int64) time.Time {
	if value > 1e10 {
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}

func (c *Converter) toSlice(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	destElemType := destType.Elem()

	if destElemType.Kind() == reflect.Uint8 && srcValue.Kind() == reflect.String {
		destValue.Elem().SetBytes([]byte(srcValue.String()))
		return nil
	}

	if srcValue.Kind() != reflect.Slice && srcValue.Kind() != reflect.Array {
		// promote a scalar to a single element slice
		slice := reflect.MakeSlice(destType, 1, 1)
		elemPtr := reflect.New(destElemType)
		if err := c.Convert(srcValue.Interface(), elemPtr.Interface()); err != nil {
			return err
		}
		slice.Index(0).Set(elemPtr.Elem())
		destValue.Elem().Set(slice)
		return nil
	}

	length := srcValue.Len()
	slice := reflect.MakeSlice(destType, length, length)
	for i := 0; i < length; i++ {
		if destElemType.Kind() == reflect.Ptr {
			elem := reflect.New(destElemType.Elem())
			if err := c.Convert(srcValue.Index(i).Interface(), elem.Interface()); err != nil {
				return fmt.Errorf("failed to convert slice element %d: %w", i, err)
			}
			slice.Index(i).Set(elem)
			continue
		}
		elemPtr := reflect.New(destElemType)
		if err := c.Convert(srcValue.Index(i).Interface(), elemPtr.Interface()); err != nil {
			return fmt.Errorf("failed to convert slice element %d: %w", i, err)
		}
		slice.Index(i).Set(elemPtr.Elem())
	}
	destValue.Elem().Set(slice)
	return nil
}

func (c *Converter) toMap(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	keyType := destType.Key()
	valueType := destType.Elem()
	result := reflect.MakeMap(destType)

	switch srcValue.Kind() {
	case reflect.Struct:
		info := c.structInfoFor(srcValue.Type())
		for _, field := range info.fields {
			if field.tagName == "-" {
				continue
			}
			fieldValue := srcValue.FieldByIndex(field.index)
			if !fieldValue.CanInterface() {
				continue
			}
			valuePtr := reflect.New(valueType)
			if err := c.Convert(fieldValue.Interface(), valuePtr.Interface()); err != nil {
				return fmt.Errorf("failed to convert field %v: %w", field.name, err)
			}
			keyPtr := reflect.New(keyType)
			if err := c.Convert(field.name, keyPtr.Interface()); err != nil {
				return fmt.Errorf("failed to convert key %v: %w", field.name, err)
			}
			result.SetMapIndex(keyPtr.Elem(), valuePtr.Elem())
		}
	case reflect.Map:
		iter := srcValue.MapRange()
		for iter.Next() {
			keyPtr := reflect.New(keyType)
			if err := c.Convert(iter.Key().Interface(), keyPtr.Interface()); err != nil {
				return fmt.Errorf("failed to convert map key: %w", err)
			}
			valuePtr := reflect.New(valueType)
			if err := c.Convert(iter.Value().Interface(), valuePtr.Interface()); err != nil {
				return fmt.Errorf("failed to convert map value: %w", err)
			}
			result.SetMapIndex(keyPtr.Elem(), valuePtr.Elem())
		}
	default:
		return fmt.Errorf("%w: %v to map", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().Set(result)
	return nil
}

func (c *Converter) toStruct(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	destInfo := c.structInfoFor(destType)

	srcMap, err := c.sourceMembers(srcValue)
	if err != nil {
		return err
	}
	for _, field := range destInfo.fields {
		if field.tagName == "-" {
			continue
		}
		if filter := c.options.FieldFilter; filter != nil && !filter(field.name) {
			continue
		}
		value, ok := c.lookupMember(srcMap, field)
		if !ok {
			if !c.options.IgnoreUnmapped {
				return fmt.Errorf("%w: no source member for %v", ErrUnsupported, field.name)
			}
			continue
		}
		fieldValue := destValue.Elem().FieldByIndex(field.index)
		c.setMember(fieldValue, value)
	}
	return nil
}

// sourceMembers flattens a struct or map source into name keyed values
func (c *Converter) sourceMembers(srcValue reflect.Value) (map[string]interface{}, error) {
	result := make(map[string]interface{})
	switch srcValue.Kind() {
	case reflect.Map:
		iter := srcValue.MapRange()
		for iter.Next() {
			result[fmt.Sprintf("%v", iter.Key().Interface())] = iter.Value().Interface()
		}
	case reflect.Struct:
		info := c.structInfoFor(srcValue.Type())
		for _, field := range info.fields {
			fieldValue := srcValue.FieldByIndex(field.index)
			switch {
			case fieldValue.CanInterface():
				result[field.name] = fieldValue.Interface()
			case c.options.AccessUnexported:
				result[field.name] = forceValue(fieldValue)
			default:
				continue
			}
			if field.tagName != "" && field.tagName != "-" {
				result[field.tagName] = result[field.name]
			}
		}
	default:
		return nil, fmt.Errorf("%w: %v to struct", ErrUnsupported, srcValue.Type())
	}
	return result, nil
}

func (c *Converter) lookupMember(members map[string]interface{}, field structField) (interface{}, bool) {
	if field.tagName != "" && field.tagName != "-" {
		if value, ok := members[field.tagName]; ok {
			return value, true
		}
	}
	if value, ok := members[field.name]; ok {
		return value, true
	}
	if c.options.CaseSensitive {
		return nil, false
	}
	for key, value := range members {
		if strings.EqualFold(key, field.name) || (field.tagName != "" && strings.EqualFold(key, field.tagName)) {
			return value, true
		}
	}
	return nil, false
}

// setMember assigns value to a struct member, best effort
func (c *Converter) setMember(fieldValue reflect.Value, value interface{}) {
	if !fieldValue.CanSet() {
		if !c.options.AccessUnexported {
			return
		}
		tmp := reflect.New(fieldValue.Type())
		if err := c.Convert(value, tmp.Interface()); err == nil {
			forceSet(fieldValue, tmp.Elem().Interface())
		}
		return
	}
	if value == nil {
		if fieldValue.Kind() == reflect.Ptr {
			fieldValue.Set(reflect.Zero(fieldValue.Type()))
		}
		return
	}
	if fieldValue.Kind() == reflect.Ptr && fieldValue.Type().Elem().Kind() == reflect.Struct {
		structPtr := reflect.New(fieldValue.Type().Elem())
		if err := c.Convert(value, structPtr.Interface()); err == nil {
			fieldValue.Set(structPtr)
			return
		}
	}
	tmp := reflect.New(fieldValue.Type())
	if err := c.Convert(value, tmp.Interface()); err == nil {
		fieldValue.Set(tmp.Elem())
	}
}
