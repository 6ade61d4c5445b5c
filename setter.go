package structmap

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// Setter assigns a source value to a struct member, coercing the type where
// needed.
type Setter func(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error

var timeType = reflect.TypeOf(time.Time{})

// LookupSetter returns a setter coercing src into a member of dest type, or
// nil when no coercion exists.
func LookupSetter(src, dest reflect.Type) Setter {
	if src == dest {
		return setDirect
	}
	switch dest.Kind() {
	case reflect.Interface:
		return setDirect
	case reflect.String:
		if src == timeType {
			return timeToString
		}
		switch src.Kind() {
		case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64, reflect.Bool:
			return toStringSetter
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch src.Kind() {
		case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return toIntSetter
		}
	case reflect.Float64, reflect.Float32:
		switch src.Kind() {
		case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Float32, reflect.Float64:
			return toFloatSetter
		}
	case reflect.Bool:
		switch src.Kind() {
		case reflect.Bool, reflect.String, reflect.Int, reflect.Int64:
			return toBoolSetter
		}
	case reflect.Struct:
		if dest == timeType && src.Kind() == reflect.String {
			return stringToTime
		}
	}
	return nil
}

func setDirect(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, src)
	return nil
}

func toStringSetter(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := reflect.ValueOf(src)
	var text string
	switch value.Kind() {
	case reflect.String:
		text = value.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		text = strconv.FormatInt(value.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		text = strconv.FormatUint(value.Uint(), 10)
	case reflect.Float32:
		text = strconv.FormatFloat(value.Float(), 'f', -1, 32)
	case reflect.Float64:
		text = strconv.FormatFloat(value.Float(), 'f', -1, 64)
	case reflect.Bool:
		text = strconv.FormatBool(value.Bool())
	default:
		return fmt.Errorf("cannot coerce %T to string", src)
	}
	field.SetString(holder, text)
	return nil
}

func toIntSetter(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := reflect.ValueOf(src)
	var result int
	switch value.Kind() {
	case reflect.String:
		parsed, err := strconv.Atoi(value.String())
		if err != nil {
			return err
		}
		result = parsed
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = int(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = int(value.Uint())
	case reflect.Float32, reflect.Float64:
		result = int(value.Float())
	default:
		return fmt.Errorf("cannot coerce %T to int", src)
	}
	if field.Kind() == reflect.Int {
		field.SetInt(holder, result)
		return nil
	}
	field.SetValue(holder, reflect.ValueOf(result).Convert(field.Type).Interface())
	return nil
}

func toFloatSetter(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := reflect.ValueOf(src)
	var result float64
	switch value.Kind() {
	case reflect.String:
		parsed, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return err
		}
		result = parsed
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(value.Int())
	case reflect.Float32, reflect.Float64:
		result = value.Float()
	default:
		return fmt.Errorf("cannot coerce %T to float", src)
	}
	if field.Kind() == reflect.Float32 {
		field.SetFloat32(holder, float32(result))
		return nil
	}
	field.SetFloat64(holder, result)
	return nil
}

func toBoolSetter(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	switch actual := src.(type) {
	case bool:
		field.SetBool(holder, actual)
	case string:
		parsed, err := strconv.ParseBool(actual)
		if err != nil {
			return err
		}
		field.SetBool(holder, parsed)
	case int:
		field.SetBool(holder, actual != 0)
	case int64:
		field.SetBool(holder, actual != 0)
	default:
		return fmt.Errorf("cannot coerce %T to bool", src)
	}
	return nil
}

func timeToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := src.(time.Time)
	field.SetString(holder, value.Format(fieldTimeLayout(field)))
	return nil
}

func stringToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	parsed, err := time.Parse(fieldTimeLayout(field), src.(string))
	if err != nil {
		return err
	}
	field.SetValue(holder, parsed)
	return nil
}

func fieldTimeLayout(field *xunsafe.Field) string {
	tag, _ := format.Parse(field.Tag)
	if tag != nil && tag.TimeLayout != "" {
		return tag.TimeLayout
	}
	if layout := field.Tag.Get("timeLayout"); layout != "" {
		return layout
	}
	return time.RFC3339
}
