package conv

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrUnsupported indicates a conversion the engine cannot perform.
var ErrUnsupported = errors.New("unsupported conversion")

// DefaultTimeLayout is used for time parsing when no layout is configured.
const DefaultTimeLayout = "2006-01-02 15:04:05.000"

// Options configures a Converter.
type Options struct {
	// TimeLayout is the layout used to parse time values from strings
	TimeLayout string
	// TagName is the struct tag consulted for member names
	TagName string
	// CaseSensitive controls member name matching
	CaseSensitive bool
	// IgnoreUnmapped controls whether destination members without a source
	// counterpart are skipped; when false such members fail the conversion
	IgnoreUnmapped bool
	// ClonePointerData deep copies data behind pointers instead of sharing it
	ClonePointerData bool
	// AccessUnexported allows reading and writing unexported members
	AccessUnexported bool
	// FieldFilter, when set, restricts which destination members are populated;
	// members rejected by the filter keep their zero value
	FieldFilter func(name string) bool
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() Options {
	return Options{
		TimeLayout:     DefaultTimeLayout,
		TagName:        "json",
		IgnoreUnmapped: true,
	}
}

// ConversionFunc converts src into dest, overriding the engine's default rules.
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// Converter is a reflection-based object-graph copier.
type Converter struct {
	options    Options
	structInfo sync.Map // map[reflect.Type]*structInfo
	custom     sync.Map // map[typeKey]ConversionFunc
}

// New creates a converter with the supplied options.
func New(options Options) *Converter {
	return &Converter{options: options}
}

// Options returns the converter configuration.
func (c *Converter) Options() Options {
	return c.options
}

// RegisterConversion registers a custom conversion between a source and destination type.
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.custom.Store(typeKey{srcType, destType}, fn)
}

// Convert populates dest with src. Dest has to be a non-nil pointer.
func (c *Converter) Convert(src, dest interface{}) error {
	if dest == nil {
		return errors.New("destination was nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return fmt.Errorf("destination has to be a pointer, got %T", dest)
	}
	if destValue.Elem().Kind() == reflect.Ptr {
		if destValue.Elem().IsNil() {
			destValue.Elem().Set(reflect.New(destValue.Elem().Type().Elem()))
		}
		destValue = destValue.Elem()
	}
	if destValue.IsNil() {
		return errors.New("destination pointer was nil")
	}
	if src == nil {
		return nil
	}

	srcValue := reflect.ValueOf(src)
	srcType := srcValue.Type()
	destType := destValue.Elem().Type()

	if v, ok := c.custom.Load(typeKey{srcType, destType}); ok {
		return v.(ConversionFunc)(src, dest, c.options)
	}

	if srcType.AssignableTo(destType) {
		if c.options.ClonePointerData {
			// rebuild container shaped values so the result owns its storage
			switch srcType.Kind() {
			case reflect.Ptr:
				return c.clonePointer(destValue, srcValue)
			case reflect.Slice:
				return c.toSlice(destValue, srcValue)
			case reflect.Map:
				return c.toMap(destValue, srcValue)
			case reflect.Struct:
				if srcType != timeType {
					return c.toStruct(destValue, srcValue)
				}
			}
		}
		destValue.Elem().Set(srcValue)
		return nil
	}

	switch destType.Kind() {
	case reflect.String:
		return c.toString(destValue, srcValue)
	case reflect.Bool:
		return c.toBool(destValue, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.toInt(destValue, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.toUint(destValue, srcValue)
	case reflect.Float32, reflect.Float64:
		return c.toFloat(destValue, srcValue)
	}

	if srcType.ConvertibleTo(destType) {
		destValue.Elem().Set(srcValue.Convert(destType))
		return nil
	}
	return c.convertComplex(destValue, srcValue)
}

func (c *Converter) clonePointer(destValue, srcValue reflect.Value) error {
	if srcValue.IsNil() {
		destValue.Elem().Set(reflect.Zero(destValue.Elem().Type()))
		return nil
	}
	srcElem := srcValue.Elem()
	clone := reflect.New(srcElem.Type())
	if srcElem.Kind() == reflect.Struct {
		for i := 0; i < srcElem.NumField(); i++ {
			field := srcElem.Field(i)
			cloneField := clone.Elem().Field(i)
			switch {
			case field.CanInterface():
				cloneField.Set(field)
			case c.options.AccessUnexported:
				forceSet(cloneField, forceValue(field))
			}
		}
	} else {
		clone.Elem().Set(srcElem)
	}
	destValue.Elem().Set(clone)
	return nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
