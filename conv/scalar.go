package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func (c *Converter) toString(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	var result string
	switch srcValue.Kind() {
	case reflect.String:
		result = srcValue.String()
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() == reflect.Uint8 {
			result = string(srcValue.Bytes())
			break
		}
		return fmt.Errorf("%w: %v to string", ErrUnsupported, srcValue.Type())
	default:
		return fmt.Errorf("%w: %v to string", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().SetString(result)
	return nil
}

func (c *Converter) toBool(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	var result bool
	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float() != 0
	case reflect.String:
		parsed, err := strconv.ParseBool(srcValue.String())
		if err != nil {
			f, fErr := strconv.ParseFloat(srcValue.String(), 64)
			if fErr != nil {
				return err
			}
			parsed = f != 0
		}
		result = parsed
	default:
		return fmt.Errorf("%w: %v to bool", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().SetBool(result)
	return nil
}

func (c *Converter) toInt(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	var result int64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = int64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = int64(srcValue.Float())
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if strings.Contains(srcValue.String(), ".") {
			var f float64
			f, err = strconv.ParseFloat(srcValue.String(), 64)
			result = int64(f)
		} else {
			result, err = strconv.ParseInt(srcValue.String(), 0, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v to int", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().SetInt(result)
	return nil
}

func (c *Converter) toUint(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	var result uint64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		v := srcValue.Float()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %f to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if strings.Contains(srcValue.String(), ".") {
			var f float64
			f, err = strconv.ParseFloat(srcValue.String(), 64)
			if err == nil && f < 0 {
				return fmt.Errorf("cannot convert negative value %f to unsigned int", f)
			}
			result = uint64(f)
		} else {
			result, err = strconv.ParseUint(srcValue.String(), 0, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v to uint", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().SetUint(result)
	return nil
}

func (c *Converter) toFloat(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	var result float64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		result, err = strconv.ParseFloat(srcValue.String(), 64)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v to float", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().SetFloat(result)
	return nil
}
