package typarse

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeLayout is used by the time converter when no layout is configured
const DefaultTimeLayout = time.RFC3339

const nullValue = "null"

// timeLayouts are fallback layouts tried after the configured one
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	stringType          = reflect.TypeOf("")
	boolType            = reflect.TypeOf(true)
	intType             = reflect.TypeOf(0)
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// registerDefaults installs the built in converters: scalar kinds, composite
// kinds, time types and the encoding.TextUnmarshaler fallback
func registerDefaults(reg *registry, timeLayout string) {
	reg.registerKind(reflect.String, stringConverter{})
	reg.registerKind(reflect.Bool, boolConverter{})
	reg.registerKind(reflect.Int, intConverter{})
	reg.registerKind(reflect.Int8, intConverter{})
	reg.registerKind(reflect.Int16, intConverter{})
	reg.registerKind(reflect.Int32, intConverter{})
	reg.registerKind(reflect.Int64, intConverter{})
	reg.registerKind(reflect.Uint, uintConverter{})
	reg.registerKind(reflect.Uint8, uintConverter{})
	reg.registerKind(reflect.Uint16, uintConverter{})
	reg.registerKind(reflect.Uint32, uintConverter{})
	reg.registerKind(reflect.Uint64, uintConverter{})
	reg.registerKind(reflect.Float32, floatConverter{})
	reg.registerKind(reflect.Float64, floatConverter{})
	reg.registerKind(reflect.Slice, sliceConverter{})
	reg.registerKind(reflect.Array, arrayConverter{})
	reg.registerKind(reflect.Map, mapConverter{})
	reg.registerKind(reflect.Ptr, pointerConverter{})
	reg.register(timeType, &timeConverter{layout: timeLayout})
	reg.register(durationType, durationConverter{})
	reg.registerFallback(textUnmarshalerType, textUnmarshalerConverter{})
}

// knownTypes lists the types the ClassType converter resolves by name
func knownTypes(reg *registry) []reflect.Type {
	types := []reflect.Type{
		stringType, boolType,
		intType, reflect.TypeOf(int8(0)), reflect.TypeOf(int16(0)), reflect.TypeOf(int32(0)), reflect.TypeOf(int64(0)),
		reflect.TypeOf(uint(0)), reflect.TypeOf(uint8(0)), reflect.TypeOf(uint16(0)), reflect.TypeOf(uint32(0)), reflect.TypeOf(uint64(0)),
		reflect.TypeOf(float32(0)), reflect.TypeOf(float64(0)),
		timeType, durationType,
	}
	for rType := range reg.exact {
		types = append(types, rType)
	}
	return types
}

type stringConverter struct{}

func (c stringConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw, err := helper.TargetClass()
	if err != nil {
		return nil, err
	}
	if raw == stringType {
		return input, nil
	}
	ret := reflect.New(raw).Elem()
	ret.SetString(input)
	return ret.Interface(), nil
}

type boolConverter struct{}

func (c boolConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw, err := helper.TargetClass()
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseBool(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as %v, %w", input, raw, err)
	}
	if raw == boolType {
		return value, nil
	}
	ret := reflect.New(raw).Elem()
	ret.SetBool(value)
	return ret.Interface(), nil
}

type intConverter struct{}

func (c intConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw, err := helper.TargetClass()
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseInt(strings.TrimSpace(input), 10, raw.Bits())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as %v, %w", input, raw, err)
	}
	if raw == intType {
		return int(value), nil
	}
	ret := reflect.New(raw).Elem()
	ret.SetInt(value)
	return ret.Interface(), nil
}

type uintConverter struct{}

func (c uintConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw, err := helper.TargetClass()
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseUint(strings.TrimSpace(input), 10, raw.Bits())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as %v, %w", input, raw, err)
	}
	ret := reflect.New(raw).Elem()
	ret.SetUint(value)
	return ret.Interface(), nil
}

type floatConverter struct{}

func (c floatConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw, err := helper.TargetClass()
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(input), raw.Bits())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as %v, %w", input, raw, err)
	}
	ret := reflect.New(raw).Elem()
	ret.SetFloat(value)
	return ret.Interface(), nil
}

type timeConverter struct {
	layout string
}

func (c *timeConverter) Convert(input string, _ *Helper) (interface{}, error) {
	text := strings.TrimSpace(input)
	layout := c.layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if ts, err := time.Parse(layout, text); err == nil {
		return ts, nil
	}
	for _, candidate := range timeLayouts {
		if ts, err := time.Parse(candidate, text); err == nil {
			return ts, nil
		}
	}
	return nil, fmt.Errorf("failed to parse time: %q", input)
}

type durationConverter struct{}

func (c durationConverter) Convert(input string, _ *Helper) (interface{}, error) {
	value, err := time.ParseDuration(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q as duration, %w", input, err)
	}
	return value, nil
}

type sliceConverter struct{}

func (c sliceConverter) Convert(input string, helper *Helper) (interface{}, error) {
	parts, err := helper.Split(&input)
	if err != nil {
		return nil, err
	}
	elemType, err := helper.ArgumentAt(0)
	if err != nil {
		return nil, err
	}
	slice := reflect.MakeSlice(helper.TargetType().Raw(), 0, len(parts))
	for i := range parts {
		value, err := helper.ParseType(parts[i], elemType)
		if err != nil {
			return nil, fmt.Errorf("failed to parse element %v, %w", i, err)
		}
		slice = reflect.Append(slice, reflect.ValueOf(value))
	}
	return slice.Interface(), nil
}

type arrayConverter struct{}

func (c arrayConverter) Convert(input string, helper *Helper) (interface{}, error) {
	parts, err := helper.Split(&input)
	if err != nil {
		return nil, err
	}
	raw := helper.TargetType().Raw()
	if len(parts) != raw.Len() {
		return nil, fmt.Errorf("failed to parse %v, expected %v elements, had: %v", raw, raw.Len(), len(parts))
	}
	elemType := helper.TargetType().Arguments()[0]
	ret := reflect.New(raw).Elem()
	for i := range parts {
		value, err := helper.ParseType(parts[i], elemType)
		if err != nil {
			return nil, fmt.Errorf("failed to parse element %v, %w", i, err)
		}
		ret.Index(i).Set(reflect.ValueOf(value))
	}
	return ret.Interface(), nil
}

type mapConverter struct{}

func (c mapConverter) Convert(input string, helper *Helper) (interface{}, error) {
	parts, err := helper.Split(&input)
	if err != nil {
		return nil, err
	}
	args, err := helper.ParameterizedArguments()
	if err != nil {
		return nil, err
	}
	keyType, valueType := args[0], args[1]
	ret := reflect.MakeMapWithSize(helper.TargetType().Raw(), len(parts))
	for _, part := range parts {
		pair, err := helper.SplitKeyValue(&part)
		if err != nil {
			return nil, err
		}
		if len(pair) < 2 {
			return nil, fmt.Errorf("invalid key/value pair: %q, missing delimiter", part)
		}
		key, err := helper.ParseType(pair[0], keyType)
		if err != nil {
			return nil, fmt.Errorf("failed to parse key %q, %w", pair[0], err)
		}
		value, err := helper.ParseType(pair[1], valueType)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q, %w", pair[1], err)
		}
		ret.SetMapIndex(reflect.ValueOf(key), reflect.ValueOf(value))
	}
	return ret.Interface(), nil
}

type pointerConverter struct{}

func (c pointerConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw, err := helper.TargetClass()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input) == nullValue {
		return reflect.Zero(raw).Interface(), nil
	}
	value, err := helper.Parse(input, raw.Elem())
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(raw.Elem())
	ptr.Elem().Set(reflect.ValueOf(value))
	return ptr.Interface(), nil
}

type textUnmarshalerConverter struct{}

func (c textUnmarshalerConverter) Convert(input string, helper *Helper) (interface{}, error) {
	raw := helper.TargetType().Raw()
	ptr := reflect.New(raw)
	unmarshaler, ok := ptr.Interface().(encoding.TextUnmarshaler)
	if !ok {
		return nil, fmt.Errorf("type %v does not implement encoding.TextUnmarshaler", raw)
	}
	if err := unmarshaler.UnmarshalText([]byte(input)); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

// typeNameConverter resolves a type by its textual name, the runtime analog
// of a class-for-name lookup limited to known and registered types
type typeNameConverter struct {
	index map[string]reflect.Type
}

func newTypeNameConverter(types []reflect.Type) typeNameConverter {
	index := make(map[string]reflect.Type, len(types))
	for _, rType := range types {
		index[rType.String()] = rType
	}
	return typeNameConverter{index: index}
}

func (c typeNameConverter) Convert(input string, _ *Helper) (interface{}, error) {
	name := strings.TrimSpace(input)
	rType, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown type name: %q", name)
	}
	return rType, nil
}
