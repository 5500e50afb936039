package typarse

import (
	"reflect"
)

// Kind discriminates type descriptor shapes
type Kind int

const (
	// Plain represents a non parameterized type
	Plain Kind = iota
	// Parameterized represents a composite type carrying type arguments
	Parameterized
	// Array represents a fixed length array type
	Array
)

// ClassType is the reflect.Type meta type; it is the only conceptually
// parameterized shape permitted as a type argument
var ClassType = reflect.TypeOf((*reflect.Type)(nil)).Elem()

// Type represents an immutable descriptor of a requested target type,
// built once per conversion call and safe for concurrent reads
type Type struct {
	kind Kind
	raw  reflect.Type
	args []*Type
}

// TypeOf builds a descriptor for the supplied reflect type; composite types
// capture their type arguments, which must themselves be plain (nested
// parameterization is rejected, with the sole exception of ClassType)
func TypeOf(rType reflect.Type) (*Type, error) {
	if rType == nil {
		return nil, missingArgumentError("target")
	}
	switch rType.Kind() {
	case reflect.Slice:
		elem, err := argumentOf(rType, rType.Elem())
		if err != nil {
			return nil, err
		}
		return &Type{kind: Parameterized, raw: rType, args: []*Type{elem}}, nil
	case reflect.Map:
		key, err := argumentOf(rType, rType.Key())
		if err != nil {
			return nil, err
		}
		value, err := argumentOf(rType, rType.Elem())
		if err != nil {
			return nil, err
		}
		return &Type{kind: Parameterized, raw: rType, args: []*Type{key, value}}, nil
	case reflect.Array:
		elem, err := argumentOf(rType, rType.Elem())
		if err != nil {
			return nil, err
		}
		return &Type{kind: Array, raw: rType, args: []*Type{elem}}, nil
	}
	return &Type{kind: Plain, raw: rType}, nil
}

func argumentOf(owner, arg reflect.Type) (*Type, error) {
	if arg == ClassType {
		return &Type{kind: Plain, raw: arg}, nil
	}
	switch arg.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return nil, nestedShapeError(owner, arg)
	}
	return &Type{kind: Plain, raw: arg}, nil
}

// Kind returns the descriptor kind
func (t *Type) Kind() Kind {
	return t.kind
}

// Raw returns the underlying reflect type
func (t *Type) Raw() reflect.Type {
	return t.raw
}

// Arguments returns the type arguments captured at resolution time; the
// returned slice is read only
func (t *Type) Arguments() []*Type {
	return t.args
}

// Class returns the raw type of a plain descriptor
func (t *Type) Class() (reflect.Type, error) {
	if t.kind != Plain {
		return nil, notAClassError(t)
	}
	return t.raw, nil
}

// Name returns the descriptor type name
func (t *Type) Name() string {
	return t.raw.String()
}

func (t *Type) String() string {
	return t.raw.String()
}

func (k Kind) String() string {
	switch k {
	case Parameterized:
		return "parameterized"
	case Array:
		return "array"
	}
	return "plain"
}
