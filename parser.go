package typarse

import (
	"errors"
	"fmt"
	"reflect"
)

// Parser resolves and invokes the converter registered for a requested type.
// A parser is configured once; conversion calls never mutate its state, so a
// single instance is safe for simultaneous use by many goroutines.
type Parser struct {
	registry       *registry
	splitPolicy    SplitPolicy
	keyValuePolicy SplitPolicy
}

// New creates a parser with the supplied options applied on top of the
// built in defaults
func New(opts ...Option) (*Parser, error) {
	options := newOptions(opts)
	reg := newRegistry()
	if !options.withoutDefaults {
		registerDefaults(reg, options.timeLayout)
	}
	for _, entry := range options.converters {
		if entry.rType == nil {
			return nil, missingArgumentError("target")
		}
		reg.register(entry.rType, entry.converter)
	}
	for _, entry := range options.fallbacks {
		if entry.iface == nil || entry.iface.Kind() != reflect.Interface {
			return nil, fmt.Errorf("invalid interface converter registration: %v is not an interface", entry.iface)
		}
		reg.registerFallback(entry.iface, entry.converter)
	}
	if _, ok := reg.exact[ClassType]; !ok && !options.withoutDefaults {
		reg.register(ClassType, newTypeNameConverter(knownTypes(reg)))
	}
	return &Parser{
		registry:       reg,
		splitPolicy:    options.splitPolicy,
		keyValuePolicy: options.keyValuePolicy,
	}, nil
}

// Parse converts input into a value of the supplied target type
func (p *Parser) Parse(input string, target reflect.Type) (interface{}, error) {
	targetType, err := TypeOf(target)
	if err != nil {
		return nil, err
	}
	return p.parse(input, targetType)
}

// parse dispatches a single conversion: resolve the converter, build a fresh
// helper, invoke, and propagate the result or failure
func (p *Parser) parse(input string, target *Type) (interface{}, error) {
	converter, err := p.registry.resolve(target)
	if err != nil {
		return nil, err
	}
	value, err := converter.Convert(input, newHelper(p, target))
	if err != nil {
		var failure *Error
		if errors.As(err, &failure) {
			return nil, err
		}
		return nil, convertFailureError(target, err)
	}
	return value, nil
}

// Parse converts input into a value of type T using the supplied parser
func Parse[T any](parser *Parser, input string) (T, error) {
	var result T
	target := reflect.TypeOf(&result).Elem()
	value, err := parser.Parse(input, target)
	if err != nil {
		return result, err
	}
	typed, ok := value.(T)
	if !ok {
		targetType, _ := TypeOf(target)
		return result, convertFailureError(targetType, fmt.Errorf("converter produced %T", value))
	}
	return typed, nil
}
