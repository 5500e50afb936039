package typarse

import (
	"reflect"
)

type (
	// Converter turns a string plus a helper into a typed value
	Converter interface {
		Convert(input string, helper *Helper) (interface{}, error)
	}

	// ConverterFunc adapts a function to the Converter interface
	ConverterFunc func(input string, helper *Helper) (interface{}, error)

	fallback struct {
		iface     reflect.Type
		converter Converter
	}

	// registry is built once at configuration time and read only afterwards,
	// safe to share across concurrent conversion calls
	registry struct {
		exact     map[reflect.Type]Converter
		kinds     map[reflect.Kind]Converter
		fallbacks []fallback
	}
)

// Convert invokes the function
func (f ConverterFunc) Convert(input string, helper *Helper) (interface{}, error) {
	return f(input, helper)
}

func newRegistry() *registry {
	return &registry{
		exact: make(map[reflect.Type]Converter),
		kinds: make(map[reflect.Kind]Converter),
	}
}

func (r *registry) register(rType reflect.Type, converter Converter) {
	r.exact[rType] = converter
}

func (r *registry) registerKind(kind reflect.Kind, converter Converter) {
	r.kinds[kind] = converter
}

func (r *registry) registerFallback(iface reflect.Type, converter Converter) {
	r.fallbacks = append(r.fallbacks, fallback{iface: iface, converter: converter})
}

// resolve returns the converter for the supplied descriptor: an exact raw
// type registration first, then the raw kind entry, then interface fallbacks
// scanned in registration order; resolution is deterministic for a given
// registry
func (r *registry) resolve(target *Type) (Converter, error) {
	raw := target.Raw()
	if converter, ok := r.exact[raw]; ok {
		return converter, nil
	}
	if converter, ok := r.kinds[raw.Kind()]; ok {
		return converter, nil
	}
	for _, candidate := range r.fallbacks {
		if raw.Implements(candidate.iface) || reflect.PtrTo(raw).Implements(candidate.iface) {
			return candidate.converter, nil
		}
	}
	return nil, unsupportedTypeError(target)
}
