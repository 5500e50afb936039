package typarse

import (
	"reflect"
)

type (
	// Option customizes a parser
	Option func(o *options)

	registration struct {
		rType     reflect.Type
		converter Converter
	}

	options struct {
		converters      []registration
		fallbacks       []fallback
		splitPolicy     SplitPolicy
		keyValuePolicy  SplitPolicy
		timeLayout      string
		withoutDefaults bool
	}
)

func newOptions(opts []Option) *options {
	ret := &options{
		splitPolicy:    defaultSplitPolicy{},
		keyValuePolicy: keyValueSplitPolicy{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithConverter registers a converter for the exact target type, overriding
// any built in registration
func WithConverter(target reflect.Type, converter Converter) Option {
	return func(o *options) {
		o.converters = append(o.converters, registration{rType: target, converter: converter})
	}
}

// WithConverterFunc registers a converter function for the exact target type
func WithConverterFunc(target reflect.Type, converter func(input string, helper *Helper) (interface{}, error)) Option {
	return WithConverter(target, ConverterFunc(converter))
}

// WithInterfaceConverter registers a fallback converter matched when the
// target type, or a pointer to it, implements iface; fallbacks are consulted
// in registration order after exact and kind matches
func WithInterfaceConverter(iface reflect.Type, converter Converter) Option {
	return func(o *options) {
		o.fallbacks = append(o.fallbacks, fallback{iface: iface, converter: converter})
	}
}

// WithSplitPolicy overrides the composite value split policy
func WithSplitPolicy(policy SplitPolicy) Option {
	return func(o *options) {
		o.splitPolicy = policy
	}
}

// WithKeyValueSplitPolicy overrides the key/value split policy
func WithKeyValueSplitPolicy(policy SplitPolicy) Option {
	return func(o *options) {
		o.keyValuePolicy = policy
	}
}

// WithTimeLayout sets the primary layout used by the built in time converter
func WithTimeLayout(layout string) Option {
	return func(o *options) {
		o.timeLayout = layout
	}
}

// WithoutDefaults disables built in converter registration; only explicitly
// registered converters resolve
func WithoutDefaults() Option {
	return func(o *options) {
		o.withoutDefaults = true
	}
}
