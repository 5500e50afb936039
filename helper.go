package typarse

import (
	"reflect"
)

// Helper is a per call, read only facade handed to every converter; it
// exposes the current target type, recursive dispatch into the owning parser
// and the configured split policies. A helper is created fresh for each
// conversion call and discarded when the call returns.
type Helper struct {
	targetType     *Type
	parser         *Parser
	splitPolicy    SplitPolicy
	keyValuePolicy SplitPolicy
}

func newHelper(parser *Parser, targetType *Type) *Helper {
	return &Helper{
		targetType:     targetType,
		parser:         parser,
		splitPolicy:    parser.splitPolicy,
		keyValuePolicy: parser.keyValuePolicy,
	}
}

// Parse converts input into the supplied reflect type, recursively
// delegating to the owning parser
func (h *Helper) Parse(input string, target reflect.Type) (interface{}, error) {
	return h.parser.Parse(input, target)
}

// ParseType converts input into a previously resolved descriptor, typically
// one returned by ArgumentAt
func (h *Helper) ParseType(input string, target *Type) (interface{}, error) {
	return h.parser.parse(input, target)
}

// Split tokenizes input with the configured split policy; a nil input yields
// an empty sequence without invoking the policy
func (h *Helper) Split(input *string) ([]string, error) {
	if input == nil {
		return []string{}, nil
	}
	return invokeSplit(h.splitPolicy, *input, &SplitContext{targetType: h.targetType})
}

// SplitKeyValue tokenizes a key/value input with the configured key/value
// policy; unlike Split a nil input is an error, a pair decomposition always
// requires a value
func (h *Helper) SplitKeyValue(input *string) ([]string, error) {
	if input == nil {
		return nil, missingArgumentError("keyValue")
	}
	return invokeSplit(h.keyValuePolicy, *input, &SplitContext{targetType: h.targetType})
}

// TargetType returns the current target descriptor
func (h *Helper) TargetType() *Type {
	return h.targetType
}

// ParameterizedArguments returns the type arguments exactly as captured at
// resolution time; the target must be parameterized
func (h *Helper) ParameterizedArguments() ([]*Type, error) {
	if h.targetType.Kind() != Parameterized {
		return nil, notParameterizedError(h.targetType)
	}
	return h.targetType.Arguments(), nil
}

// ArgumentAt returns the type argument at the supplied position
func (h *Helper) ArgumentAt(index int) (*Type, error) {
	if index < 0 {
		return nil, negativeIndexError(index)
	}
	args, err := h.ParameterizedArguments()
	if err != nil {
		return nil, err
	}
	if index >= len(args) {
		return nil, indexOverflowError(index, len(args))
	}
	return args[index], nil
}

// TargetClass returns the raw type of a plain target
func (h *Helper) TargetClass() (reflect.Type, error) {
	return h.targetType.Class()
}
