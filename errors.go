package typarse

import (
	"fmt"
	"reflect"
)

// ErrorKind enumerates conversion failure kinds; all failures are
// synchronous and non retryable
type ErrorKind int

const (
	// UnsupportedType indicates no converter resolved for the requested type
	UnsupportedType ErrorKind = iota + 1
	// InvalidGenericShape indicates nested parameterization beyond the allowed
	// single level, or a parameterized query against a non parameterized target
	InvalidGenericShape
	// IndexOutOfRange indicates a negative or overflowing type argument index
	IndexOutOfRange
	// MissingRequiredInput indicates a nil input to an operation requiring a value
	MissingRequiredInput
	// SplitPolicyFailure indicates a failure surfaced by a split policy
	SplitPolicyFailure
	// NotAClassType indicates a raw class query against a parameterized target
	NotAClassType
	// ConvertFailure indicates a converter failed on the supplied input
	ConvertFailure
)

// Error describes a conversion failure; callers branch on Kind, the
// structured fields carry the offending values
type Error struct {
	Kind       ErrorKind
	Type       string
	Argument   string
	Index      int
	Size       int
	Policy     string
	PolicyType string
	message    string
	cause      error
}

// Error returns the failure message
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the underlying cause if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Kind sentinels for errors.Is matching
var (
	ErrUnsupportedType      = &Error{Kind: UnsupportedType}
	ErrInvalidGenericShape  = &Error{Kind: InvalidGenericShape}
	ErrIndexOutOfRange      = &Error{Kind: IndexOutOfRange}
	ErrMissingRequiredInput = &Error{Kind: MissingRequiredInput}
	ErrSplitPolicyFailure   = &Error{Kind: SplitPolicyFailure}
	ErrNotAClassType        = &Error{Kind: NotAClassType}
	ErrConvertFailure       = &Error{Kind: ConvertFailure}
)

func unsupportedTypeError(target *Type) *Error {
	return &Error{
		Kind:    UnsupportedType,
		Type:    target.Name(),
		message: fmt.Sprintf("unsupported type: %v, no converter was registered", target.Name()),
	}
}

func nestedShapeError(owner, arg reflect.Type) *Error {
	return &Error{
		Kind: InvalidGenericShape,
		Type: owner.String(),
		message: fmt.Sprintf("invalid type: %v, type argument %v was itself parameterized, only plain arguments or %v are allowed",
			owner, arg, ClassType),
	}
}

func notParameterizedError(target *Type) *Error {
	return &Error{
		Kind:    InvalidGenericShape,
		Type:    target.Name(),
		message: fmt.Sprintf("type %v is not parameterized", target.Name()),
	}
}

func negativeIndexError(index int) *Error {
	return &Error{
		Kind:    IndexOutOfRange,
		Index:   index,
		message: fmt.Sprintf("index was illegally set to negative value: %v, must be positive", index),
	}
}

func indexOverflowError(index, size int) *Error {
	return &Error{
		Kind:    IndexOutOfRange,
		Index:   index,
		Size:    size,
		message: fmt.Sprintf("index was illegally set to value: %v, argument list size is: %v", index, size),
	}
}

func missingArgumentError(name string) *Error {
	return &Error{
		Kind:     MissingRequiredInput,
		Argument: name,
		message:  fmt.Sprintf("argument '%v' was nil, a value is required", name),
	}
}

func splitFailureError(policy SplitPolicy, cause error) *Error {
	return &Error{
		Kind:       SplitPolicyFailure,
		Policy:     fmt.Sprintf("%v", policy),
		PolicyType: fmt.Sprintf("%T", policy),
		cause:      cause,
		message: fmt.Sprintf("split policy: %v [%T] failed with message: %v, see underlying error for more information",
			policy, policy, cause),
	}
}

func notAClassError(target *Type) *Error {
	return &Error{
		Kind:    NotAClassType,
		Type:    target.Name(),
		message: fmt.Sprintf("type %v [%v] is not a raw class and cannot be used as one", target.Name(), target.Kind()),
	}
}

func convertFailureError(target *Type, cause error) *Error {
	return &Error{
		Kind:    ConvertFailure,
		Type:    target.Name(),
		cause:   cause,
		message: fmt.Sprintf("failed to convert into %v, %v", target.Name(), cause),
	}
}
