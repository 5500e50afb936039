package typarse

import (
	"fmt"
	"strings"
)

type (
	// SplitPolicy tokenizes a delimited string into an ordered sequence of
	// substrings; implementations receive a read only context with the
	// current target type
	SplitPolicy interface {
		Split(input string, ctx *SplitContext) ([]string, error)
	}

	// SplitContext exposes the current target type to a split policy
	SplitContext struct {
		targetType *Type
	}

	defaultSplitPolicy  struct{}
	keyValueSplitPolicy struct{}
)

// TargetType returns the type the current conversion targets
func (c *SplitContext) TargetType() *Type {
	return c.targetType
}

// Split splits on every comma, substrings are not trimmed:
// "1, 2, 3, 4" yields ["1", " 2", " 3", " 4"]
func (p defaultSplitPolicy) Split(input string, _ *SplitContext) ([]string, error) {
	return strings.Split(input, ","), nil
}

func (p defaultSplitPolicy) String() string {
	return "default split policy"
}

// Split splits on the first '=' only, any subsequent '=' stays in the value:
// "a=AAA=BBB" yields ["a", "AAA=BBB"]
func (p keyValueSplitPolicy) Split(input string, _ *SplitContext) ([]string, error) {
	return strings.SplitN(input, "=", 2), nil
}

func (p keyValueSplitPolicy) String() string {
	return "default key/value split policy"
}

// invokeSplit runs a policy and normalizes every failure mode, error or
// panic, into a SplitPolicyFailure naming the policy and its concrete type
func invokeSplit(policy SplitPolicy, input string, ctx *SplitContext) (parts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = splitFailureError(policy, fmt.Errorf("%v", r))
		}
	}()
	parts, err = policy.Split(input, ctx)
	if err != nil {
		return nil, splitFailureError(policy, err)
	}
	return parts, nil
}
