package typarse

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPolicy struct {
	calls int
}

func (p *countingPolicy) Split(input string, _ *SplitContext) ([]string, error) {
	p.calls++
	return []string{input}, nil
}

type failingPolicy struct{}

func (p failingPolicy) Split(string, *SplitContext) ([]string, error) {
	return nil, fmt.Errorf("boom happened")
}

func (p failingPolicy) String() string {
	return "failing policy"
}

type panickyPolicy struct{}

func (p panickyPolicy) Split(string, *SplitContext) ([]string, error) {
	panic("unexpected token")
}

func testHelper(t *testing.T, target reflect.Type, opts ...Option) *Helper {
	parser, err := New(opts...)
	require.NoError(t, err)
	targetType, err := TypeOf(target)
	require.NoError(t, err)
	return newHelper(parser, targetType)
}

func TestHelper_Split(t *testing.T) {
	policy := &countingPolicy{}
	helper := testHelper(t, reflect.TypeOf([]int{}), WithSplitPolicy(policy))

	parts, err := helper.Split(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, parts)
	assert.Equal(t, 0, policy.calls, "nil input shall not invoke the policy")

	input := "1,2"
	parts, err = helper.Split(&input)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,2"}, parts)
	assert.Equal(t, 1, policy.calls)
}

func TestHelper_SplitDefaults(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf([]int{}))
	input := "1, 2, 3, 4"
	parts, err := helper.Split(&input)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", " 2", " 3", " 4"}, parts)

	keyValue := "a=AAA=BBB"
	pair, err := helper.SplitKeyValue(&keyValue)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "AAA=BBB"}, pair)
}

func TestHelper_SplitKeyValueNil(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf(map[string]int{}))
	_, err := helper.SplitKeyValue(nil)
	assert.True(t, errors.Is(err, ErrMissingRequiredInput))
	assert.Contains(t, err.Error(), "keyValue")
}

func TestHelper_SplitFailureWrapping(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf([]int{}), WithSplitPolicy(failingPolicy{}))
	input := "1,2"
	_, err := helper.Split(&input)
	assert.True(t, errors.Is(err, ErrSplitPolicyFailure))
	assert.Contains(t, err.Error(), "boom happened")
	assert.Contains(t, err.Error(), "failing policy")
	assert.Contains(t, err.Error(), "typarse.failingPolicy")

	var failure *Error
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "failing policy", failure.Policy)
	assert.Equal(t, "typarse.failingPolicy", failure.PolicyType)
}

func TestHelper_SplitPanicWrapping(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf([]int{}), WithKeyValueSplitPolicy(panickyPolicy{}))
	input := "a=1"
	_, err := helper.SplitKeyValue(&input)
	assert.True(t, errors.Is(err, ErrSplitPolicyFailure))
	assert.Contains(t, err.Error(), "unexpected token")
}

func TestHelper_SplitContextTargetType(t *testing.T) {
	var seen *Type
	capture := splitPolicyFunc(func(input string, ctx *SplitContext) ([]string, error) {
		seen = ctx.TargetType()
		return []string{input}, nil
	})
	helper := testHelper(t, reflect.TypeOf([]int{}), WithSplitPolicy(capture))
	input := "1"
	_, err := helper.Split(&input)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, reflect.TypeOf([]int{}), seen.Raw())
}

type splitPolicyFunc func(input string, ctx *SplitContext) ([]string, error)

func (f splitPolicyFunc) Split(input string, ctx *SplitContext) ([]string, error) {
	return f(input, ctx)
}

func TestHelper_ParameterizedArguments(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf(map[string]int{}))
	args, err := helper.ParameterizedArguments()
	require.NoError(t, err)
	require.Equal(t, 2, len(args))
	assert.Equal(t, reflect.TypeOf(""), args[0].Raw())
	assert.Equal(t, reflect.TypeOf(0), args[1].Raw())

	plain := testHelper(t, reflect.TypeOf(0))
	_, err = plain.ParameterizedArguments()
	assert.True(t, errors.Is(err, ErrInvalidGenericShape))
	assert.Contains(t, err.Error(), "int")
}

func TestHelper_ArgumentAt(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf(map[string]int{}))

	arg, err := helper.ArgumentAt(1)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(0), arg.Raw())

	_, err = helper.ArgumentAt(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "-1")

	_, err = helper.ArgumentAt(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "2")
	var failure *Error
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, 2, failure.Index)
	assert.Equal(t, 2, failure.Size)
}

func TestHelper_TargetClass(t *testing.T) {
	helper := testHelper(t, reflect.TypeOf(0))
	raw, err := helper.TargetClass()
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(0), raw)

	parameterized := testHelper(t, reflect.TypeOf([]int{}))
	_, err = parameterized.TargetClass()
	assert.True(t, errors.Is(err, ErrNotAClassType))
}
