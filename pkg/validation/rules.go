package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goliatone/go-objectmodel/pkg/model"
)

var errNullValue = errors.New("unexpected null value")

// OfType passes values whose dynamic type is T. Null values fail; wrap with
// Nullable to permit them.
func OfType[T any]() model.Validator {
	return typeRule[T]{}
}

type typeRule[T any] struct{}

func (typeRule[T]) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	if value == nil {
		return errNullValue
	}
	if _, ok := value.(T); !ok {
		return fmt.Errorf("expected %s, got %T", reflect.TypeOf((*T)(nil)).Elem().String(), value)
	}
	return nil
}

func (typeRule[T]) Describe() []Rule {
	return []Rule{{Kind: RuleKindType, Params: map[string]string{
		"type": reflect.TypeOf((*T)(nil)).Elem().String(),
	}}}
}

// Nullable wraps a rule so nil values pass without consulting it.
func Nullable(inner model.Validator) model.Validator {
	return nullableRule{inner: inner}
}

type nullableRule struct {
	inner model.Validator
}

func (r nullableRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	if value == nil {
		return nil
	}
	return r.inner.Validate(inst, field, value)
}

func (r nullableRule) Describe() []Rule {
	rules := []Rule{{Kind: RuleKindNullable}}
	if d, ok := r.inner.(Describer); ok {
		rules = append(rules, d.Describe()...)
	}
	return rules
}

// NotEmptyString passes non-empty strings.
func NotEmptyString() model.Validator {
	return notEmptyString{}
}

type notEmptyString struct{}

func (notEmptyString) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if s == "" {
		return errors.New("string must not be empty")
	}
	return nil
}

func (notEmptyString) Describe() []Rule {
	return []Rule{
		{Kind: RuleKindType, Params: map[string]string{"type": "string"}},
		{Kind: RuleKindMinLength, Params: map[string]string{"value": "1"}},
	}
}

// Numeric passes integer and floating-point values.
func Numeric() model.Validator {
	return numericRule{allowFloat: true}
}

// Integer passes integer values. Floating-point values are accepted only when
// whole, so integers arriving through JSON decoding (which yields float64)
// still pass.
func Integer() model.Validator {
	return numericRule{allowFloat: false}
}

type numericRule struct {
	allowFloat bool
}

func (r numericRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	n, isFloat, ok := asNumber(value)
	if !ok {
		return fmt.Errorf("expected a number, got %T", value)
	}
	if !r.allowFloat && isFloat && n != math.Trunc(n) {
		return fmt.Errorf("expected an integer, got %v", value)
	}
	return nil
}

func (r numericRule) Describe() []Rule {
	kind := "number"
	if !r.allowFloat {
		kind = "integer"
	}
	return []Rule{{Kind: RuleKindType, Params: map[string]string{"type": kind}}}
}

// NonNegative passes numeric values greater than or equal to zero.
func NonNegative() model.Validator {
	return boundRule{min: 0}
}

// Min passes numeric values greater than or equal to n.
func Min(n float64) model.Validator {
	return boundRule{min: n}
}

type boundRule struct {
	min float64
}

func (r boundRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	n, _, ok := asNumber(value)
	if !ok {
		return fmt.Errorf("expected a number, got %T", value)
	}
	if n < r.min {
		return fmt.Errorf("value %v is below the minimum %v", value, r.min)
	}
	return nil
}

func (r boundRule) Describe() []Rule {
	return []Rule{{Kind: RuleKindMin, Params: map[string]string{
		"value": strconv.FormatFloat(r.min, 'f', -1, 64),
	}}}
}

// MaxLen passes strings, slices and maps whose length does not exceed n.
func MaxLen(n int) model.Validator {
	return maxLenRule{max: n}
}

type maxLenRule struct {
	max int
}

func (r maxLenRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	length, ok := lengthOf(value)
	if !ok {
		return fmt.Errorf("value of type %T has no length", value)
	}
	if length > r.max {
		return fmt.Errorf("length %d exceeds the maximum %d", length, r.max)
	}
	return nil
}

func (r maxLenRule) Describe() []Rule {
	return []Rule{{Kind: RuleKindMaxLength, Params: map[string]string{
		"value": strconv.Itoa(r.max),
	}}}
}

// EnumRule passes values contained in a fixed option set.
type EnumRule struct {
	Options []any
}

// In creates a set-membership rule over the given options.
func In(options ...any) *EnumRule {
	return &EnumRule{Options: options}
}

func (r *EnumRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	for _, option := range r.Options {
		if reflect.DeepEqual(option, value) {
			return nil
		}
	}
	return fmt.Errorf("value %v is not one of the allowed options", value)
}

func (r *EnumRule) Describe() []Rule {
	values := make(map[string]string, len(r.Options))
	for i, option := range r.Options {
		values[strconv.Itoa(i)] = fmt.Sprint(option)
	}
	return []Rule{{Kind: RuleKindEnum, Params: values}}
}

// Each applies the item rule to every element of a sequence, failing fast on
// the first violation.
func Each(item model.Validator) model.Validator {
	return eachRule{item: item}
}

type eachRule struct {
	item model.Validator
}

func (r eachRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	elements, ok := sequenceOf(value)
	if !ok {
		return fmt.Errorf("expected a sequence, got %T", value)
	}
	for idx, element := range elements {
		if err := r.item.Validate(inst, field, element); err != nil {
			return fmt.Errorf("element %d: %w", idx, err)
		}
	}
	return nil
}

// NotEmptySlice passes sequences with at least one element.
func NotEmptySlice() model.Validator {
	return notEmptySlice{}
}

type notEmptySlice struct{}

func (notEmptySlice) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	elements, ok := sequenceOf(value)
	if !ok {
		return fmt.Errorf("expected a sequence, got %T", value)
	}
	if len(elements) == 0 {
		return errors.New("sequence must not be empty")
	}
	return nil
}

func (notEmptySlice) Describe() []Rule {
	return []Rule{{Kind: RuleKindMinItems, Params: map[string]string{"value": "1"}}}
}

// Chain evaluates rules left to right and stops at the first failure.
func Chain(rules ...model.Validator) model.Validator {
	return chainRule{rules: rules}
}

type chainRule struct {
	rules []model.Validator
}

func (r chainRule) Validate(inst *model.Instance, field model.FieldSpec, value any) error {
	for _, rule := range r.rules {
		if err := rule.Validate(inst, field, value); err != nil {
			return err
		}
	}
	return nil
}

func (r chainRule) Describe() []Rule {
	var out []Rule
	for _, rule := range r.rules {
		if d, ok := rule.(Describer); ok {
			out = append(out, d.Describe()...)
		}
	}
	return out
}

func asNumber(value any) (n float64, isFloat, ok bool) {
	switch v := value.(type) {
	case int:
		return float64(v), false, true
	case int8:
		return float64(v), false, true
	case int16:
		return float64(v), false, true
	case int32:
		return float64(v), false, true
	case int64:
		return float64(v), false, true
	case uint:
		return float64(v), false, true
	case uint8:
		return float64(v), false, true
	case uint16:
		return float64(v), false, true
	case uint32:
		return float64(v), false, true
	case uint64:
		return float64(v), false, true
	case float32:
		return float64(v), true, true
	case float64:
		return v, true, true
	default:
		return 0, false, false
	}
}

func lengthOf(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func sequenceOf(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	if elements, ok := value.([]any); ok {
		return elements, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
