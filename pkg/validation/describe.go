package validation

// Canonical rule kinds, mirroring the constraint vocabulary of OpenAPI/JSON
// Schema so exporters can map rules onto schema keywords.
const (
	RuleKindType      = "type"
	RuleKindMin       = "min"
	RuleKindMax       = "max"
	RuleKindMinLength = "minLength"
	RuleKindMaxLength = "maxLength"
	RuleKindMinItems  = "minItems"
	RuleKindEnum      = "enum"
	RuleKindNullable  = "nullable"
)

// Rule is a declarative descriptor for a validation constraint. Thresholds
// are encoded as string params to keep descriptors comparable and snapshot
// friendly.
type Rule struct {
	Kind   string
	Params map[string]string
}

// Describer is implemented by rules that can describe themselves as canonical
// constraints. Purely behavioural rules simply do not implement it.
type Describer interface {
	Describe() []Rule
}

// DescribeAll flattens the descriptors of every rule that implements
// Describer, preserving order.
func DescribeAll(validators ...any) []Rule {
	var rules []Rule
	for _, v := range validators {
		if d, ok := v.(Describer); ok {
			rules = append(rules, d.Describe()...)
		}
	}
	return rules
}
