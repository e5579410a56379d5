package schema

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-objectmodel/pkg/model"
	"github.com/goliatone/go-objectmodel/pkg/validation"
)

const componentRefPrefix = "#/components/schemas/"

// Export converts a model type's field table into an OpenAPI object schema.
// Nested types are inlined except when they reference a type already being
// exported, which is emitted as a component reference to break the cycle.
func Export(t *model.ModelType) (*openapi3.Schema, error) {
	e := &exporter{inProgress: make(map[string]bool)}
	return e.exportType(t)
}

// Components exports several model types into a schema component map keyed
// by type name, ready to attach to an OpenAPI document.
func Components(types ...*model.ModelType) (openapi3.Schemas, error) {
	components := make(openapi3.Schemas, len(types))
	for _, t := range types {
		if t == nil {
			return nil, fmt.Errorf("schema: cannot export a nil type")
		}
		if _, dup := components[t.Name()]; dup {
			return nil, fmt.Errorf("schema: duplicate component %q", t.Name())
		}
		exported, err := Export(t)
		if err != nil {
			return nil, err
		}
		components[t.Name()] = openapi3.NewSchemaRef("", exported)
	}
	return components, nil
}

type exporter struct {
	inProgress map[string]bool
}

func (e *exporter) exportType(t *model.ModelType) (*openapi3.Schema, error) {
	out := openapi3.NewObjectSchema()
	out.Title = t.Name()

	e.inProgress[t.Name()] = true
	defer delete(e.inProgress, t.Name())

	for _, attr := range t.Attrs() {
		spec, _ := t.Field(attr)
		prop, err := e.exportField(spec)
		if err != nil {
			return nil, fmt.Errorf("schema: field %q of %s: %w", attr, t.Name(), err)
		}
		out.Properties[spec.Name()] = prop
		if spec.Required() {
			out.Required = append(out.Required, spec.Name())
		}
	}
	sort.Strings(out.Required)
	return out, nil
}

func (e *exporter) exportField(spec model.FieldSpec) (*openapi3.SchemaRef, error) {
	var (
		ref *openapi3.SchemaRef
		err error
	)

	switch f := spec.(type) {
	case *model.ObjectField:
		ref, err = e.nestedRef(f.TypeRef())
	case *model.ListField:
		items, nestedErr := e.nestedRef(f.TypeRef())
		if nestedErr != nil {
			return nil, nestedErr
		}
		arr := openapi3.NewArraySchema()
		arr.Items = items
		ref = openapi3.NewSchemaRef("", arr)
	case *model.DictField:
		values, nestedErr := e.nestedRef(f.TypeRef())
		if nestedErr != nil {
			return nil, nestedErr
		}
		obj := openapi3.NewObjectSchema()
		obj.AdditionalProperties = openapi3.AdditionalProperties{Schema: values}
		ref = openapi3.NewSchemaRef("", obj)
	case *model.ProxyField:
		computed := schemaFromRules(describeValidator(spec.Validator()))
		computed.ReadOnly = true
		ref = openapi3.NewSchemaRef("", computed)
	default:
		ref = openapi3.NewSchemaRef("", schemaFromRules(describeValidator(spec.Validator())))
	}
	if err != nil {
		return nil, err
	}

	if ref.Value != nil {
		applyFieldKeywords(ref.Value, spec)
	}
	return ref, nil
}

// nestedRef inlines resolvable nested types and falls back to a component
// reference for cycles and unresolved symbolic names.
func (e *exporter) nestedRef(ref model.TypeRef) (*openapi3.SchemaRef, error) {
	name := ref.Name()
	if e.inProgress[name] {
		return openapi3.NewSchemaRef(componentRefPrefix+name, nil), nil
	}
	nested, err := ref.Resolve()
	if err != nil {
		if name == "" {
			return nil, err
		}
		return openapi3.NewSchemaRef(componentRefPrefix+name, nil), nil
	}
	exported, err := e.exportType(nested)
	if err != nil {
		return nil, err
	}
	return openapi3.NewSchemaRef("", exported), nil
}

func applyFieldKeywords(out *openapi3.Schema, spec model.FieldSpec) {
	if spec.AllowNull() {
		out.Nullable = true
	}
	if value, ok := spec.Default().Value(); ok && value != nil {
		out.Default = value
	}
}

func describeValidator(v model.Validator) []validation.Rule {
	if v == nil {
		return nil
	}
	return validation.DescribeAll(v)
}

func schemaFromRules(rules []validation.Rule) *openapi3.Schema {
	out := openapi3.NewSchema()
	for _, rule := range rules {
		switch rule.Kind {
		case validation.RuleKindType:
			if out.Type == nil {
				out.Type = &openapi3.Types{schemaType(rule.Params["type"])}
			}
		case validation.RuleKindMin:
			if n, err := strconv.ParseFloat(rule.Params["value"], 64); err == nil {
				out.Min = &n
			}
		case validation.RuleKindMax:
			if n, err := strconv.ParseFloat(rule.Params["value"], 64); err == nil {
				out.Max = &n
			}
		case validation.RuleKindMinLength:
			if n, err := strconv.ParseUint(rule.Params["value"], 10, 64); err == nil {
				out.MinLength = n
			}
		case validation.RuleKindMaxLength:
			if n, err := strconv.ParseUint(rule.Params["value"], 10, 64); err == nil {
				out.MaxLength = &n
			}
		case validation.RuleKindMinItems:
			if n, err := strconv.ParseUint(rule.Params["value"], 10, 64); err == nil {
				out.MinItems = n
			}
		case validation.RuleKindEnum:
			for _, key := range orderedParamKeys(rule.Params) {
				out.Enum = append(out.Enum, rule.Params[key])
			}
		case validation.RuleKindNullable:
			out.Nullable = true
		}
	}
	return out
}

// schemaType maps Go type names surfaced by rule descriptors onto OpenAPI
// type names; canonical names pass through.
func schemaType(name string) string {
	switch name {
	case "string":
		return "string"
	case "bool", "boolean":
		return "boolean"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "integer":
		return "integer"
	case "float32", "float64", "number":
		return "number"
	default:
		return "object"
	}
}

func orderedParamKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		if aErr == nil && bErr == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}
