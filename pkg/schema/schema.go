// Package schema loads declarative form definitions from YAML into the rule
// and label tables consumed by the form validation engine.
//
// A definition lists fields with an optional display label and an ordered
// rule mapping:
//
//	fields:
//	  email:
//	    label: Email
//	    rules:
//	      required: true
//	      email: true
//	      maxLength: 120
//
// Boolean rule values become flags, integer values build the parametrized
// length rules. Rule order in the document is preserved, since it is the
// evaluation order. Predicate-backed rules (requiredIf, custom checks) are
// code-level only and cannot be expressed in a document.
package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// ErrInvalidSchema is wrapped by every parse failure.
var ErrInvalidSchema = errors.New("invalid form schema")

// paramRules maps rule names to constructors for integer-parametrized rules.
var paramRules = map[string]func(int) form.Rule{
	form.RuleMinLength: rules.MinLength,
	form.RuleMaxLength: rules.MaxLength,
	"minItems":         rules.MinItems,
	"maxItems":         rules.MaxItems,
}

// Form is the decoded result of a form definition document.
type Form struct {
	Rules  form.RuleTable
	Labels form.LabelTable
}

// Parse decodes a YAML form definition. Rule declaration order is taken from
// the document, which is why decoding goes through yaml nodes instead of a
// plain map.
func Parse(src []byte) (*Form, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root must be a mapping", ErrInvalidSchema)
	}

	fieldsNode := mappingValue(root, "fields")
	if fieldsNode == nil {
		return nil, fmt.Errorf("%w: missing \"fields\" section", ErrInvalidSchema)
	}
	if fieldsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: \"fields\" must be a mapping", ErrInvalidSchema)
	}

	out := &Form{
		Rules:  form.RuleTable{},
		Labels: form.LabelTable{},
	}
	for i := 0; i < len(fieldsNode.Content); i += 2 {
		name := fieldsNode.Content[i].Value
		if err := parseField(out, name, fieldsNode.Content[i+1]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parseField(out *Form, name string, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: field %q must be a mapping", ErrInvalidSchema, name)
	}

	if label := mappingValue(node, "label"); label != nil {
		if label.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: field %q: label must be a scalar", ErrInvalidSchema, name)
		}
		if label.Value != "" {
			out.Labels[name] = label.Value
		}
	}

	rulesNode := mappingValue(node, "rules")
	if rulesNode == nil {
		return nil
	}
	if rulesNode.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: field %q: rules must be a mapping", ErrInvalidSchema, name)
	}

	rs := form.NewRuleSet()
	for i := 0; i < len(rulesNode.Content); i += 2 {
		ruleName := rulesNode.Content[i].Value
		rule, err := parseRule(name, ruleName, rulesNode.Content[i+1])
		if err != nil {
			return err
		}
		rs.Set(ruleName, rule)
	}
	if rs.Len() > 0 {
		out.Rules[name] = rs
	}
	return nil
}

func parseRule(field, name string, node *yaml.Node) (form.Rule, error) {
	if node.Kind != yaml.ScalarNode {
		return form.Rule{}, fmt.Errorf("%w: field %q: rule %q must be a scalar", ErrInvalidSchema, field, name)
	}

	switch node.Tag {
	case "!!bool":
		var on bool
		if err := node.Decode(&on); err != nil {
			return form.Rule{}, fmt.Errorf("%w: field %q: rule %q: %v", ErrInvalidSchema, field, name, err)
		}
		return form.Flag(on), nil
	case "!!int":
		build, ok := paramRules[name]
		if !ok {
			return form.Rule{}, fmt.Errorf("%w: field %q: rule %q does not take a parameter", ErrInvalidSchema, field, name)
		}
		var bound int
		if err := node.Decode(&bound); err != nil {
			return form.Rule{}, fmt.Errorf("%w: field %q: rule %q: %v", ErrInvalidSchema, field, name, err)
		}
		if bound < 0 {
			return form.Rule{}, fmt.Errorf("%w: field %q: rule %q: bound must not be negative", ErrInvalidSchema, field, name)
		}
		return build(bound), nil
	default:
		return form.Rule{}, fmt.Errorf("%w: field %q: rule %q has unsupported value %q", ErrInvalidSchema, field, name, node.Value)
	}
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
