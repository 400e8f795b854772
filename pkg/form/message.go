package form

import "fmt"

// Message renders the canonical failure sentence for a rule. An empty label
// falls back to the literal "field". The parameter is interpolated only by
// the length rules.
func Message(label, rule string, param any) string {
	if label == "" {
		label = "field"
	}
	switch rule {
	case RuleRequired, RuleRequiredIf:
		return fmt.Sprintf("The %s is required", label)
	case RuleEmail:
		return fmt.Sprintf("The %s must a valid email address.", label)
	case RuleNumeric:
		return fmt.Sprintf("The %s must be a valid number.", label)
	case RuleMaxLength:
		return fmt.Sprintf("The %s cannot have more than %v characters.", label, param)
	case RuleMinLength:
		return fmt.Sprintf("The %s must have %v or more characters.", label, param)
	default:
		return fmt.Sprintf("The %s is invalid", label)
	}
}
