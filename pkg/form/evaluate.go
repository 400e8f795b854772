package form

// Evaluate computes the single verdict for one field. It returns the failure
// message and false when any rule fails, or "" and true when the field is
// valid. A nil or empty rule set always yields a valid verdict.
//
// Precedence: the effective required state comes from the requiredIf
// predicate when one is declared, otherwise from the required flag. When the
// field is effectively required and its value is falsy, the required-style
// message preempts every other rule. Otherwise rules run in declaration
// order, skipping required and requiredIf, and the first failing rule wins
// with its own formatted message.
func Evaluate(value Value, rs *RuleSet, label string, lib Library) (string, bool) {
	if rs.Len() == 0 {
		return "", true
	}

	if effectiveRequired(value, rs) && value.Falsy() {
		return Message(label, RuleRequired, nil), false
	}

	for _, name := range rs.names {
		if name == RuleRequired || name == RuleRequiredIf {
			continue
		}
		rule := rs.rules[name]
		pred := rule.pred
		if !rule.isPred {
			if !rule.flag {
				continue
			}
			pred = lib[name]
		}
		if pred == nil {
			continue
		}
		if !pred(value) {
			return Message(label, name, rule.param), false
		}
	}

	return "", true
}

// effectiveRequired resolves the field's presence requirement: a declared
// requiredIf predicate decides against the current value; otherwise the
// required rule read as a flag, with absence counting as not required.
func effectiveRequired(value Value, rs *RuleSet) bool {
	if r, ok := rs.rules[RuleRequiredIf]; ok && r.isPred {
		return r.pred(value)
	}
	r, ok := rs.rules[RuleRequired]
	return ok && r.Truthy()
}
