package form

// Rule names with dedicated evaluation or message semantics.
const (
	RuleRequired   = "required"
	RuleRequiredIf = "requiredIf"
	RuleEmail      = "email"
	RuleNumeric    = "numeric"
	RuleMinLength  = "minLength"
	RuleMaxLength  = "maxLength"
)

// Predicate is a total check over a field value. Implementations must return
// a verdict for every member of the value domain, including absent values,
// and never panic.
type Predicate func(Value) bool

// Rule is a single named constraint in one of two forms: an on/off flag, or a
// predicate applied to the field's current value. The form it was constructed
// with decides how the evaluator interprets it.
type Rule struct {
	pred   Predicate
	flag   bool
	isPred bool
	param  any
}

// Flag returns a rule that is simply on or off. Flag rules other than
// required resolve their predicate through the controller's Library.
func Flag(on bool) Rule { return Rule{flag: on} }

// Check returns a predicate rule.
func Check(p Predicate) Rule { return Rule{pred: p, isPred: p != nil} }

// WithParam attaches the parameter interpolated into the rule's failure
// message, e.g. a length bound.
func (r Rule) WithParam(param any) Rule {
	r.param = param
	return r
}

// Param returns the message parameter, or nil.
func (r Rule) Param() any { return r.param }

// Truthy reads the rule as a bare flag: predicate rules count as on.
func (r Rule) Truthy() bool {
	if r.isPred {
		return true
	}
	return r.flag
}

// RuleSet holds one field's rules. The order of first insertion is the
// evaluation order, except that required and requiredIf are always logically
// first regardless of where they were declared.
type RuleSet struct {
	names []string
	rules map[string]Rule
}

func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string]Rule)}
}

// Set adds or replaces a rule. Replacing keeps the name's original position.
func (rs *RuleSet) Set(name string, r Rule) *RuleSet {
	if _, ok := rs.rules[name]; !ok {
		rs.names = append(rs.names, name)
	}
	rs.rules[name] = r
	return rs
}

func (rs *RuleSet) Get(name string) (Rule, bool) {
	r, ok := rs.rules[name]
	return r, ok
}

func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.names)
}

// Names returns the rule names in declaration order.
func (rs *RuleSet) Names() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.names))
	copy(out, rs.names)
	return out
}

// RuleTable maps field names to their rule sets. A field with no entry is
// never validated.
type RuleTable map[string]*RuleSet

// LabelTable maps field names to display labels used only in message text.
type LabelTable map[string]string

// Library maps rule names to the predicate evaluated when a field declares
// the rule as a bare flag. required and requiredIf never resolve through it.
type Library map[string]Predicate

// Clone returns an independent copy of the library.
func (l Library) Clone() Library {
	out := make(Library, len(l))
	for name, p := range l {
		out[name] = p
	}
	return out
}
