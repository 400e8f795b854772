package form

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/cell"
)

// Controller runs validation passes over a form and owns the resulting error
// state. Inputs are read through cell.Getter sources, so each of values,
// rules, and labels may independently be a plain snapshot or a live cell; a
// fresh snapshot is taken on every pass, never cached.
//
// All operations are synchronous and run to completion. The controller does
// not serialize callers; invoke it from discrete events.
type Controller struct {
	values cell.Getter[map[string]Value]
	rules  cell.Getter[RuleTable]
	labels cell.Getter[LabelTable]
	lib    Library
	log    *slog.Logger

	errors  *cell.Cell[Errors]
	generic *cell.Cell[string]
	valid   *cell.Cell[bool]
}

// Option configures a Controller.
type Option func(*Controller)

// WithValues sets the source of field values.
func WithValues(src cell.Getter[map[string]Value]) Option {
	return func(c *Controller) {
		if src != nil {
			c.values = src
		}
	}
}

// WithStaticValues sets a fixed value record.
func WithStaticValues(values map[string]Value) Option {
	return WithValues(cell.Static(values))
}

// WithRules sets the source of the rule table.
func WithRules(src cell.Getter[RuleTable]) Option {
	return func(c *Controller) {
		if src != nil {
			c.rules = src
		}
	}
}

// WithStaticRules sets a fixed rule table.
func WithStaticRules(rules RuleTable) Option {
	return WithRules(cell.Static(rules))
}

// WithLabels sets the source of display labels.
func WithLabels(src cell.Getter[LabelTable]) Option {
	return func(c *Controller) {
		if src != nil {
			c.labels = src
		}
	}
}

// WithStaticLabels sets a fixed label table.
func WithStaticLabels(labels LabelTable) Option {
	return WithLabels(cell.Static(labels))
}

// WithLibrary sets the predicate library used to resolve flag-form rules.
func WithLibrary(lib Library) Option {
	return func(c *Controller) {
		if lib != nil {
			c.lib = lib
		}
	}
}

// WithLogger sets the logger for validation passes. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController creates a controller. Without options it validates an empty
// form: every pass succeeds and the error map stays empty.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		values:  cell.Static(map[string]Value(nil)),
		rules:   cell.Static(RuleTable(nil)),
		labels:  cell.Static(LabelTable(nil)),
		lib:     Library{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		errors:  cell.New(Errors{}),
		generic: cell.New(""),
		valid:   cell.New(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// snapshot is the point-in-time read of values, rules, and labels used for
// one validation pass.
type snapshot struct {
	values map[string]Value
	rules  RuleTable
	labels LabelTable
}

func (c *Controller) snapshot() snapshot {
	return snapshot{
		values: c.values.Get(),
		rules:  c.rules.Get(),
		labels: c.labels.Get(),
	}
}

// Validate runs one validation pass and reports overall validity. The error
// map is rebuilt from scratch into a fresh local map and published in a
// single replacement, but only when the pass found failures; a clean pass
// leaves previously injected errors in place until ResetErrors.
func (c *Controller) Validate() bool {
	snap := c.snapshot()

	next := Errors{}
	for field, value := range snap.values {
		rs, ok := snap.rules[field]
		if !ok {
			continue
		}
		if msg, valid := Evaluate(value, rs, snap.labels[field], c.lib); !valid {
			next[field] = msg
		}
	}

	valid := next.IsEmpty()
	c.valid.Set(valid)
	if !valid {
		c.errors.Set(next)
	}
	c.log.Debug("validation pass finished",
		slog.Int("fields", len(snap.values)),
		slog.Int("invalid", len(next)),
	)
	return valid
}

// Errors returns a copy of the current error map.
func (c *Controller) Errors() Errors {
	return c.errors.Get().clone()
}

// Valid reports the validity flag from the last pass.
func (c *Controller) Valid() bool {
	return c.valid.Get()
}

// GenericError returns the current form-level message.
func (c *Controller) GenericError() string {
	return c.generic.Get()
}

// ErrorsCell exposes the error map as an observable source.
func (c *Controller) ErrorsCell() cell.Getter[Errors] {
	return c.errors
}

// ValidCell exposes the validity flag as an observable source.
func (c *Controller) ValidCell() cell.Getter[bool] {
	return c.valid
}

// GenericErrorCell exposes the form-level message as an observable source.
func (c *Controller) GenericErrorCell() cell.Getter[string] {
	return c.generic
}

// SetErrors injects an externally produced error map, e.g. from a server-side
// check. Multiple messages for one field are joined with ", " into a single
// display string. The injected state stands until the next failing Validate
// pass or ResetErrors.
func (c *Controller) SetErrors(errs map[string][]string) {
	next := make(Errors, len(errs))
	for field, msgs := range errs {
		next[field] = strings.Join(msgs, ", ")
	}
	c.errors.Set(next)
}

// SetGenericError sets the form-level message, independent of per-field
// errors.
func (c *Controller) SetGenericError(msg string) {
	c.generic.Set(msg)
}

// ResetErrors clears both the per-field error map and the form-level message.
func (c *Controller) ResetErrors() {
	c.errors.Set(Errors{})
	c.generic.Set("")
}
