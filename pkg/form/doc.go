// Package form implements a declarative field-validation engine: given a
// record of field values, a per-field set of named rules, and optional
// display labels, it decides overall validity and produces at most one error
// message per invalid field.
//
// The package is UI-agnostic. It performs pure data evaluation over
// in-memory snapshots and exposes its results through observable cells; it
// never renders anything and never performs I/O.
//
// # Architecture
//
// Core building blocks:
//   - Value      – tagged union covering the field value domain
//   - Rule       – an on/off flag or a predicate, held in an ordered RuleSet
//   - Library    – injectable catalog resolving flag-form rules to predicates
//   - Evaluate   – the per-field verdict algorithm
//   - Controller – iterates fields, rebuilds the error map, owns the state
//
// Rule precedence is fixed: a field's effective presence requirement (the
// requiredIf predicate when declared, the required flag otherwise) preempts
// every other rule, so an empty required field is always reported as
// required, never as a format failure. Among the remaining rules the first
// failing one in declaration order wins with its own message; a field never
// carries more than one message.
//
// # Usage
//
//	ctrl := form.NewController(
//	    form.WithStaticValues(map[string]form.Value{"email": form.String("")}),
//	    form.WithStaticRules(form.RuleTable{
//	        "email": form.NewRuleSet().
//	            Set(form.RuleRequired, form.Flag(true)).
//	            Set(form.RuleEmail, form.Flag(true)),
//	    }),
//	    form.WithStaticLabels(form.LabelTable{"email": "Email"}),
//	    form.WithLibrary(rules.Builtin()),
//	)
//	if !ctrl.Validate() {
//	    msg := ctrl.Errors().Get("email") // "The Email is required"
//	}
//
// Any of the inputs may be a live cell instead of a static table; the
// controller takes a fresh snapshot on every pass.
//
// # Concurrency
//
// Operations are synchronous and run to completion. The controller's state
// cells tolerate concurrent readers, but callers must serialize the
// operations themselves, e.g. by invoking them from discrete user events.
package form
