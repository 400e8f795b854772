// Package rules provides the builtin predicate catalog for the form
// validation engine: presence, format, and length checks, each a total
// form.Predicate that returns a verdict for every member of the value domain
// without panicking. Builtin bundles the parameterless predicates into a
// form.Library under their canonical rule names.
package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/form"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Required reports whether the value is present: booleans always are, dates
// must be valid, sequences and objects must be non-empty, everything else
// needs a non-empty string form.
func Required(v form.Value) bool {
	return v.Present()
}

// Email validates the value's text as an email address using RFC 5322
// parsing plus stricter checks for typical web use.
func Email(v form.Value) bool {
	value := v.Text()
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	localPart, domain := parts[0], parts[1]
	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and no empty segments.
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// Numeric reports whether the value reads as a number: number values always
// do, strings must parse as a float.
func Numeric(v form.Value) bool {
	switch v.Kind() {
	case form.KindNumber:
		return true
	case form.KindString:
		_, ok := v.AsNumber()
		return ok
	default:
		return false
	}
}

// Phone validates the value's text as an international phone number in E.164
// format, tolerating spaces and dashes.
func Phone(v form.Value) bool {
	value := v.Text()
	if strings.TrimSpace(value) == "" {
		return false
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}

// URL validates the value's text as an absolute URL with a scheme and host.
func URL(v form.Value) bool {
	value := v.Text()
	if strings.TrimSpace(value) == "" {
		return false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Alpha reports whether the value's text contains only letters.
func Alpha(v form.Value) bool {
	return alphaRegex.MatchString(v.Text())
}

// Alphanumeric reports whether the value's text contains only letters and
// digits.
func Alphanumeric(v form.Value) bool {
	return alphanumericRegex.MatchString(v.Text())
}

// MinLength returns a rule that fails when the value's text is shorter than
// min runes. The bound doubles as the message parameter.
func MinLength(min int) form.Rule {
	return form.Check(func(v form.Value) bool {
		return utf8.RuneCountInString(v.Text()) >= min
	}).WithParam(min)
}

// MaxLength returns a rule that fails when the value's text is longer than
// max runes.
func MaxLength(max int) form.Rule {
	return form.Check(func(v form.Value) bool {
		return utf8.RuneCountInString(v.Text()) <= max
	}).WithParam(max)
}

// MinItems returns a rule that fails when a sequence has fewer than min
// items. Non-sequence values count as empty.
func MinItems(min int) form.Rule {
	return form.Check(func(v form.Value) bool {
		return len(v.Items()) >= min
	}).WithParam(min)
}

// MaxItems returns a rule that fails when a sequence has more than max items.
func MaxItems(max int) form.Rule {
	return form.Check(func(v form.Value) bool {
		return len(v.Items()) <= max
	}).WithParam(max)
}

// Builtin returns a library with the parameterless predicates registered
// under their canonical rule names.
func Builtin() form.Library {
	return form.Library{
		form.RuleEmail:   Email,
		form.RuleNumeric: Numeric,
		"phone":          Phone,
		"url":            URL,
		"alpha":          Alpha,
		"alphanumeric":   Alphanumeric,
	}
}
