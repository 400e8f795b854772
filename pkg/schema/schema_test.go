package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

func TestParse(t *testing.T) {
	t.Run("decodes labels and rules", func(t *testing.T) {
		def, err := schema.Parse([]byte(`
fields:
  email:
    label: Email
    rules:
      required: true
      email: true
  age:
    rules:
      numeric: true
`))
		require.NoError(t, err)

		assert.Equal(t, form.LabelTable{"email": "Email"}, def.Labels)
		require.Contains(t, def.Rules, "email")
		require.Contains(t, def.Rules, "age")

		rule, ok := def.Rules["email"].Get(form.RuleRequired)
		require.True(t, ok)
		assert.True(t, rule.Truthy())
	})

	t.Run("preserves rule declaration order", func(t *testing.T) {
		def, err := schema.Parse([]byte(`
fields:
  password:
    rules:
      minLength: 8
      alphanumeric: true
      maxLength: 64
`))
		require.NoError(t, err)
		assert.Equal(t,
			[]string{form.RuleMinLength, "alphanumeric", form.RuleMaxLength},
			def.Rules["password"].Names(),
		)
	})

	t.Run("integer values build parametrized rules", func(t *testing.T) {
		def, err := schema.Parse([]byte(`
fields:
  bio:
    label: Bio
    rules:
      maxLength: 160
`))
		require.NoError(t, err)

		msg, ok := form.Evaluate(form.String(longString(161)), def.Rules["bio"], def.Labels["bio"], nil)
		require.False(t, ok)
		assert.Equal(t, "The Bio cannot have more than 160 characters.", msg)

		_, ok = form.Evaluate(form.String("short"), def.Rules["bio"], def.Labels["bio"], nil)
		assert.True(t, ok)
	})

	t.Run("parsed definition drives a controller", func(t *testing.T) {
		def, err := schema.Parse([]byte(`
fields:
  email:
    label: Email
    rules:
      required: true
      email: true
`))
		require.NoError(t, err)

		ctrl := form.NewController(
			form.WithStaticValues(map[string]form.Value{"email": form.String("")}),
			form.WithStaticRules(def.Rules),
			form.WithStaticLabels(def.Labels),
			form.WithLibrary(rules.Builtin()),
		)
		require.False(t, ctrl.Validate())
		assert.Equal(t, "The Email is required", ctrl.Errors().Get("email"))
	})

	t.Run("field without rules gets no rule set", func(t *testing.T) {
		def, err := schema.Parse([]byte(`
fields:
  note:
    label: Note
`))
		require.NoError(t, err)
		assert.NotContains(t, def.Rules, "note")
		assert.Equal(t, "Note", def.Labels["note"])
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		cases := map[string]string{
			"not yaml":               "fields: [unbalanced",
			"scalar root":            "just a string",
			"missing fields section": "other: {}",
			"fields not a mapping":   "fields: [a, b]",
			"field not a mapping":    "fields:\n  email: yes",
			"rules not a mapping":    "fields:\n  email:\n    rules: [required]",
			"string rule value":      "fields:\n  email:\n    rules:\n      email: sometimes",
			"param on flag-only rule": `
fields:
  email:
    rules:
      email: 5
`,
			"negative bound": `
fields:
  bio:
    rules:
      maxLength: -1
`,
		}
		for name, src := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := schema.Parse([]byte(src))
				require.Error(t, err)
				assert.ErrorIs(t, err, schema.ErrInvalidSchema)
			})
		}
	})

	t.Run("empty document is rejected", func(t *testing.T) {
		_, err := schema.Parse([]byte(""))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
