package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewActivityValidator()
	require.NoError(t, err)
	return v
}

func TestActivityValidator_Valid(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate([]byte(`{
		"activity": "Learn Express.js",
		"type": "education",
		"participants": 1,
		"price": 0.1,
		"link": "https://expressjs.com/",
		"key": "3943506",
		"accessibility": 0.25
	}`))
	assert.Empty(t, errs)
}

func TestActivityValidator_AllowsExtraFields(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate([]byte(`{
		"activity": "Nap", "type": "relaxation", "participants": 1,
		"price": 0, "key": "1", "accessibility": 0, "duration": "minutes"
	}`))
	assert.Empty(t, errs)
}

func TestActivityValidator_Violations(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate([]byte(`{
		"activity": "Nap", "type": "sleeping", "participants": 0,
		"price": 2, "key": "1", "accessibility": 0
	}`))
	require.NotEmpty(t, errs)

	joined := ""
	for _, e := range errs {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "/type")
	assert.Contains(t, joined, "/participants")
	assert.Contains(t, joined, "/price")
}

func TestActivityValidator_MissingRequired(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate([]byte(`{"activity": "Nap"}`))
	assert.NotEmpty(t, errs)
}

func TestActivityValidator_InvalidJSON(t *testing.T) {
	v := newValidator(t)

	errs := v.Validate([]byte(`{`))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "invalid JSON")
}

func TestActivityValidator_Document(t *testing.T) {
	v := newValidator(t)

	doc := v.Document()
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "activity")
	assert.Contains(t, props, "accessibility")
	assert.NotContains(t, doc, "$id")
}
