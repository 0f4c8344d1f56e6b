package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/boredq/pkg/client"
)

func TestForm_Labels(t *testing.T) {
	f := NewDefault()

	var texts []string
	for _, l := range f.Labels() {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{
		"Type (exact):",
		"Participants (exact):",
		"Participants (range):",
		"Price (exact):",
		"Price (range):",
		"Accessibility (exact):",
		"Accessibility (range):",
	}, texts)
}

func TestForm_SetAndSpecs(t *testing.T) {
	f := NewDefault()

	require.True(t, f.Set("type", FieldExact, "diy"))
	require.True(t, f.Set("price", FieldMin, "0"))
	require.True(t, f.Set("price", FieldMax, "0.3"))
	assert.False(t, f.Set("type", FieldMin, "1"))
	assert.False(t, f.Set("colour", FieldExact, "red"))

	specs := f.Specs()
	assert.Equal(t, "diy", specs[0].Exact)
	assert.Equal(t, "0", specs[2].Min)
	assert.Equal(t, "0.3", specs[2].Max)

	// Snapshot is independent of later edits.
	f.Set("type", FieldExact, "music")
	assert.Equal(t, "diy", specs[0].Exact)
}

func TestForm_Clear(t *testing.T) {
	f := NewDefault()
	f.Key = "5881028"
	f.Set("participants", FieldExact, "2")
	f.Set("accessibility", FieldMax, "0.5")

	f.Clear()

	assert.Empty(t, f.Key)
	for _, p := range f.Specs() {
		assert.True(t, p.IsEmpty(), p.Name)
	}
	assert.Equal(t, []string{"type", "participants", "price", "accessibility"}, f.Names())
}

func TestForm_BuildsQueryFromSpecs(t *testing.T) {
	f := NewDefault()
	f.Set("participants", FieldExact, "1")
	f.Set("participants", FieldMin, "3")

	u, err := client.Build("http://x/", client.ModeByParameters, "", f.Specs())
	require.NoError(t, err)
	assert.Equal(t, "http://x/?participants=1", u)
}
