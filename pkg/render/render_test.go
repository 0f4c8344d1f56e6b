package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/boredq/pkg/client"
)

func sampleResult() *client.Result {
	return &client.Result{
		URL: "http://bored.test/api/activity/?key=1",
		Pairs: []client.Pair{
			{Key: "activity", Value: "Learn a new language"},
			{Key: "type", Value: "education"},
			{Key: "error", Value: "null"},
		},
	}
}

func TestPanel_ShowClearsPrevious(t *testing.T) {
	p := NewPanel()
	p.Show(sampleResult(), nil)
	require.Len(t, p.Rows(), 3)

	p.Show(nil, errors.New("API request failed: 500"))
	rows := p.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, RowError, rows[0].Kind)
	assert.Equal(t, "API request failed: 500", rows[0].Value)
	assert.Empty(t, p.URL())
	assert.True(t, p.HasError())

	p.Show(sampleResult(), nil)
	assert.Len(t, p.Rows(), 3)
	assert.False(t, p.HasError())
}

func TestPanel_AddErrorAppends(t *testing.T) {
	p := NewPanel()
	p.Show(sampleResult(), nil)
	p.AddError("schema mismatch")

	rows := p.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, RowError, rows[3].Kind)
}

func TestTextRenderer_AlignsRows(t *testing.T) {
	p := NewPanel()
	p.Show(sampleResult(), nil)

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().WithColor(false).Render(&buf, p))
	assert.Equal(t,
		"activity: Learn a new language\n"+
			"type:     education\n"+
			"error:    null\n",
		buf.String())
}

func TestTextRenderer_ShowURL(t *testing.T) {
	p := NewPanel()
	p.Show(sampleResult(), nil)

	var buf bytes.Buffer
	r := NewTextRenderer().WithColor(false)
	r.ShowURL = true
	require.NoError(t, r.Render(&buf, p))
	assert.Contains(t, buf.String(), "# http://bored.test/api/activity/?key=1\n")
}

func TestTextRenderer_ErrorRow(t *testing.T) {
	p := NewPanel()
	p.Show(nil, errors.New("No key provided"))

	var plain bytes.Buffer
	require.NoError(t, NewTextRenderer().WithColor(false).Render(&plain, p))
	assert.Equal(t, "ERROR: No key provided\n", plain.String())

	var colored bytes.Buffer
	require.NoError(t, NewTextRenderer().WithColor(true).Render(&colored, p))
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "ERROR: No key provided")
}

func TestJSONRenderer(t *testing.T) {
	p := NewPanel()
	p.Show(sampleResult(), nil)

	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, p))
	assert.JSONEq(t, `{
		"url": "http://bored.test/api/activity/?key=1",
		"pairs": [
			{"key": "activity", "value": "Learn a new language"},
			{"key": "type", "value": "education"},
			{"key": "error", "value": "null"}
		]
	}`, buf.String())

	p.Show(nil, errors.New("API request returned error: Not enough parameters"))
	buf.Reset()
	require.NoError(t, (&JSONRenderer{Indent: true}).Render(&buf, p))
	assert.JSONEq(t, `{"error": "API request returned error: Not enough parameters"}`, buf.String())
}
