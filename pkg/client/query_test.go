package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "http://bored.test/api/activity/"

func paramsWith(mutate func(p []ParameterSpec)) []ParameterSpec {
	p := DefaultParameters()
	mutate(p)
	return p
}

func TestBuild_Random(t *testing.T) {
	u, err := Build(testBase, ModeRandom, "ignored", DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, testBase, u)
}

func TestBuild_ByKey(t *testing.T) {
	u, err := Build(testBase, ModeByKey, "5881028", nil)
	require.NoError(t, err)
	assert.Equal(t, testBase+"?key=5881028", u)
}

func TestBuild_ByKey_Empty(t *testing.T) {
	_, err := Build(testBase, ModeByKey, "", nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "No key provided", vErr.Error())
}

func TestBuild_ByKey_Escaped(t *testing.T) {
	u, err := Build(testBase, ModeByKey, "a&b=c", nil)
	require.NoError(t, err)
	assert.Equal(t, testBase+"?key=a%26b%3Dc", u)
}

func TestBuild_Params_ExactWinsOverRange(t *testing.T) {
	params := paramsWith(func(p []ParameterSpec) {
		p[1].Exact = "2"
		p[1].Min = "1"
		p[1].Max = "4"
	})

	u, err := Build(testBase, ModeByParameters, "", params)
	require.NoError(t, err)
	assert.Contains(t, u, "participants=2")
	assert.NotContains(t, u, "minparticipants=")
	assert.NotContains(t, u, "maxparticipants=")
}

func TestBuild_Params_MinOnly(t *testing.T) {
	params := paramsWith(func(p []ParameterSpec) {
		p[2].Min = "0.1"
	})

	u, err := Build(testBase, ModeByParameters, "", params)
	require.NoError(t, err)
	assert.Equal(t, testBase+"?minprice=0.1", u)
	assert.NotContains(t, u, "?price=")
	assert.NotContains(t, u, "maxprice=")
}

func TestBuild_Params_OrderAndSeparators(t *testing.T) {
	params := paramsWith(func(p []ParameterSpec) {
		p[0].Exact = "education"
		p[2].Max = "0.5"
		p[3].Min = "0.1"
		p[3].Max = "0.9"
	})

	u, err := Build(testBase, ModeByParameters, "", params)
	require.NoError(t, err)
	assert.Equal(t, testBase+"?type=education&maxprice=0.5&minaccessibility=0.1&maxaccessibility=0.9", u)
}

func TestBuild_Params_RangeIgnoredWithoutAllowRange(t *testing.T) {
	params := paramsWith(func(p []ParameterSpec) {
		p[0].Min = "x"
		p[0].Max = "y"
	})

	u, err := Build(testBase, ModeByParameters, "", params)
	require.NoError(t, err)
	assert.Equal(t, testBase, u)
}

func TestBuild_Params_Empty(t *testing.T) {
	u, err := Build(testBase, ModeByParameters, "", DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, testBase, u)
}

func TestBuild_Params_EscapesValues(t *testing.T) {
	params := paramsWith(func(p []ParameterSpec) {
		p[0].Exact = "diy&price=1"
	})

	u, err := Build(testBase, ModeByParameters, "", params)
	require.NoError(t, err)
	assert.Equal(t, testBase+"?type=diy%26price%3D1", u)
}

func TestBuild_UnknownMode(t *testing.T) {
	_, err := Build(testBase, Mode(42), "", nil)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Random")
	require.NoError(t, err)
	assert.Equal(t, ModeRandom, m)

	m, err = ParseMode("params")
	require.NoError(t, err)
	assert.Equal(t, ModeByParameters, m)
	assert.Equal(t, "params", m.String())

	_, err = ParseMode("bogus")
	assert.Error(t, err)
}

func TestParameterSpec_IsEmpty(t *testing.T) {
	assert.True(t, ParameterSpec{Name: "type"}.IsEmpty())
	assert.True(t, ParameterSpec{Name: "type", Min: "1"}.IsEmpty())
	assert.False(t, ParameterSpec{Name: "price", AllowRange: true, Min: "1"}.IsEmpty())
	assert.False(t, ParameterSpec{Name: "type", Exact: "diy"}.IsEmpty())
}
