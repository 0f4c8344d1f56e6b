package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	srv     *httptest.Server
	hits    atomic.Int32
	queries []string
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		api.queries = append(api.queries, r.URL.RawQuery)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(api.srv.Close)
	return api
}

func runCLI(t *testing.T, api *fakeAPI, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RESULT_CACHE_MAX_ITEMS", "8")
	base := []string{
		"--env-file", filepath.Join(t.TempDir(), "none.env"),
		"--base-url", api.srv.URL + "/api/activity/",
		"--log-level", "error",
	}
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_Random(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Learn a new language","type":"education","error":null}`)

	out, err := runCLI(t, api, "", "random")
	require.NoError(t, err)
	assert.Equal(t, "activity: Learn a new language\ntype:     education\nerror:    null\n", out)
	assert.Equal(t, []string{""}, api.queries)
}

func TestCLI_RandomCount(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Nap"}`)

	out, err := runCLI(t, api, "", "random", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "activity: Nap\n\nactivity: Nap\n", out)
	assert.Equal(t, int32(2), api.hits.Load())
}

func TestCLI_KeyMissing(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{}`)

	out, err := runCLI(t, api, "", "key")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "ERROR: No key provided\n", out)
	assert.Zero(t, api.hits.Load())
}

func TestCLI_KeyJSON(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Bake","key":"42"}`)

	out, err := runCLI(t, api, "", "--json", "key", "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"url": "`+api.srv.URL+`/api/activity/?key=42",
		"pairs": [{"key":"activity","value":"Bake"},{"key":"key","value":"42"}]
	}`, out)
}

func TestCLI_ParamsExactWins(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Volunteer"}`)

	_, err := runCLI(t, api, "", "params",
		"--type", "charity",
		"--participants", "1", "--min-participants", "2",
		"--min-price", "0", "--max-price", "0.2",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"type=charity&participants=1&minprice=0&maxprice=0.2"}, api.queries)
}

func TestCLI_ParamsAPIError(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"error":"Not enough parameters"}`)

	out, err := runCLI(t, api, "", "params")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "ERROR: API request returned error: Not enough parameters\n", out)
}

func TestCLI_StatusError(t *testing.T) {
	api := newFakeAPI(t, http.StatusInternalServerError, `oops`)

	out, err := runCLI(t, api, "", "random")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "ERROR: API request failed: 500\n", out)
}

func TestCLI_JQ(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Read","price":0.1}`)

	out, err := runCLI(t, api, "", "--jq", ".price", "random")
	require.NoError(t, err)
	assert.Equal(t, "0.1\n", out)
}

func TestCLI_JQInvalid(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := runCLI(t, api, "", "--jq", ".[", "random")
	assert.ErrorContains(t, err, "invalid jq expression")
	assert.Zero(t, api.hits.Load())
}

func TestCLI_Strict(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Read"}`)

	out, err := runCLI(t, api, "", "--strict", "random")
	assert.ErrorIs(t, err, ErrReported)
	assert.True(t, strings.HasPrefix(out, "activity: Read\n"))
	assert.Contains(t, out, "ERROR: schema: ")
}

func TestCLI_Interactive(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"activity":"Garden"}`)

	out, err := runCLI(t, api, "1\n2\n\nq\n", "interactive")
	require.NoError(t, err)
	assert.Equal(t, "activity: Garden\nERROR: No key provided\n", out)
	assert.Equal(t, int32(1), api.hits.Load())
}
