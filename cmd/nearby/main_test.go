package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/nearby/internal/infrastructure/config"
)

// fakeUpstreams serves both APIs from one test server.
func fakeUpstreams(t *testing.T, searchStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
		if searchStatus != http.StatusOK {
			w.WriteHeader(searchStatus)
			return
		}
		_, _ = w.Write([]byte(`{"total_count":2,"items":[
			{"id":1,"login":"alice","avatar_url":"https://a/1","html_url":"https://github.com/alice"},
			{"id":2,"login":"bob","avatar_url":"https://a/2","html_url":"https://github.com/bob"}]}`))
	})
	mux.HandleFunc("/gender/", func(w http.ResponseWriter, r *http.Request) {
		switch name := r.URL.Query().Get("name"); name {
		case "alice":
			_, _ = w.Write([]byte(`{"name":"alice","gender":"female","probability":0.98,"count":10}`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// workspace writes a config pointing at srv and makes it the working directory.
func workspace(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := config.Default()
	cfg.GitHub.BaseURL = srv.URL
	cfg.Genderize.BaseURL = srv.URL + "/gender"
	require.NoError(t, config.Write(dir, cfg))
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestSearch_Text(t *testing.T) {
	workspace(t, fakeUpstreams(t, http.StatusOK))

	out, _, err := execute(t, "search", "Berlin")
	require.NoError(t, err)

	assert.Contains(t, out, "Coders in Berlin (2)")
	assert.Contains(t, out, "female")
	assert.Contains(t, out, "https://github.com/bob")
}

func TestSearch_JSON(t *testing.T) {
	workspace(t, fakeUpstreams(t, http.StatusOK))

	out, _, err := execute(t, "search", "San", "Francisco", "--format", "json")
	require.NoError(t, err)

	var parsed struct {
		Location string      `json:"location"`
		Users    []resultRow `json:"users"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "San Francisco", parsed.Location)
	require.Len(t, parsed.Users, 2)
	assert.Equal(t, "female", parsed.Users[0].Gender)
	assert.True(t, parsed.Users[0].Enriched)
	assert.False(t, parsed.Users[1].Enriched)
}

func TestSearch_PrimaryFailure(t *testing.T) {
	workspace(t, fakeUpstreams(t, http.StatusServiceUnavailable))

	_, _, err := execute(t, "search", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSearch_BlankLocation(t *testing.T) {
	workspace(t, fakeUpstreams(t, http.StatusOK))

	out, _, err := execute(t, "search", "  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to search")
}

func TestSearch_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "search", "Berlin", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestSearch_WritesDiagnosticLog(t *testing.T) {
	dir := workspace(t, fakeUpstreams(t, http.StatusOK))

	_, _, err := execute(t, "search", "Berlin")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".nearby", "logs", "nearby.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `enrichment for "bob" failed`)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := execute(t, "init")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Created %s\n", config.ConfigFilePath(dir)), out)
	assert.True(t, config.Exists(dir))

	_, _, err = execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}
