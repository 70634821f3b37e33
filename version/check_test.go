package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsforge/tsforge/internal/httpclient"
)

func newRegistryServer(t *testing.T, latest string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tsforge", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"dist-tags":{"latest":"` + latest + `"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestChecker(baseURL string) *Checker {
	return NewCheckerWithClient(baseURL, httpclient.WrapClient(http.DefaultClient))
}

func TestCheckerLatestVersion(t *testing.T) {
	srv := newRegistryServer(t, "1.4.2")

	latest, err := newTestChecker(srv.URL).LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", latest)
}

func TestCheckerCheck(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	tests := []struct {
		name            string
		current         string
		latest          string
		updateAvailable bool
	}{
		{"behind latest", "1.2.0", "1.4.2", true},
		{"up to date", "1.4.2", "1.4.2", false},
		{"ahead of latest", "2.0.0", "1.4.2", false},
		{"dev build", "dev", "1.4.2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRegistryServer(t, tt.latest)
			Version = tt.current

			result, err := newTestChecker(srv.URL).Check()
			require.NoError(t, err)

			assert.Equal(t, tt.current, result.Current)
			assert.Equal(t, tt.latest, result.Latest)
			assert.Equal(t, tt.updateAvailable, result.UpdateAvailable)
		})
	}
}

func TestCheckerRegistryError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestChecker(srv.URL).Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
