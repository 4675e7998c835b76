package googlefonts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(t *testing.T, files map[string][]githubFile) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(list))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNormalizeFamily(t *testing.T) {
	assert.Equal(t, []string{"inter"}, NormalizeFamily(" Inter "))
	assert.Equal(t, []string{"opensans", "open-sans"}, NormalizeFamily("Open Sans"))
	assert.Nil(t, NormalizeFamily(""))
}

func TestDownloadURL_PrefersUpright(t *testing.T) {
	raw := "https://raw.example/fonts/"
	srv := listing(t, map[string][]githubFile{
		"/ofl/inter": {
			{Name: "OFL.txt", Type: "file", DownloadURL: raw + "OFL.txt"},
			{Name: "Inter-Italic.ttf", Type: "file", DownloadURL: raw + "Inter-Italic.ttf"},
			{Name: "Evil.ttf", Type: "file", DownloadURL: "https://elsewhere/Evil.ttf"},
			{Name: "Inter.ttf", Type: "file", DownloadURL: raw + "Inter.ttf"},
		},
	})
	c := Client{HTTP: srv.Client(), APIBase: srv.URL + "/ofl", RawPrefix: raw}

	u, err := c.DownloadURL(context.Background(), "inter")
	require.NoError(t, err)
	assert.Equal(t, raw+"Inter.ttf", u)

	_, err = c.DownloadURL(context.Background(), "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestDownloadURLByFamily_TriesHyphenated(t *testing.T) {
	raw := "https://raw.example/fonts/"
	srv := listing(t, map[string][]githubFile{
		"/ofl/open-sans": {{Name: "OpenSans-Italic.ttf", Type: "file", DownloadURL: raw + "OpenSans-Italic.ttf"}},
	})
	c := Client{HTTP: srv.Client(), APIBase: srv.URL + "/ofl", RawPrefix: raw}

	u, err := c.DownloadURLByFamily(context.Background(), "Open Sans")
	require.NoError(t, err)
	assert.Equal(t, raw+"OpenSans-Italic.ttf", u)

	_, err = c.DownloadURLByFamily(context.Background(), "  ")
	assert.Error(t, err)
}
