package browser_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/newswatch/internal/browser"
	"github.com/jonesrussell/newswatch/internal/config"
	"github.com/jonesrussell/newswatch/internal/logger"
)

const landingHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="hero"><h1 class="headline">Top Story</h1></div>
</body>
</html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(landingHTML))
	})
	mux.HandleFunc("/images/photo.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newSession(t *testing.T) *browser.Session {
	t.Helper()

	cfg := config.ScraperConfig{
		UserAgent:      "newswatch-test",
		RequestTimeout: 5 * time.Second,
	}
	session := browser.NewSession(cfg, logger.NewNoOp())
	t.Cleanup(session.Close)
	return session
}

func TestNavigate_ReturnsQueryablePage(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newSession(t)

	page, err := session.Navigate(context.Background(), server.URL)
	require.NoError(t, err)

	hero, ok := page.First("div.hero")
	require.True(t, ok)
	assert.Equal(t, "Top Story", hero.Text("h1.headline"))

	_, ok = page.First("div.missing")
	assert.False(t, ok)
}

func TestNavigate_UnreachableServer(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	serverURL := server.URL
	server.Close()

	session := newSession(t)

	_, err := session.Navigate(context.Background(), serverURL)
	assert.Error(t, err)
}

func TestFetch_ReturnsResourceBytes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	session := newSession(t)

	data, err := session.Fetch(context.Background(), server.URL+"/images/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	session := browser.NewSession(config.ScraperConfig{}, logger.NewNoOp())
	session.Close()
	session.Close()
}
