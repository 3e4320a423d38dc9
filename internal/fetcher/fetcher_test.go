package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	return New(Config{UserAgent: "test-agent", Timeout: 5 * time.Second}, zap.NewNop())
}

func TestFetchReturnsBody(t *testing.T) {
	t.Parallel()

	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>hello</p></body></html>"))
	}))
	defer server.Close()

	f := newTestFetcher(t)
	page, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, string(page.Body), "hello")
	assert.Equal(t, "test-agent", gotAgent)
}

func TestFetchSameURLTwice(t *testing.T) {
	t.Parallel()

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("<html><body>again</body></html>"))
	}))
	defer server.Close()

	// One Fetcher lives for the whole process; a rerun fetches the same
	// fixed URL and must not trip the collector's visited-URL store.
	f := newTestFetcher(t)
	for i := 0; i < 2; i++ {
		page, err := f.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, string(page.Body), "again")
	}
	assert.Equal(t, 2, hits)
}

func TestFetchNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, server.URL, statusErr.URL)
}

func TestFetchTransportFailure(t *testing.T) {
	t.Parallel()

	// Grab a port that nothing is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := server.URL
	server.Close()

	f := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), deadURL)
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failures must not map to StatusError")
}

func TestFetchCanceledContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newTestFetcher(t)
	_, err := f.Fetch(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
