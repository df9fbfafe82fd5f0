package volume

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTrackerServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reps/rep-42/volume":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"rep_id": "rep-42", "volume": 32500.50}`))
		case "/reps/rep-broken/volume":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCurrentVolume(t *testing.T) {
	server := newTrackerServer(t)
	defer server.Close()

	client := NewClient(server.URL, zaptest.NewLogger(t))
	defer client.Close()

	v, err := client.CurrentVolume(context.Background(), "rep-42")
	require.NoError(t, err)
	assert.Equal(t, 32500.50, v)
}

func TestCurrentVolumeUnknownRepIsZero(t *testing.T) {
	server := newTrackerServer(t)
	defer server.Close()

	client := NewClient(server.URL, zaptest.NewLogger(t))
	defer client.Close()

	v, err := client.CurrentVolume(context.Background(), "rep-new")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestCurrentVolumeTrackerError(t *testing.T) {
	server := newTrackerServer(t)
	defer server.Close()

	client := NewClient(server.URL, zaptest.NewLogger(t))
	defer client.Close()

	_, err := client.CurrentVolume(context.Background(), "rep-broken")
	assert.Error(t, err)
}
