package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"productPhotoAi/internal/api"
	"productPhotoAi/internal/server"
	"productPhotoAi/internal/storage"
)

func TestRoutes(t *testing.T) {
	srv := server.New(":0", api.Handler{Store: storage.NewInMemoryStore(time.Minute)})
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp2, err := http.Get(ts.URL + "/api/styles")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3, err := http.Get(ts.URL + "/api/detect")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp3.StatusCode)
}
