package storage_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/httpclients/storage"
	"github.com/stretchr/testify/require"
)

func TestClient_IssueUploadURL_ForwardsBearerToken(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"upload_url":"https://storage.local/upload/abc","storage_ref":"abc"}`))
	}))
	t.Cleanup(server.Close)

	client := storage.NewClient(server.URL)

	ctx := entity.SetTokenToContext(context.Background(), "token-123")

	target, err := client.IssueUploadURL(ctx, "смета.pdf", "application/pdf")
	r.NoError(err)
	r.Equal("abc", target.StorageRef)
	r.Equal("Bearer token-123", gotAuth)
}

func TestClient_IssueUploadURL_NoTokenNoHeader(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"upload_url":"u","storage_ref":"s"}`))
	}))
	t.Cleanup(server.Close)

	client := storage.NewClient(server.URL)

	_, err := client.IssueUploadURL(context.Background(), "смета.pdf", "application/pdf")
	r.NoError(err)
	r.Empty(gotAuth)
}

func TestClient_DeleteObject_ToleratesMissingObject(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := storage.NewClient(server.URL)

	require.NoError(t, client.DeleteObject(context.Background(), "ref-9"))
}
