package records

import (
	"context"
	"io"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(server *httptest.Server, paths Paths) *recordClient {
	return &recordClient{
		Requester: &requester.Requester{
			BaseUrl: server.URL,
			Client:  server.Client(),
			Limiter: rate.NewLimiter(rate.Inf, 1),
			Log:     zap.NewNop(),
		},
		Paths: paths,
		Log:   zap.NewNop(),
	}
}

func TestRecordClient_Save(t *testing.T) {
	t.Run("Create Posts To Collection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/bulletin/", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"nom":"Trabelsi"}`, string(body))
			w.Write([]byte(`{"id":17}`))
		}))
		defer server.Close()

		id, err := newTestClient(server, BulletinPaths).Create(context.Background(), map[string]string{"nom": "Trabelsi"})

		require.NoError(t, err)
		assert.Equal(t, int64(17), id)
	})

	t.Run("Create Without An ID Is A Decode Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		id, err := newTestClient(server, BulletinPaths).Create(context.Background(), map[string]string{"nom": "Trabelsi"})

		assert.Zero(t, id)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "bulletin")
	})

	t.Run("Update Puts By ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/ordonnance/5", r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		id, err := newTestClient(server, OrdonnancePaths).Update(context.Background(), 5, map[string]string{})

		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})
}

func TestRecordClient_ListUploaded(t *testing.T) {
	t.Run("Not Found Is Empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bulletin/uploaded/all", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		documents, err := newTestClient(server, BulletinPaths).ListUploaded(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, documents)
		assert.Empty(t, documents)
	})

	t.Run("Server Error Propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestClient(server, BulletinPaths).ListUploaded(context.Background())

		assert.Error(t, err)
	})

	t.Run("Decodes Listing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"filename":"a.pdf","original_name":"A.pdf"},{"id":2,"filename":"b.png","original_name":"B.png"}]`))
		}))
		defer server.Close()

		documents, err := newTestClient(server, OrdonnancePaths).ListUploaded(context.Background())

		require.NoError(t, err)
		require.Len(t, documents, 2)
		assert.Equal(t, "B.png", documents[1].OriginalName)
	})
}

func TestRecordClient_LatestUploaded(t *testing.T) {
	t.Run("Failure Reads As Nothing Uploaded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		latest, err := newTestClient(server, BulletinPaths).LatestUploaded(context.Background())

		require.NoError(t, err)
		assert.False(t, latest.Exists)
	})

	t.Run("Record Without Exists Flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":9,"filename":"x.pdf","original_name":"X.pdf","uploaded_at":"2026-01-02T10:00:00"}`))
		}))
		defer server.Close()

		latest, err := newTestClient(server, BulletinPaths).LatestUploaded(context.Background())

		require.NoError(t, err)
		assert.True(t, latest.Exists)
		assert.Equal(t, int64(9), latest.ID)
	})

	t.Run("Backend Says Nothing Uploaded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"exists":false,"message":"No bulletins uploaded"}`))
		}))
		defer server.Close()

		latest, err := newTestClient(server, BulletinPaths).LatestUploaded(context.Background())

		require.NoError(t, err)
		assert.False(t, latest.Exists)
		assert.Equal(t, "No bulletins uploaded", latest.Message)
	})
}

func TestRecordClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/ordonnance/12", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newTestClient(server, OrdonnancePaths).Delete(context.Background(), 12)

	assert.NoError(t, err)
}
