package couriers

import (
	"context"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(server *httptest.Server) *courierClient {
	return &courierClient{
		Requester: &requester.Requester{
			BaseUrl: server.URL,
			Client:  server.Client(),
			Limiter: rate.NewLimiter(rate.Inf, 1),
			Log:     zap.NewNop(),
		},
		Log: zap.NewNop(),
	}
}

func TestCourierClient_List(t *testing.T) {
	t.Run("Not Found Is Empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/courrier/uploaded/all", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		couriers, err := newTestClient(server).List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, couriers)
	})

	t.Run("Decodes Files", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":4,"matricule":"M-1","nom_adherent":"Ali","files":[{"id":10,"type":"bulletin","path":"bulletins/a.png"}]}]`))
		}))
		defer server.Close()

		couriers, err := newTestClient(server).List(context.Background())

		require.NoError(t, err)
		require.Len(t, couriers, 1)
		assert.Equal(t, "bulletin", couriers[0].Files[0].Type)
	})
}

func TestCourierClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courrier/upload", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "M-77", r.FormValue("matricule"))
		assert.Equal(t, "Sami", r.FormValue("nom_adherent"))
		assert.Equal(t, []string{"ordonnance"}, r.MultipartForm.Value["types"])
		assert.Len(t, r.MultipartForm.File["files"], 1)
		w.Write([]byte(`{"id":31,"matricule":"M-77","nom_adherent":"Sami","files":[]}`))
	}))
	defer server.Close()

	courier, err := newTestClient(server).Create(context.Background(), &requests.CourierCreate{
		Matricule:   "M-77",
		NomAdherent: "Sami",
		Files:       []requests.UploadPart{{FileName: "o.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}},
		Types:       []string{"ordonnance"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), courier.ID)
}

func TestCourierClient_AppendFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courriers/31/upload/", r.URL.Path)
		w.Write([]byte(`{"id":31}`))
	}))
	defer server.Close()

	courier, err := newTestClient(server).AppendFiles(context.Background(), 31,
		[]requests.UploadPart{{FileName: "b.png", Content: []byte{1}}}, []string{"bulletin"})

	require.NoError(t, err)
	assert.Equal(t, int64(31), courier.ID)
}
