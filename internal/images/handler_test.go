package images

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackmatch/internal/blob"
)

func newTestMux(model Model) (*http.ServeMux, *blob.MemoryStore) {
	store := blob.NewMemoryStore()
	mux := http.NewServeMux()
	NewHandler(NewService(model, store)).Register(mux)
	return mux, store
}

func TestHandlerSuccess(t *testing.T) {
	mux, store := newTestMux(&fakeModel{data: []byte("png")})

	body := `{"snackName":"Margherita Pizza","description":"gourmet margherita pizza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/images/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://snackmatch.example.com")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var resp struct {
		ImageURL string `json:"imageUrl"`
		FileName string `json:"fileName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.FileName)
	assert.Equal(t, "https://images.example.test/"+resp.FileName, resp.ImageURL)

	_, ok := store.Data(resp.FileName)
	assert.True(t, ok)
}

func TestHandlerPreflight(t *testing.T) {
	mux, _ := newTestMux(&fakeModel{data: []byte("png")})

	req := httptest.NewRequest(http.MethodOptions, "/api/images/generate", nil)
	req.Header.Set("Origin", "https://snackmatch.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	allowHeaders := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowHeaders, "content-type")
}

func TestHandlerModelFailure(t *testing.T) {
	mux, store := newTestMux(&fakeModel{err: ErrNoImage})

	body := `{"snackName":"Margherita Pizza","description":"gourmet margherita pizza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/images/generate", strings.NewReader(body))
	req.Header.Set("Origin", "https://snackmatch.example.com")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no image data")
	assert.Empty(t, store.Keys())
}

func TestHandlerMalformedBody(t *testing.T) {
	mux, _ := newTestMux(&fakeModel{data: []byte("png")})

	req := httptest.NewRequest(http.MethodPost, "/api/images/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}
