package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackmatch/internal/blob"
	"snackmatch/internal/cart"
	"snackmatch/internal/images"
)

// silentModel never produces an image, so pages render placeholders.
type silentModel struct{}

func (silentModel) GenerateImage(context.Context, string) ([]byte, error) {
	return nil, images.ErrNoImage
}

func newPageMux() *http.ServeMux {
	store := blob.NewMemoryStore()
	generator := images.NewService(silentModel{}, store)
	return buildMux(store, generator, images.NewCache(generator), cart.NewStore())
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHomeShowsFirstPickForMood(t *testing.T) {
	mux := newPageMux()

	rec := get(t, mux, "/?mood=hungry")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Gourmet Mini Sliders")
	assert.NotContains(t, body, "Wood-Fired Pizza Bites")
	assert.Contains(t, body, "Suggestion 1 of 3")
	assert.Contains(t, body, "/?mood=hungry&amp;pick=1")
}

func TestHomeRotatesThroughPicks(t *testing.T) {
	mux := newPageMux()

	rec := get(t, mux, "/?mood=hungry&pick=1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Wood-Fired Pizza Bites")
	assert.NotContains(t, body, "Gourmet Mini Sliders")
	assert.Contains(t, body, "Suggestion 2 of 3")
	assert.Contains(t, body, "/?mood=hungry&amp;pick=2")

	// the last pick links back around to the first
	rec = get(t, mux, "/?mood=hungry&pick=2")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Truffle Parmesan Fries")
	assert.Contains(t, body, "/?mood=hungry&amp;pick=0")
}

func TestHomePickIndexNormalized(t *testing.T) {
	mux := newPageMux()

	// out of range wraps modulo the pick count
	rec := get(t, mux, "/?mood=hungry&pick=7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wood-Fired Pizza Bites")

	// garbage lands on the first pick
	for _, raw := range []string{"nope", "-3", ""} {
		rec = get(t, mux, "/?mood=hungry&pick="+raw)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Gourmet Mini Sliders", "pick=%q", raw)
	}
}

func TestHomeWithoutMoodHasNoPicks(t *testing.T) {
	mux := newPageMux()

	rec := get(t, mux, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "Curated for Your Mood")
	assert.Contains(t, body, "Trending Today")
}

func TestFaviconAnsweredQuietly(t *testing.T) {
	mux := newPageMux()

	rec := get(t, mux, "/favicon.ico")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
