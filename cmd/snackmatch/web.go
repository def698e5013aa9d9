package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"snackmatch/internal/blob"
	"snackmatch/internal/cart"
	"snackmatch/internal/catalog"
	"snackmatch/internal/checkout"
	"snackmatch/internal/config"
	"snackmatch/internal/images"
	"snackmatch/internal/templates"
)

func runServer(cfg *config.Config, addr string) error {
	store, err := blob.MakeStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create image store: %w", err)
	}

	model, err := images.NewModel(cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to create image model: %w", err)
	}

	generator := images.NewService(model, store)
	imageCache := images.NewCache(generator)
	carts := cart.NewStore()

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(buildMux(store, generator, imageCache, carts)),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Serving SnackMatch", "address", addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return gracefulShutdown(server, imageCache.Wait)
	}
}

func buildMux(store blob.Store, generator *images.Service, imageCache *images.Cache, carts *cart.Store) *http.ServeMux {
	mux := http.NewServeMux()

	images.NewHandler(generator).Register(mux)
	cart.NewHandler(carts, imageCache).Register(mux)
	checkout.NewHandler(carts).Register(mux)

	if fs, ok := store.(*blob.FileStore); ok {
		mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(fs.Dir))))
	}

	// browsers request it unprompted; answer quietly instead of a 404
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		home(w, r, carts, imageCache)
	})

	var probes []Readyable
	if probe, ok := store.(Readyable); ok {
		probes = append(probes, probe)
	}
	mux.Handle("/ready", newReadiness(probes...))
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

type snackView struct {
	catalog.Snack
	Image   string
	Loading bool
}

// home renders the page shell: mood grid, one suggestion for the
// selected mood with a link that rotates to the next, trending list and
// the session cart. Missing thumbnails kick off background generations
// so they fill in on a later refresh.
func home(w http.ResponseWriter, r *http.Request, carts *cart.Store, imageCache *images.Cache) {
	ctx := r.Context()
	sessionID := cart.SessionID(w, r)

	if mood := r.URL.Query().Get("mood"); mood != "" && catalog.IsMood(mood) {
		_ = carts.Do(sessionID, func(c *cart.Cart) error {
			c.SelectMood(mood)
			return nil
		})
	}

	snap := carts.Snapshot(sessionID)

	view := func(s catalog.Snack) snackView {
		url, ok := imageCache.Lookup(s.ID)
		if !ok {
			imageCache.Warm(s.ID, s.Name, s.ImagePrompt)
		}
		return snackView{Snack: s, Image: url, Loading: imageCache.Loading(s.ID)}
	}

	trending := make([]snackView, 0, len(catalog.Trending()))
	for _, s := range catalog.Trending() {
		trending = append(trending, view(s))
	}

	data := struct {
		Moods        []catalog.Mood
		SelectedMood string
		HasPick      bool
		Pick         snackView
		PickNumber   int
		PickCount    int
		NextPick     int
		Trending     []snackView
		Cart         cart.Cart
		Total        int
	}{
		Moods:        catalog.Moods(),
		SelectedMood: snap.SelectedMood,
		Trending:     trending,
		Cart:         snap,
		Total:        snap.Total(),
	}

	// one suggestion at a time; the next link steps through the mood's
	// picks modulo their count, and mood links restart at the first
	if picks := catalog.ForMood(snap.SelectedMood); len(picks) > 0 {
		idx := pickIndex(r.URL.Query().Get("pick"), len(picks))
		data.HasPick = true
		data.Pick = view(picks[idx])
		data.PickNumber = idx + 1
		data.PickCount = len(picks)
		data.NextPick = (idx + 1) % len(picks)
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	if err := templates.Home.Execute(w, data); err != nil {
		slog.ErrorContext(ctx, "home template execute error", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// pickIndex normalizes the ?pick query value to a valid suggestion
// index; anything unparseable or negative lands on the first pick.
func pickIndex(raw string, n int) int {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0
	}
	return i % n
}

func gracefulShutdown(svr *http.Server, imagesWait func()) error {
	// kubernetes grants 30 seconds; leave headroom
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		if closeErr := svr.Close(); closeErr != nil {
			slog.Error("Server close error", "error", closeErr)
		}
		return err
	}

	done := make(chan struct{})
	go func() {
		imagesWait()
		close(done)
	}()

	slog.Info("Waiting for image generation goroutines to complete")
	select {
	case <-done:
		slog.Info("All image generation goroutines completed")
	case <-ctx.Done():
		slog.Warn("Timeout waiting for image generation goroutines")
		return ctx.Err()
	}
	return nil
}
