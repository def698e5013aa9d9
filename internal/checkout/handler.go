package checkout

import (
	"log/slog"
	"net/http"

	"snackmatch/internal/cart"
)

type server struct {
	store *cart.Store
}

func NewHandler(store *cart.Store) *server {
	return &server{store: store}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /checkout", s.handleCheckout)
}

// handleCheckout redirects to the retailer search page. Fire and forget:
// no response from the retailer is consumed and the cart is not cleared.
func (s *server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot(cart.SessionID(w, r))
	if len(snap.Items) == 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	target := URL(snap.Items)
	slog.InfoContext(r.Context(), "checkout hand-off", "items", len(snap.Items), "url", target)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
