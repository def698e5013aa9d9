package cart

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"snackmatch/internal/catalog"
)

// imageLookup is satisfied by the images cache; the cart only reads
// whatever URL is available at the moment of adding.
type imageLookup interface {
	Lookup(id string) (string, bool)
}

type server struct {
	store  *Store
	images imageLookup
}

// NewHandler returns the cart endpoints. images may be nil; carts then
// carry no image URLs.
func NewHandler(store *Store, images imageLookup) *server {
	return &server{store: store, images: images}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /cart", s.handleGet)
	mux.HandleFunc("POST /cart/add", s.handleAdd)
	mux.HandleFunc("POST /cart/update", s.handleUpdate)
	mux.HandleFunc("POST /cart/remove", s.handleRemove)
	mux.HandleFunc("POST /mood", s.handleMood)
}

type cartResponse struct {
	SelectedMood string     `json:"selectedMood,omitempty"`
	Items        []LineItem `json:"items"`
	Total        int        `json:"total"`
}

func (s *server) respond(w http.ResponseWriter, r *http.Request, sessionID string) {
	snap := s.store.Snapshot(sessionID)
	items := snap.Items
	if items == nil {
		items = []LineItem{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cartResponse{
		SelectedMood: snap.SelectedMood,
		Items:        items,
		Total:        snap.Total(),
	}); err != nil {
		slog.ErrorContext(r.Context(), "failed to write cart response", "error", err)
	}
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, SessionID(w, r))
}

func (s *server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	snack, ok := catalog.ByID(req.ID)
	if !ok {
		http.Error(w, "unknown snack id", http.StatusNotFound)
		return
	}

	// the image attached is whatever has resolved so far; absent is fine
	var image string
	if s.images != nil {
		image, _ = s.images.Lookup(snack.ID)
	}

	sessionID := SessionID(w, r)
	_ = s.store.Do(sessionID, func(c *Cart) error {
		c.Add(snack, image)
		return nil
	})
	slog.InfoContext(r.Context(), "added to cart", "snack", snack.Name)
	s.respond(w, r, sessionID)
}

func (s *server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := SessionID(w, r)
	err := s.store.Do(sessionID, func(c *Cart) error {
		return c.UpdateQuantity(req.ID, req.Quantity)
	})
	if err != nil {
		if errors.Is(err, ErrNegativeQuantity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.ErrorContext(r.Context(), "failed to update cart", "error", err)
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		return
	}
	s.respond(w, r, sessionID)
}

func (s *server) handleRemove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := SessionID(w, r)
	_ = s.store.Do(sessionID, func(c *Cart) error {
		c.Remove(req.ID)
		return nil
	})
	s.respond(w, r, sessionID)
}

func (s *server) handleMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood string `json:"mood"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !catalog.IsMood(req.Mood) {
		http.Error(w, "unknown mood", http.StatusBadRequest)
		return
	}

	sessionID := SessionID(w, r)
	_ = s.store.Do(sessionID, func(c *Cart) error {
		c.SelectMood(req.Mood)
		return nil
	})
	s.respond(w, r, sessionID)
}
