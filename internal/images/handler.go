package images

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
)

// Handler exposes generation at POST /api/images/generate. The endpoint
// is called cross-origin, so every response carries permissive CORS
// headers and OPTIONS preflights answer 200 with an empty body.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(mux *http.ServeMux) {
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		OptionsSuccessStatus: http.StatusOK,
	})
	mux.Handle("/api/images/generate", c.Handler(http.HandlerFunc(h.generate)))
}

type generateRequest struct {
	SnackName   string `json:"snackName"`
	Description string `json:"description"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	FileName string `json:"fileName"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, err)
		return
	}

	generated, err := h.svc.Generate(ctx, req.SnackName, req.Description)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, generateResponse{
		ImageURL: generated.URL,
		FileName: generated.FileName,
	})
}

// fail reports every error the same way: 500 with a descriptive body,
// never a partial result.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	slog.ErrorContext(ctx, "image generation failed", "error", err)
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}
