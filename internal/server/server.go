package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/yhzion/comment-stripper-mcp/stripper"
)

// Server wires the stripping engine to a JSON-over-HTTP surface.
type Server struct {
	cfg     *Config
	batches *batchRegistry
}

func New(cfg *Config) *Server {
	return &Server{
		cfg:     cfg,
		batches: newBatchRegistry(),
	}
}

// Handler builds the route table. Everything under /api/v1 requires the
// API key when one is configured; the health endpoint stays open for
// load balancer probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/api/v1/strip", s.withAuth(http.HandlerFunc(s.handleStrip)))
	mux.Handle("/api/v1/strip-file", s.withAuth(http.HandlerFunc(s.handleStripFile)))
	mux.Handle("/api/v1/strip-directory", s.withAuth(http.HandlerFunc(s.handleStripDirectory)))
	mux.Handle("/api/v1/languages", s.withAuth(http.HandlerFunc(s.handleLanguages)))
	mux.Handle("/api/v1/progress/", s.withAuth(http.HandlerFunc(s.handleProgressWS)))

	return mux
}

// withAuth enforces the configured API key via X-API-Key, a bearer
// token, or an api_key query parameter (websocket clients cannot set
// headers). With no key configured the server is open.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get("X-API-Key")
		if key == "" {
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if key == "" {
			key = r.URL.Query().Get("api_key")
		}

		if key != s.cfg.APIKey {
			writeError(w, http.StatusUnauthorized, "invalid or missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type stripRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

type stripFileRequest struct {
	FilePath string `json:"filePath"`
	Code     string `json:"code"`
}

type stripResponse struct {
	StrippedCode string `json:"strippedCode"`
	Language     string `json:"language"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStrip strips comments from a code snippet. An absent language
// tag selects the default pipeline; the engine itself never fails, so
// the only error cases are transport-level.
func (s *Server) handleStrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req stripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	language := req.Language
	if language == "" {
		language = "c-style"
	}

	writeJSON(w, http.StatusOK, stripResponse{
		StrippedCode: stripper.StripComments(req.Code, req.Language),
		Language:     language,
	})
}

// handleStripFile resolves the language from the supplied file path.
func (s *Server) handleStripFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req stripFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FilePath == "" {
		writeError(w, http.StatusBadRequest, "filePath is required")
		return
	}

	language := strings.TrimPrefix(strings.ToLower(filepath.Ext(req.FilePath)), ".")
	if language == "" {
		language = "c-style"
	}

	writeJSON(w, http.StatusOK, stripResponse{
		StrippedCode: stripper.StripCommentsByFileType(req.FilePath, req.Code),
		Language:     language,
	})
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, languagesResponse{Languages: stripper.SupportedLanguages()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
