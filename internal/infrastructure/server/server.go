package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/infrastructure/config"
	"github.com/mssola/mihi/internal/repository"
	"github.com/mssola/mihi/internal/usecase"
	"github.com/mssola/mihi/pkg/filterexpr"
)

// Server represents the application server
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logrus.Logger, words usecase.WordUsecase, inflections usecase.InflectionUsecase) *Server {
	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddr(),
			Handler: NewHandler(logger, words, inflections),
		},
		logger: logger,
	}
}

// NewHandler returns the HTTP API with CORS and request logging.
func NewHandler(logger logrus.FieldLogger, words usecase.WordUsecase, inflections usecase.InflectionUsecase) http.Handler {
	api := &api{words: words, inflections: inflections, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/v1/words", api.listWords)
	mux.HandleFunc("GET /api/v1/words/{enunciated}", api.getWord)
	mux.HandleFunc("GET /api/v1/words/{enunciated}/inflection", api.inflection)
	mux.HandleFunc("POST /api/v1/words/{enunciated}/check", api.check)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return RequestLogger(logger, c.Handler(mux))
}

// Start serves HTTP until the server is shut down.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	s.logger.Info("Server shutdown complete")
	return nil
}

type api struct {
	words       usecase.WordUsecase
	inflections usecase.InflectionUsecase
	logger      logrus.FieldLogger
}

type listWordsResponse struct {
	Words []*entity.Word `json:"words"`
	Total int64          `json:"total"`
}

type checkResponse struct {
	Correct    bool               `json:"correct"`
	Mismatches []usecase.Mismatch `json:"mismatches"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *api) listWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &repository.ListWordQuery{
		Kind:    entity.Kind(q.Get("kind")),
		Keyword: q.Get("keyword"),
		Tags:    q["tag"],
		OrderBy: q.Get("order_by"),
	}
	if raw := q.Get("category"); raw != "" {
		category, err := entity.ParseCategory(raw)
		if err != nil {
			a.fail(w, err)
			return
		}
		query.Category = category
	}
	var err error
	if query.PageNo, err = int32Param(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, "page: "+err.Error())
		return
	}
	if query.PageSize, err = int32Param(q.Get("page_size")); err != nil {
		writeError(w, http.StatusBadRequest, "page_size: "+err.Error())
		return
	}

	words, total, err := a.words.List(r.Context(), query, q.Get("filter"))
	if err != nil {
		a.fail(w, err)
		return
	}
	if words == nil {
		words = []*entity.Word{}
	}
	writeJSON(w, http.StatusOK, listWordsResponse{Words: words, Total: total})
}

func (a *api) getWord(w http.ResponseWriter, r *http.Request) {
	word, err := a.words.Find(r.Context(), r.PathValue("enunciated"))
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}

func (a *api) inflection(w http.ResponseWriter, r *http.Request) {
	inf, err := a.inflections.Show(r.Context(), r.PathValue("enunciated"))
	if err != nil {
		a.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inf)
}

func (a *api) check(w http.ResponseWriter, r *http.Request) {
	var answers []usecase.Answer
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeError(w, http.StatusBadRequest, "body must be a JSON list of answers: "+err.Error())
		return
	}
	mismatches, err := a.inflections.Check(r.Context(), r.PathValue("enunciated"), answers)
	if err != nil {
		a.fail(w, err)
		return
	}
	if mismatches == nil {
		mismatches = []usecase.Mismatch{}
	}
	writeJSON(w, http.StatusOK, checkResponse{Correct: len(mismatches) == 0, Mismatches: mismatches})
}

func (a *api) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.logger.WithError(err).Error("request failed")
	}
	writeError(w, status, err.Error())
}

// statusFor maps domain errors into HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrWordNotFound), errors.Is(err, entity.ErrTagNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicateWord), errors.Is(err, entity.ErrDuplicateTag):
		return http.StatusConflict
	case errors.Is(err, entity.ErrNotInflectable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrInvalidWord),
		errors.Is(err, entity.ErrInvalidWordID),
		errors.Is(err, entity.ErrUnknownCategory),
		errors.Is(err, entity.ErrBadOverrideKey),
		errors.Is(err, entity.ErrMalformedFlags),
		errors.Is(err, entity.ErrUnknownRelation),
		errors.Is(err, entity.ErrInvalidTag),
		errors.Is(err, filterexpr.ErrInvalidFilter),
		errors.Is(err, filterexpr.ErrInvalidOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func int32Param(raw string) (int32, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return int32(v), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
