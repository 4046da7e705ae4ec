// Package api exposes the chat pipeline over HTTP. The caller is a browser
// extension, so CORS is permissive and every response is JSON.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/mylikerahul/chatbot-engine/chat"
	"github.com/mylikerahul/chatbot-engine/locale"
)

const (
	serviceName    = "chatbot-engine"
	serviceVersion = "1.0.0"

	requestTimeout = 60 * time.Second
)

// ChatService is the pipeline dependency behind the /v1/chat handler.
type ChatService interface {
	Chat(ctx context.Context, req chat.Request) (chat.Response, error)
}

// Server wires the HTTP routes to the chat service.
type Server struct {
	svc             ChatService
	defaultLanguage string
	logger          zerolog.Logger
	handler         http.Handler
}

// New constructs a Server around the given chat service.
func New(svc ChatService, defaultLanguage string, logger zerolog.Logger) *Server {
	s := &Server{
		svc:             svc,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
	s.handler = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// The extension runs on arbitrary origins, so CORS stays open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/languages", s.handleLanguages)
	r.Post("/v1/chat", s.handleChat)
	r.Post("/v1/clear", s.handleClear)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http request")
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, serviceInfoResponse{
		Service:       serviceName,
		Version:       serviceVersion,
		Status:        "running",
		MultiLanguage: true,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, languagesResponse{
		Default:   s.defaultLanguage,
		Supported: locale.Languages(),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	if req.Query == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("query is required"))
		return
	}

	language := req.Language
	if language == "" {
		language = s.defaultLanguage
	}

	resp, err := s.svc.Chat(r.Context(), chat.Request{
		Query:       req.Query,
		Items:       req.Products,
		PageURL:     req.PageURL,
		PageTitle:   req.PageTitle,
		PageContent: req.PageContent,
		SiteType:    req.SiteType,
		PageType:    req.PageType,
		Language:    language,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("chat failed: %w", err))
		return
	}

	s.writeJSON(w, http.StatusOK, transformChatResponse(resp))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	language := req.Language
	if language == "" || !locale.IsSupported(language) {
		language = s.defaultLanguage
	}

	s.writeJSON(w, http.StatusOK, messageResponse{
		Message: locale.Translate("actions.clear", language),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn().Int("status", status).Err(err).Msg("api error")
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	if dec.More() {
		return fmt.Errorf("request body must contain a single JSON object")
	}

	return nil
}
