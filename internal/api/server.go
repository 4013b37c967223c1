// Package api exposes a rank-weighted trie as an HTTP suggestion service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-prefix-trie"
)

// Server serves word lookups, mutations and completions over HTTP.
type Server struct {
	words        *trie.Trie[int]
	defaultLimit int
	maxLimit     int
	log          zerolog.Logger
	server       *http.Server
}

// NewServer builds a server around the given trie. Completion requests
// without a limit use defaultLimit; requested limits are clamped to
// maxLimit.
func NewServer(addr string, words *trie.Trie[int], defaultLimit, maxLimit int, logger zerolog.Logger) *Server {
	s := &Server{
		words:        words,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          logger,
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.health).Methods("GET")

	r.HandleFunc("/words/{word}", s.putWord).Methods("PUT")
	r.HandleFunc("/words/{word}", s.getWord).Methods("GET")
	r.HandleFunc("/words/{word}", s.deleteWord).Methods("DELETE")

	r.HandleFunc("/complete", s.complete).Methods("GET")
	r.HandleFunc("/prefix/{prefix}", s.prefix).Methods("GET")

	s.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

type rankRequest struct {
	Rank int `json:"rank"`
}

type wordResponse struct {
	Word string `json:"word"`
	Rank int    `json:"rank"`
}

type completeResponse struct {
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
}

type prefixResponse struct {
	Prefix string `json:"prefix"`
	Exists bool   `json:"exists"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "words": s.words.Len()})
}

func (s *Server) putWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.words.Insert(word, req.Rank)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	rank, ok := s.words.Get(word)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, wordResponse{Word: word, Rank: rank})
}

func (s *Server) deleteWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if !s.words.Delete(word) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) complete(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	limit := s.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	writeJSON(w, http.StatusOK, completeResponse{
		Prefix:      prefix,
		Suggestions: s.words.AutoComplete(prefix, limit),
	})
}

func (s *Server) prefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]
	writeJSON(w, http.StatusOK, prefixResponse{Prefix: prefix, Exists: s.words.PrefixSearch(prefix)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
