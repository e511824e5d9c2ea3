package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/models"
	"github.com/yurifrl/ofx2qif/pkg/parser"
	"github.com/yurifrl/ofx2qif/pkg/qif"
)

// Server converts uploaded statements and serves the QIF it produced.
type Server struct {
	config *config.Config
	logger *log.Logger
	mux    *http.ServeMux
	parser *parser.Parser
	files  sync.Map
}

// statement is what the server keeps of a processed upload.
type statement struct {
	transactions []*models.Transaction
	includeMemos bool
}

// New creates a new HTTP server
func New(config *config.Config, logger *log.Logger) *Server {
	s := &Server{
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
		parser: parser.New(logger),
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/healthz", s.withLogging(s.handleHealth))
	s.mux.HandleFunc("/api/process", s.withLogging(s.handleProcess))
	s.mux.HandleFunc("/api/files/", s.withLogging(s.handleFiles))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read file", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	includeMemos := s.config.IncludeMemos
	if v := r.FormValue("include_memos"); v != "" {
		includeMemos, err = strconv.ParseBool(v)
		if err != nil {
			s.respondError(w, r, http.StatusBadRequest, "invalid include_memos", err)
			return
		}
	}

	txs, err := s.parser.ProcessBytes(data, header.Filename)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process file", err)
		return
	}
	if txs == nil {
		txs = []*models.Transaction{}
	}

	memoSuppressed := false
	for _, tx := range txs {
		if tx.HasMemo() && !includeMemos {
			memoSuppressed = true
			break
		}
	}

	filename := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)) + ".qif"
	s.files.Store(filename, statement{transactions: txs, includeMemos: includeMemos})
	s.logger.Info("conversion complete", "file", header.Filename, "transactions", len(txs))

	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"status":          "success",
		"file":            filename,
		"data":            txs,
		"transactions":    len(txs),
		"memo_suppressed": memoSuppressed,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleFiles serves the QIF generated for a previously processed statement.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	filename := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filename == "" {
		s.respondError(w, r, http.StatusBadRequest, "filename required", nil)
		return
	}

	value, ok := s.files.Load(filename)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "file not found", nil)
		return
	}
	st, ok := value.(statement)
	if !ok {
		s.respondError(w, r, http.StatusInternalServerError, "internal type assertion error", nil)
		return
	}

	w.Header().Set("Content-Type", "application/qif")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(qif.Create(st.transactions, st.includeMemos)); err != nil {
		s.logger.Warn("failed to write qif response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
