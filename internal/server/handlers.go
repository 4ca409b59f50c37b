package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/export"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

type RenderResponse struct {
	Document   string   `json:"document"`
	Advisories []string `json:"advisories"`
	Tokens     int      `json:"tokens"`
}

type AdviseRequest struct {
	Task string `json:"task"`
}

type AdviseResponse struct {
	Advisories []string `json:"advisories"`
}

type SchemaRequest struct {
	Fields []string `json:"fields"`
}

type SchemaResponse struct {
	Schema string `json:"schema"`
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.OptionSets)
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.defaults)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var cfg prompts.Configuration
	if err := decodeJSON(w, r, &cfg); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	document := s.builder.Build(cfg)
	writeJSON(w, http.StatusOK, RenderResponse{
		Document:   document,
		Advisories: prompts.Analyze(cfg.RawTask),
		Tokens:     prompts.EstimateTokens(document),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var cfg prompts.Configuration
	if err := decodeJSON(w, r, &cfg); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	document := s.builder.Build(cfg)
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", export.ContentDisposition())
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, document)
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var req AdviseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, AdviseResponse{Advisories: prompts.Analyze(req.Task)})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	var req SchemaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, SchemaResponse{Schema: prompts.GenerateSchema(prompts.CleanFields(req.Fields))})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
