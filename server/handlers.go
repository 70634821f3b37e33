package server

import (
	"net/http"
	"strings"

	"github.com/tsforge/tsforge/dsl"
	"github.com/tsforge/tsforge/errors"
	"github.com/tsforge/tsforge/version"
)

// generateRequest is the body of POST /dsl
type generateRequest struct {
	DSL     string           `json:"dsl"`
	Options *generateOptions `json:"options"`
}

// generateOptions overrides the server's generator defaults per
// request. Absent fields keep the configured behavior. emitZod is an
// accepted alias for emitSchema.
type generateOptions struct {
	OptionalByDefault *bool `json:"optionalByDefault"`
	Strict            *bool `json:"strict"`
	StrictSchema      *bool `json:"strictSchema"`
	EmitInterface     *bool `json:"emitInterface"`
	EmitSchema        *bool `json:"emitSchema"`
	EmitZod           *bool `json:"emitZod"`
	EmitExample       *bool `json:"emitExample"`
}

// dslConfig resolves the effective generator config for one request
func (s *Server) dslConfig(opts *generateOptions) dsl.Config {
	cfg := s.conf().DSLConfig()
	if opts == nil {
		return cfg
	}

	if opts.OptionalByDefault != nil {
		cfg.OptionalByDefault = *opts.OptionalByDefault
	}
	if opts.Strict != nil {
		cfg.StrictSchema = *opts.Strict
	}
	if opts.StrictSchema != nil {
		cfg.StrictSchema = *opts.StrictSchema
	}
	if opts.EmitInterface != nil {
		cfg.EmitInterface = *opts.EmitInterface
	}
	if opts.EmitSchema != nil {
		cfg.EmitSchema = *opts.EmitSchema
	}
	if opts.EmitZod != nil {
		cfg.EmitSchema = *opts.EmitZod
	}
	if opts.EmitExample != nil {
		cfg.EmitExample = *opts.EmitExample
	}
	return cfg
}

// HandleDSL handles POST /dsl: transpile a DSL line into every
// requested artifact, returned as one JSON document
func (s *Server) HandleDSL(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodPost) {
		return
	}

	if maxBytes := s.conf().Server.MaxBodyBytes; maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	var req generateRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}

	result, err := dsl.Build(req.DSL, s.dslConfig(req.Options))
	if err != nil {
		var parseErr *dsl.Error
		if errors.As(err, &parseErr) {
			s.logger.Debugw("DSL parse rejected",
				"error", parseErr.Message,
				"token", parseErr.Token,
				"index", parseErr.Index,
			)
			writeParseError(w, parseErr)
			return
		}
		writeWrappedError(w, s.logger, err, "failed to build DSL artifacts", http.StatusInternalServerError)
		return
	}

	s.logger.Infow("DSL transpiled",
		"type_name", result.TypeName,
		"properties", len(result.Model.Properties),
	)
	writeJSON(w, http.StatusOK, result)
}

// buildFromQuery runs the transpiler on the dsl query parameter using
// the server's configured defaults
func (s *Server) buildFromQuery(w http.ResponseWriter, r *http.Request) (*dsl.Result, bool) {
	raw := r.URL.Query().Get("dsl")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Missing dsl query parameter")
		return nil, false
	}

	cfg := s.conf().DSLConfig()
	switch r.URL.Query().Get("strict") {
	case "1", "true":
		cfg.StrictSchema = true
	case "0", "false":
		cfg.StrictSchema = false
	}

	result, err := dsl.Build(raw, cfg)
	if err != nil {
		var parseErr *dsl.Error
		if errors.As(err, &parseErr) {
			writeParseError(w, parseErr)
			return nil, false
		}
		writeWrappedError(w, s.logger, err, "failed to build DSL artifacts", http.StatusInternalServerError)
		return nil, false
	}
	return result, true
}

// HandleTypeText handles GET /t?dsl=...: just the type alias, as plain text
func (s *Server) HandleTypeText(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}

	result, ok := s.buildFromQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(result.TypeText))
}

// HandleAll handles GET /all?dsl=...: every text artifact concatenated,
// as plain text
func (s *Server) HandleAll(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}

	result, ok := s.buildFromQuery(w, r)
	if !ok {
		return
	}

	var sb strings.Builder
	sb.WriteString(result.TypeText)
	if result.InterfaceText != "" {
		sb.WriteString("\n")
		sb.WriteString(result.InterfaceText)
	}
	if result.SchemaText != "" {
		sb.WriteString("\n")
		sb.WriteString(result.SchemaText)
	}
	if result.Example != nil {
		sb.WriteString("\n")
		sb.WriteString(dsl.GenerateExampleJSON(result.Model.Properties))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(sb.String()))
}

// HandleHealth handles GET /health
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleVersion handles GET /version
func (s *Server) HandleVersion(w http.ResponseWriter, r *http.Request) {
	if !requireMethods(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, version.Get())
}
