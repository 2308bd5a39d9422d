// Command latinga-server exposes the transliteration and validation
// facade as a small JSON HTTP API.
//
// Endpoints:
//
//	POST /translate  body: {"text":"...","mode":"joriy"|"kelgusi"}
//	POST /validate    body: {"text":"...","mode":"joriy"|"kelgusi","limit":10}
//
// Each route is a small handler-factory function returning an
// http.HandlerFunc over a shared JSON request/response struct, with
// CORS handled by github.com/rs/cors.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/chapani/latinga/config"
	"github.com/chapani/latinga/latinga"
	"github.com/chapani/latinga/validator"
)

type translateRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type translateResponse struct {
	Text string `json:"text"`
}

type validateRequest struct {
	Text  string `json:"text"`
	Mode  string `json:"mode"`
	Limit int    `json:"limit"`
}

type errorJSON struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Word    string `json:"word"`
	Message string `json:"message"`
}

type validateResponse struct {
	Errors []errorJSON `json:"errors"`
	Total  int         `json:"total"`
	Score  int         `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func parseMode(s string) (config.Mode, error) {
	switch s {
	case "", "joriy":
		return config.Joriy, nil
	case "kelgusi":
		return config.Kelgusi, nil
	default:
		return config.Joriy, fmt.Errorf("unknown mode %q", s)
	}
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("latinga-server: encode response")
	}
}

func writeError(w http.ResponseWriter, log zerolog.Logger, status int, msg string) {
	writeJSON(w, log, status, errorResponse{Error: msg})
}

// facades holds one read-only Config per Mode, built once at startup and
// shared by reference across concurrent requests (a Config is safe for
// concurrent read-only use). Each request gets its own Facade over the
// shared Config, since a Facade's Engine is not safe for concurrent use.
type facades struct {
	joriy, kelgusi *config.Config
	log            zerolog.Logger
}

func newFacades(log zerolog.Logger) (*facades, error) {
	joriyCfg, err := config.New(config.Joriy, log)
	if err != nil {
		return nil, fmt.Errorf("latinga-server: build joriy config: %w", err)
	}
	kelgusiCfg, err := config.New(config.Kelgusi, log)
	if err != nil {
		return nil, fmt.Errorf("latinga-server: build kelgusi config: %w", err)
	}
	return &facades{joriy: joriyCfg, kelgusi: kelgusiCfg, log: log}, nil
}

func (fs *facades) forMode(mode config.Mode) *latinga.Facade {
	cfg := fs.joriy
	if mode == config.Kelgusi {
		cfg = fs.kelgusi
	}
	return latinga.New(cfg, latinga.WithLogger(fs.log))
}

func handleTranslate(fs *facades, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, log, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body translateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, log, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		mode, err := parseMode(body.Mode)
		if err != nil {
			writeError(w, log, http.StatusBadRequest, err.Error())
			return
		}
		f := fs.forMode(mode)
		writeJSON(w, log, http.StatusOK, translateResponse{Text: f.Translate(body.Text)})
	}
}

func handleValidate(fs *facades, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, log, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body validateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, log, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		mode, err := parseMode(body.Mode)
		if err != nil {
			writeError(w, log, http.StatusBadRequest, err.Error())
			return
		}
		limit := body.Limit
		if limit <= 0 {
			limit = 100
		}
		summary := fs.forMode(mode).Validate(body.Text, limit)
		writeJSON(w, log, http.StatusOK, toValidateResponse(summary))
	}
}

func toValidateResponse(s validator.Summary) validateResponse {
	errs := make([]errorJSON, 0, len(s.Errors))
	for _, e := range s.Errors {
		errs = append(errs, errorJSON{Line: e.Line, Column: e.Column, Word: e.Word, Message: e.Message})
	}
	return validateResponse{Errors: errs, Total: s.Total, Score: s.Score()}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fs, err := newFacades(log)
	if err != nil {
		log.Fatal().Err(err).Msg("latinga-server: startup")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/translate", handleTranslate(fs, log))
	mux.HandleFunc("/validate", handleValidate(fs, log))

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)

	log.Info().Str("addr", *addr).Msg("latinga-server: listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("latinga-server: server error")
	}
}
