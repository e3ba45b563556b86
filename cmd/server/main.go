// Command server exposes the COCA detokenizer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/detokenize   body: {"lines":"<raw wlp lines>"}
//	GET  /api/healthz
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	coca "github.com/corpus-tools/coca"
)

// ---- JSON request/response types ----------------------------------------

type detokenizeRequest struct {
	// Lines is the raw wlp input, newline-separated.
	Lines string `json:"lines"`
	// FirstLine and LastLine optionally restrict processing to the
	// line range [FirstLine, LastLine). LastLine 0 reads everything.
	FirstLine int `json:"first_line,omitempty"`
	LastLine  int `json:"last_line,omitempty"`
}

type detokenizeResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
	Cur   string `json:"cur,omitempty"`
	Prev  string `json:"prev,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writePipelineError surfaces the failing line and the tokens involved,
// so corpus problems are diagnosable from the response alone.
func writePipelineError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	var perr *coca.PipelineError
	if errors.As(err, &perr) {
		resp.Line = perr.Line
		resp.Cur = perr.Cur.String()
		if perr.Prev != nil {
			resp.Prev = perr.Prev.String()
		}
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp)
}

// ---- handlers -----------------------------------------------------------

func handleDetokenize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req detokenizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Lines == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'lines' field")
			return
		}

		d := &coca.Detokenizer{First: req.FirstLine, Last: req.LastLine}
		var out strings.Builder
		if err := d.Run(&out, strings.NewReader(req.Lines)); err != nil {
			writePipelineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detokenizeResponse{Text: out.String()})
	}
}

func handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/detokenize", handleDetokenize())
	mux.HandleFunc("/api/healthz", handleHealthz())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
