// Command tokserver exposes the tokenizer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/tokenize   body: {"text":"..."}
//	GET  /api/health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	tokenize "github.com/lgtok/tokenize"
)

// ---- JSON response types ------------------------------------------------

type positionJSON struct {
	Alternatives []string `json:"alternatives"`
	UnsplitWord  string   `json:"unsplit_word,omitempty"`
	FirstUpper   bool     `json:"first_upper,omitempty"`
	PostQuote    bool     `json:"post_quote,omitempty"`
}

type tokenizeResponse struct {
	HasContent bool           `json:"has_content"`
	Positions  []positionJSON `json:"positions"`
}

type dictionaryGapJSON struct {
	Position     int    `json:"position"`
	UnsplitWord  string `json:"unsplit_word"`
	EntityMarked bool   `json:"entity_marked"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func toPositionsJSON(sent *tokenize.Sentence) []positionJSON {
	out := make([]positionJSON, 0, len(sent.Positions))
	for _, p := range sent.Positions {
		out = append(out, positionJSON{
			Alternatives: p.Alternatives,
			UnsplitWord:  p.UnsplitWord,
			FirstUpper:   p.FirstUpper,
			PostQuote:    p.PostQuote,
		})
	}
	return out
}

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

// ---- handlers ---------------------------------------------------------------

func handleTokenize(dict *tokenize.MapDictionary, spell tokenize.Spellchecker, opts *tokenize.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		sent, hasContent, err := tokenize.TokenizeSentence(body.Text, dict, spell, opts)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, tokenizeResponse{
			HasContent: hasContent,
			Positions:  toPositionsJSON(sent),
		})
	}
}

func handleAudit(dict *tokenize.MapDictionary, spell tokenize.Spellchecker, opts *tokenize.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		sent, _, err := tokenize.TokenizeSentence(body.Text, dict, spell, opts)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		report := tokenize.SentenceInDictionary(sent, dict)
		gaps := make([]dictionaryGapJSON, 0, len(report.NotInDictionary))
		for _, g := range report.NotInDictionary {
			gaps = append(gaps, dictionaryGapJSON{
				Position:     g.Position,
				UnsplitWord:  g.UnsplitWord,
				EntityMarked: g.EntityMarked,
			})
		}
		writeJSON(w, http.StatusOK, gaps)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- main -------------------------------------------------------------------

func main() {
	affixPath := flag.String("affix", "testdata/affix.en.txt", "path to the affix table file")
	dictPath := flag.String("dict", "testdata/words.en.txt", "path to the word list file")
	addr := flag.String("addr", ":8080", "listen address")
	spellGuess := flag.Bool("spell-guess", false, "enable spellcheck-fallback alternatives")
	origins := flag.String("cors-origin", "*", "allowed CORS origin")
	flag.Parse()

	log.Printf("loading affix table from %s …", *affixPath)
	at, err := tokenize.LoadAffixTable(*affixPath)
	if err != nil {
		log.Fatalf("failed to load affix table: %v", err)
	}
	log.Printf("loading dictionary from %s …", *dictPath)
	dict, err := tokenize.LoadDictionary(*dictPath, at)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	dict.SetWalls(true, true)
	log.Println("data loaded")

	opts := &tokenize.Options{UseSpellGuess: *spellGuess}
	var spell tokenize.Spellchecker
	if *spellGuess {
		spell = tokenize.NewEditDistanceSpellchecker(dict.Words(), 0)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tokenize", handleTokenize(dict, spell, opts))
	mux.HandleFunc("/api/dictionary-gaps", handleAudit(dict, spell, opts))
	mux.HandleFunc("/api/health", handleHealth)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{*origins},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", fmt.Errorf("listen on %s: %w", *addr, err))
	}
}
