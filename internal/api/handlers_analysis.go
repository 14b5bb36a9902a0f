package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/clausebeacon/internal/analysis"
	"github.com/dgallion1/clausebeacon/internal/audio"
	"github.com/dgallion1/clausebeacon/internal/gemini"
	"github.com/dgallion1/clausebeacon/internal/markdown"
	"github.com/dgallion1/clausebeacon/internal/parser"
	"github.com/dgallion1/clausebeacon/internal/session"
)

// analysisPayload is an AnalysisResult plus the derived presentation
// fields the UI consumes: parsed checklist items and rendered HTML.
type analysisPayload struct {
	Summary        string   `json:"summary"`
	RiskFactors    []string `json:"riskFactors"`
	Checklist      string   `json:"checklist"`
	ChecklistItems []string `json:"checklist_items"`
	SummaryHTML    string   `json:"summary_html"`
	ChecklistHTML  string   `json:"checklist_html"`
}

func toPayload(a session.AnalysisResult) analysisPayload {
	return analysisPayload{
		Summary:        a.Summary,
		RiskFactors:    a.RiskFactors,
		Checklist:      a.Checklist,
		ChecklistItems: markdown.SplitChecklist(a.Checklist),
		SummaryHTML:    markdown.Render(a.Summary),
		ChecklistHTML:  markdown.Render(a.Checklist),
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	doc, gen, ok := sess.CurrentDocument()
	if !ok {
		jsonError(w, "no document in session", http.StatusBadRequest)
		return
	}

	result, err := s.svc.Analyze(r.Context(), doc.ExtractedText)
	if err != nil {
		s.log.Error("analysis failed", "session_id", sess.ID(), "error", err)
		jsonError(w, "failed to analyze the document: "+err.Error(), statusForError(err))
		return
	}

	if !sess.SetAnalysis(gen, result) {
		jsonError(w, "document changed during analysis", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, toPayload(result))
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Cache-by-presence: a language already translated is never recomputed.
	if cached, ok := sess.Translation(body.Language); ok {
		writeJSON(w, http.StatusOK, toPayload(cached))
		return
	}

	full, ok := sess.Analysis()
	if !ok {
		jsonError(w, "no analysis to translate; run analyze first", http.StatusBadRequest)
		return
	}
	_, gen, _ := sess.CurrentDocument()

	translated, err := s.svc.TranslateAnalysis(r.Context(), full.Original, body.Language)
	if err != nil {
		s.log.Error("translation failed", "session_id", sess.ID(), "language", body.Language, "error", err)
		jsonError(w, "failed to translate the analysis to "+body.Language+": "+err.Error(), statusForError(err))
		return
	}

	stored, ok := sess.PutTranslation(gen, body.Language, translated)
	if !ok {
		jsonError(w, "document changed during translation", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, toPayload(stored))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	var body struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	doc, _, ok := sess.CurrentDocument()
	if !ok {
		jsonError(w, "no document in session", http.StatusBadRequest)
		return
	}

	// Optimistic append: the user turn lands in the transcript before the
	// model is consulted and is never rolled back.
	sess.AppendMessage(session.RoleUser, body.Question)

	answer, err := s.svc.AskQuestion(r.Context(), doc.ExtractedText, body.Question)
	if err != nil {
		var emptyErr *analysis.EmptyInputError
		if errors.As(err, &emptyErr) {
			jsonError(w, emptyErr.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("question failed", "session_id", sess.ID(), "error", err)
		// The failed turn stays in the transcript as an inline error reply.
		sess.AppendMessage(session.RoleAssistant, "Error: failed to get an answer. Please try again.")
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":      "failed to get an answer",
			"transcript": sess.Transcript(),
		})
		return
	}

	sess.AppendMessage(session.RoleAssistant, answer)
	writeJSON(w, http.StatusOK, map[string]any{
		"answer":     answer,
		"transcript": sess.Transcript(),
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	var body struct {
		Clause string `json:"clause"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	doc, _, ok := sess.CurrentDocument()
	if !ok {
		jsonError(w, "no document in session", http.StatusBadRequest)
		return
	}

	explanation, err := s.svc.ExplainClause(r.Context(), doc.ExtractedText, body.Clause)
	if err != nil {
		s.log.Error("explanation failed", "session_id", sess.ID(), "error", err)
		jsonError(w, "failed to explain the clause: "+err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"explanation": explanation})
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	dataURI, err := s.svc.Speak(r.Context(), body.Text)
	if err != nil {
		s.log.Error("speech failed", "session_id", sess.ID(), "error", err)
		jsonError(w, "failed to generate audio: "+err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"audio": dataURI})
}

// statusForError maps the pipeline error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	var (
		emptyErr       *analysis.EmptyInputError
		unsupportedErr *parser.UnsupportedTypeError
		encodingErr    *audio.EncodingError
		invocationErr  *gemini.InvocationError
	)
	switch {
	case errors.As(err, &emptyErr):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &encodingErr):
		return http.StatusBadGateway
	case errors.As(err, &invocationErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
