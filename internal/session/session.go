// Package session owns the per-upload mutable state: the live document, the
// analysis with its per-language translation cache, and the chat transcript.
// Mutation points are explicit: replace-on-upload, publish-on-analyze,
// insert-once-per-language-on-translate, append-on-chat. Every write that
// depends on the document carries the generation it was computed for, so
// results that arrive after a re-upload are rejected instead of displayed.
package session

import (
	"sync"
	"time"
)

// Document is the uploaded file plus its extracted text. Exactly one live
// Document per session; replaced wholesale on re-upload.
type Document struct {
	Filename      string `json:"filename"`
	MimeType      string `json:"mime_type"`
	ExtractedText string `json:"extracted_text"`
}

// AnalysisResult is one complete analysis pass. Immutable once created.
type AnalysisResult struct {
	Summary     string   `json:"summary"`
	RiskFactors []string `json:"riskFactors"`
	Checklist   string   `json:"checklist"`
}

// FullAnalysisResult pairs the original-language analysis with a growing
// cache of per-language translations.
type FullAnalysisResult struct {
	Original   AnalysisResult            `json:"original"`
	Translated map[string]AnalysisResult `json:"translated"`
}

// ChatMessage is one transcript entry.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session tracks one interactive document session.
type Session struct {
	mu sync.Mutex

	id         string
	generation uint64
	doc        *Document
	analysis   *FullAnalysisResult
	transcript []ChatMessage

	createdAt time.Time
	updatedAt time.Time
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetDocument replaces the live document, bumps the generation, and clears
// the analysis and transcript. Returns the new generation.
func (s *Session) SetDocument(doc Document) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.doc = &doc
	s.analysis = nil
	s.transcript = nil
	s.updatedAt = time.Now()
	return s.generation
}

// Generation returns the current document generation.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Document returns a copy of the live document, if any.
func (s *Session) Document() (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return Document{}, false
	}
	return *s.doc, true
}

// CurrentDocument returns the live document together with the generation it
// belongs to, read atomically so callers can tag in-flight work.
func (s *Session) CurrentDocument() (Document, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return Document{}, s.generation, false
	}
	return *s.doc, s.generation, true
}

// SetAnalysis publishes a fresh analysis computed for generation gen. The
// prior analysis, if any, is replaced entirely. Returns false when the
// document has changed since gen (the stale result is discarded).
func (s *Session) SetAnalysis(gen uint64, result AnalysisResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.analysis = &FullAnalysisResult{
		Original:   result,
		Translated: make(map[string]AnalysisResult),
	}
	s.updatedAt = time.Now()
	return true
}

// Analysis returns a copy of the full analysis, if present.
func (s *Session) Analysis() (FullAnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return FullAnalysisResult{}, false
	}
	return s.copyAnalysisLocked(), true
}

// Translation looks up the cached translation for a language.
func (s *Session) Translation(language string) (AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return AnalysisResult{}, false
	}
	r, ok := s.analysis.Translated[language]
	return r, ok
}

// PutTranslation inserts a translation computed for generation gen. A
// language is inserted at most once; once present it is never recomputed.
// Returns the cached result and whether the insert (or prior cache) holds.
func (s *Session) PutTranslation(gen uint64, language string, result AnalysisResult) (AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.analysis == nil {
		return AnalysisResult{}, false
	}
	if cached, ok := s.analysis.Translated[language]; ok {
		return cached, true
	}
	s.analysis.Translated[language] = result
	s.updatedAt = time.Now()
	return result, true
}

// AppendMessage appends one transcript entry. The transcript is append-only:
// entries are never edited, reordered, or rolled back.
func (s *Session) AppendMessage(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, ChatMessage{Role: role, Content: content})
	s.updatedAt = time.Now()
}

// Transcript returns a copy of the chat transcript.
func (s *Session) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Snapshot is a read-only, JSON-safe copy of session state.
type Snapshot struct {
	ID         string              `json:"session_id"`
	Generation uint64              `json:"generation"`
	Document   *Document           `json:"document,omitempty"`
	Analysis   *FullAnalysisResult `json:"analysis,omitempty"`
	Transcript []ChatMessage       `json:"transcript"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Snapshot returns a JSON-safe copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         s.id,
		Generation: s.generation,
		Transcript: make([]ChatMessage, len(s.transcript)),
		CreatedAt:  s.createdAt,
	}
	copy(snap.Transcript, s.transcript)
	if s.doc != nil {
		doc := *s.doc
		snap.Document = &doc
	}
	if s.analysis != nil {
		a := s.copyAnalysisLocked()
		snap.Analysis = &a
	}
	return snap
}

func (s *Session) copyAnalysisLocked() FullAnalysisResult {
	out := FullAnalysisResult{
		Original:   s.analysis.Original,
		Translated: make(map[string]AnalysisResult, len(s.analysis.Translated)),
	}
	for lang, r := range s.analysis.Translated {
		out.Translated[lang] = r
	}
	return out
}
