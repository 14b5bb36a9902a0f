// Package analysis composes prompt tasks into the user-facing operations:
// extract, analyze, translate, ask, explain, and speak. The service is
// stateless; inputs are immutable snapshots and every call assembles a
// fresh result value.
package analysis

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/clausebeacon/internal/audio"
	"github.com/dgallion1/clausebeacon/internal/gemini"
	"github.com/dgallion1/clausebeacon/internal/parser"
	"github.com/dgallion1/clausebeacon/internal/session"
	"github.com/dgallion1/clausebeacon/internal/task"
)

// Gateway is the single seam to the model capability.
type Gateway interface {
	Invoke(ctx context.Context, req gemini.InvokeRequest, out any) error
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
}

// Options carries the tunables the service needs from config.
type Options struct {
	VoiceDefault         string
	VoiceHindi           string
	PDFFallbackPdftotext bool
}

// Service runs the document-processing pipeline.
type Service struct {
	gw   Gateway
	log  *slog.Logger
	opts Options
}

func NewService(gw Gateway, log *slog.Logger, opts Options) *Service {
	if opts.VoiceDefault == "" {
		opts.VoiceDefault = "Algenib"
	}
	if opts.VoiceHindi == "" {
		opts.VoiceHindi = "hi-IN-Wavenet-D"
	}
	return &Service{gw: gw, log: log, opts: opts}
}

// ExtractText pulls the text out of an uploaded document. Text-like formats
// are parsed locally; images, legacy .doc files, and PDFs with no text
// layer go through model OCR. A document with no readable text yields an
// empty string, never an error.
func (s *Service) ExtractText(ctx context.Context, mimeType string, data []byte) (string, error) {
	if !parser.IsSupported(mimeType) {
		return "", &parser.UnsupportedTypeError{MimeType: mimeType}
	}

	if parser.IsOCROnly(mimeType) {
		return s.ocr(ctx, mimeType, data)
	}

	ext, err := parser.ForMime(mimeType)
	if err != nil {
		return "", err
	}
	if pdfExt, ok := ext.(*parser.PDFExtractor); ok {
		pdfExt.FallbackPdftotext = s.opts.PDFFallbackPdftotext
	}

	text, err := ext.Extract(bytes.NewReader(data))
	if strings.Contains(mimeType, "pdf") && (err != nil || strings.TrimSpace(text) == "") {
		// Scanned PDF: no text layer to read locally.
		return s.ocr(ctx, mimeType, data)
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) ocr(ctx context.Context, mimeType string, data []byte) (string, error) {
	prompt, err := task.ExtractText.Render(nil)
	if err != nil {
		return "", err
	}

	var out task.ExtractTextOutput
	err = s.gw.Invoke(ctx, gemini.InvokeRequest{
		Task:   task.ExtractText.Name,
		Prompt: prompt,
		Schema: task.ExtractText.Schema,
		Media:  &gemini.Media{MimeType: mimeType, Data: data},
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ExtractedText, nil
}

// Analyze fans out the summary, risk, and checklist tasks concurrently over
// the same document text and joins all three. Any sub-task failure fails
// the whole operation; no partial analysis is surfaced.
func (s *Service) Analyze(ctx context.Context, documentText string) (session.AnalysisResult, error) {
	if strings.TrimSpace(documentText) == "" {
		return session.AnalysisResult{}, &EmptyInputError{Field: "document text"}
	}

	input := task.DocumentInput{DocumentText: documentText}
	var (
		summary   task.SummarizeOutput
		risks     task.IdentifyRisksOutput
		checklist task.ChecklistOutput
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return s.invoke(gctx, task.Summarize, input, &summary) })
	eg.Go(func() error { return s.invoke(gctx, task.IdentifyRisks, input, &risks) })
	eg.Go(func() error { return s.invoke(gctx, task.GenerateChecklist, input, &checklist) })
	if err := eg.Wait(); err != nil {
		return session.AnalysisResult{}, err
	}

	riskFactors := risks.RiskFactors
	if riskFactors == nil {
		riskFactors = []string{}
	}
	return session.AnalysisResult{
		Summary:     summary.Summary,
		RiskFactors: riskFactors,
		Checklist:   checklist.Checklist,
	}, nil
}

// TranslateAnalysis translates the summary and checklist as single fields
// and each risk factor independently. A field whose translation fails keeps
// its original-language content; the operation as a whole still succeeds.
func (s *Service) TranslateAnalysis(ctx context.Context, a session.AnalysisResult, targetLanguage string) (session.AnalysisResult, error) {
	if strings.TrimSpace(targetLanguage) == "" {
		return session.AnalysisResult{}, &EmptyInputError{Field: "target language"}
	}

	out := session.AnalysisResult{
		RiskFactors: make([]string, len(a.RiskFactors)),
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		out.Summary = s.translateField(gctx, a.Summary, targetLanguage)
		return nil
	})
	eg.Go(func() error {
		out.Checklist = s.translateField(gctx, a.Checklist, targetLanguage)
		return nil
	})
	for i, risk := range a.RiskFactors {
		i, risk := i, risk
		eg.Go(func() error {
			out.RiskFactors[i] = s.translateField(gctx, risk, targetLanguage)
			return nil
		})
	}
	_ = eg.Wait() // per-field closures never return errors

	return out, nil
}

// translateField translates one text field, falling back to the original
// content on failure.
func (s *Service) translateField(ctx context.Context, text, targetLanguage string) string {
	if text == "" {
		return ""
	}
	var out task.TranslateOutput
	err := s.invoke(ctx, task.Translate, task.TranslateInput{
		DocumentText:   text,
		TargetLanguage: targetLanguage,
	}, &out)
	if err != nil {
		s.log.Warn("field translation failed, keeping original",
			"language", targetLanguage, "error", err)
		return text
	}
	return out.TranslatedText
}

// AskQuestion answers a question over the original document text. The model
// detects the question's language (English or Hinglish) and answers in kind.
func (s *Service) AskQuestion(ctx context.Context, documentText, question string) (string, error) {
	if strings.TrimSpace(documentText) == "" {
		return "", &EmptyInputError{Field: "document text"}
	}
	if strings.TrimSpace(question) == "" {
		return "", &EmptyInputError{Field: "question"}
	}

	var out task.AnswerQuestionOutput
	err := s.invoke(ctx, task.AnswerQuestion, task.QuestionInput{
		DocumentText: documentText,
		Question:     question,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Answer, nil
}

// ExplainClause explains a clause in plain language, grounded in the
// original document text. Callers must pass the original-language clause
// even when a translated view is displayed, so the model can locate it.
func (s *Service) ExplainClause(ctx context.Context, documentText, clause string) (string, error) {
	if strings.TrimSpace(documentText) == "" {
		return "", &EmptyInputError{Field: "document text"}
	}
	if strings.TrimSpace(clause) == "" {
		return "", &EmptyInputError{Field: "clause"}
	}

	var out task.ExplainClauseOutput
	err := s.invoke(ctx, task.ExplainClause, task.ClauseInput{
		DocumentText: documentText,
		Clause:       clause,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.SimplifiedExplanation, nil
}

// Speak synthesizes speech for text: detect the language, pick a voice
// (Hindi and Hinglish share one), synthesize, and encode to a playable
// WAV data URI.
func (s *Service) Speak(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &EmptyInputError{Field: "text"}
	}

	var detected task.DetectLanguageOutput
	if err := s.invoke(ctx, task.DetectLanguage, task.TextInput{Text: text}, &detected); err != nil {
		return "", err
	}
	lang := strings.ToLower(detected.Lang)
	if lang == "" {
		lang = "en"
	}

	voice := s.opts.VoiceDefault
	if strings.HasPrefix(lang, "hi") {
		voice = s.opts.VoiceHindi
	}

	pcm, err := s.gw.SynthesizeSpeech(ctx, text, voice)
	if err != nil {
		return "", err
	}
	return audio.EncodeWAV(pcm)
}

func (s *Service) invoke(ctx context.Context, t *task.Task, input, out any) error {
	prompt, err := t.Render(input)
	if err != nil {
		return err
	}
	return s.gw.Invoke(ctx, gemini.InvokeRequest{
		Task:   t.Name,
		Prompt: prompt,
		Schema: t.Schema,
	}, out)
}
