// Package task defines the static registry of prompt tasks: named units of
// work pairing an instructional template with a declared output shape.
// Descriptors are built once at init and never mutated at runtime.
package task

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/dgallion1/clausebeacon/internal/gemini"
)

// Task is a named, schema-typed unit of model work.
type Task struct {
	Name   string
	Schema *gemini.Schema
	tmpl   *template.Template
}

// Render interpolates the input fields into the task's prompt template.
func (t *Task) Render(data any) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", t.Name, err)
	}
	return sb.String(), nil
}

func define(name, promptText string, schema *gemini.Schema) *Task {
	return &Task{
		Name:   name,
		Schema: schema,
		tmpl:   template.Must(template.New(name).Parse(promptText)),
	}
}

// Input types, one per task that interpolates fields.

type DocumentInput struct {
	DocumentText string
}

type ClauseInput struct {
	DocumentText string
	Clause       string
}

type QuestionInput struct {
	DocumentText string
	Question     string
}

type TranslateInput struct {
	DocumentText   string
	TargetLanguage string
}

type TextInput struct {
	Text string
}

// Output types, one per task, matching the declared schemas.

type ExtractTextOutput struct {
	ExtractedText string `json:"extractedText"`
}

type SummarizeOutput struct {
	Summary string `json:"summary"`
}

type IdentifyRisksOutput struct {
	RiskFactors []string `json:"riskFactors"`
}

type ChecklistOutput struct {
	Checklist string `json:"checklist"`
}

type ExplainClauseOutput struct {
	SimplifiedExplanation string `json:"simplifiedExplanation"`
}

type AnswerQuestionOutput struct {
	Answer string `json:"answer"`
}

type TranslateOutput struct {
	TranslatedText string `json:"translatedText"`
}

type DetectLanguageOutput struct {
	Lang string `json:"lang"`
}

var (
	ExtractText = define("extractText", extractTextPrompt, gemini.Object(map[string]*gemini.Schema{
		"extractedText": gemini.String("The extracted text from the document. If no text can be extracted, this should be empty."),
	}))

	Summarize = define("summarize", summarizePrompt, gemini.Object(map[string]*gemini.Schema{
		"summary": gemini.String("A simplified summary of the legal document, using markdown for headings and bullet points."),
	}))

	IdentifyRisks = define("identifyRisks", identifyRisksPrompt, gemini.Object(map[string]*gemini.Schema{
		"riskFactors": gemini.Array(gemini.String("One risk factor or onerous clause."),
			"A list of potential risk factors and onerous clauses identified in the document."),
	}))

	GenerateChecklist = define("generateChecklist", generateChecklistPrompt, gemini.Object(map[string]*gemini.Schema{
		"checklist": gemini.String(`A checklist of actionable items in markdown format. Each item must be a separate line starting with "- ".`),
	}))

	ExplainClause = define("explainClause", explainClausePrompt, gemini.Object(map[string]*gemini.Schema{
		"simplifiedExplanation": gemini.String("A simplified explanation of the clause."),
	}))

	AnswerQuestion = define("answerQuestion", answerQuestionPrompt, gemini.Object(map[string]*gemini.Schema{
		"answer": gemini.String("The answer to the user's question based on the document."),
	}))

	Translate = define("translate", translatePrompt, gemini.Object(map[string]*gemini.Schema{
		"translatedText": gemini.String("The translated text of the legal document in the target language."),
	}))

	DetectLanguage = define("detectLanguage", detectLanguagePrompt, gemini.Object(map[string]*gemini.Schema{
		"lang": gemini.String(`The ISO 639-1 code for the detected language. Use "en" for English, "hi" for Hindi, and "hi" for Hinglish (Hindi + English). Default to "en" if unsure.`),
	}))
)

// All lists every registered task descriptor.
func All() []*Task {
	return []*Task{
		ExtractText,
		Summarize,
		IdentifyRisks,
		GenerateChecklist,
		ExplainClause,
		AnswerQuestion,
		Translate,
		DetectLanguage,
	}
}
