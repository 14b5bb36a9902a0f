package task

import (
	"strings"
	"testing"

	"github.com/dgallion1/clausebeacon/internal/gemini"
)

func TestRenderInterpolatesDocumentText(t *testing.T) {
	prompt, err := Summarize.Render(DocumentInput{DocumentText: "the quick brown contract"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "the quick brown contract") {
		t.Error("document text should be interpolated into the prompt")
	}
	if strings.Contains(prompt, "{{") {
		t.Error("no template markers should survive rendering")
	}
}

func TestRenderClauseAndQuestionInputs(t *testing.T) {
	prompt, err := ExplainClause.Render(ClauseInput{DocumentText: "doc body", Clause: "clause 4.2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "doc body") || !strings.Contains(prompt, "clause 4.2") {
		t.Error("both fields should be interpolated")
	}

	prompt, err = AnswerQuestion.Render(QuestionInput{DocumentText: "doc body", Question: "kya hai?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "kya hai?") {
		t.Error("question should be interpolated")
	}
}

func TestRenderTranslateTargetLanguage(t *testing.T) {
	prompt, err := Translate.Render(TranslateInput{DocumentText: "text", TargetLanguage: "Hindi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "translate the following text into Hindi") {
		t.Errorf("target language should land in the instruction, got %q", prompt)
	}
}

func TestRenderExtractTextTakesNoInput(t *testing.T) {
	prompt, err := ExtractText.Render(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt == "" {
		t.Error("expected non-empty OCR prompt")
	}
}

func TestAllTasksRegistered(t *testing.T) {
	tasks := All()
	if len(tasks) != 8 {
		t.Fatalf("expected 8 tasks, got %d", len(tasks))
	}
	seen := make(map[string]bool)
	for _, task := range tasks {
		if task.Name == "" {
			t.Error("task with empty name")
		}
		if seen[task.Name] {
			t.Errorf("duplicate task name %q", task.Name)
		}
		seen[task.Name] = true
		if task.Schema == nil {
			t.Errorf("task %q has no schema", task.Name)
		}
	}
}

func TestSchemasAreObjectsWithRequiredFields(t *testing.T) {
	for _, task := range All() {
		if task.Schema.Type != gemini.TypeObject {
			t.Errorf("task %q: expected object schema, got %q", task.Name, task.Schema.Type)
		}
		if len(task.Schema.Required) == 0 {
			t.Errorf("task %q: expected at least one required field", task.Name)
		}
	}
}

func TestIdentifyRisksSchemaIsStringArray(t *testing.T) {
	prop := IdentifyRisks.Schema.Properties["riskFactors"]
	if prop == nil {
		t.Fatal("expected riskFactors property")
	}
	if prop.Type != gemini.TypeArray {
		t.Errorf("expected array, got %q", prop.Type)
	}
	if prop.Items == nil || prop.Items.Type != gemini.TypeString {
		t.Error("expected string items")
	}
}
