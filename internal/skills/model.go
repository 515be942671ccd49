package skills

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"resume-insights/internal/llm"
)

//go:embed classification.schema.json
var classificationSchema string

const classifySystemPrompt = "You are an expert HR analyst. Analyze the resume text and extract technical skills and soft skills. " +
	"Return JSON in this format: { \"technicalSkills\": [\"skill1\", \"skill2\"], \"softSkills\": [\"skill1\", \"skill2\"] }. " +
	"Technical skills include programming languages, frameworks, tools, technologies, methodologies. " +
	"Soft skills include communication, leadership, teamwork, problem-solving, etc."

// ModelClassifier asks a language model for the two skill lists.
type ModelClassifier struct {
	Client llm.Client
}

// Classify makes a single model call; any failure is returned as an error.
func (m ModelClassifier) Classify(ctx context.Context, text string) (Result, error) {
	if err := checkText(text); err != nil {
		return Result{}, err
	}
	if m.Client == nil {
		return Result{}, llm.ErrNotConfigured
	}
	raw, err := m.Client.CompleteJSON(ctx, llm.Request{
		System:      classifySystemPrompt,
		Prompt:      "Extract skills from this resume:\n\n" + text,
		Temperature: 0.3,
	})
	if err != nil {
		return Result{}, fmt.Errorf("classify skills: %w", err)
	}
	cleaned := llm.CleanJSON(raw)
	if err := llm.ValidateJSON(classificationSchema, cleaned); err != nil {
		return Result{}, fmt.Errorf("classify skills: %w", err)
	}
	var out Result
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return Result{}, fmt.Errorf("classify skills: %w: %v", llm.ErrInvalidOutput, err)
	}
	return tidy(out), nil
}
