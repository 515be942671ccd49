package questions

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"resume-insights/internal/llm"
	"resume-insights/internal/shared/telemetry"
)

// Generator produces interview questions for a skill list.
type Generator interface {
	Generate(ctx context.Context, skills []string) ([]Item, error)
}

//go:embed questions.schema.json
var questionsSchema string

var validate = validator.New()

const generateSystemPrompt = "You are an expert technical interviewer. Generate relevant interview questions based on the candidate's skills. " +
	"Return JSON in this format: { \"questions\": [{ \"skill\": \"skill_name\", \"difficulty\": \"Easy|Intermediate|Advanced\", " +
	"\"question\": \"question_text\", \"category\": \"Technical|Behavioral|Situational\" }] }"

// ModelGenerator asks a language model for 8 to 12 questions.
type ModelGenerator struct {
	Client llm.Client
}

// Generate makes one model call. Items failing validation are dropped; an
// answer with no valid items is an error.
func (g ModelGenerator) Generate(ctx context.Context, skills []string) ([]Item, error) {
	if len(skills) == 0 {
		return nil, nil
	}
	if g.Client == nil {
		return nil, llm.ErrNotConfigured
	}
	prompt := fmt.Sprintf("Generate 8-12 interview questions for a candidate with these skills: %s. "+
		"Include a mix of technical, behavioral, and situational questions with varying difficulty levels. "+
		"Make sure questions are relevant to the skills mentioned.", strings.Join(skills, ", "))
	raw, err := g.Client.CompleteJSON(ctx, llm.Request{
		System:      generateSystemPrompt,
		Prompt:      prompt,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	cleaned := llm.CleanJSON(raw)
	if err := llm.ValidateJSON(questionsSchema, cleaned); err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	var envelope struct {
		Questions []Item `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("generate questions: %w: %v", llm.ErrInvalidOutput, err)
	}

	items := make([]Item, 0, len(envelope.Questions))
	for i, item := range envelope.Questions {
		item.Skill = strings.TrimSpace(item.Skill)
		item.Question = strings.TrimSpace(item.Question)
		if err := validate.Struct(item); err != nil {
			telemetry.Warn("questions.item_dropped", map[string]any{"index": i, "error": err})
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("generate questions: %w: no valid questions", llm.ErrInvalidOutput)
	}
	return items, nil
}
