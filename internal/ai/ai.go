package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hireloop/intake/internal/config"
	"github.com/hireloop/intake/pkg/ollama"
	"github.com/qri-io/jsonschema"
)

// Verdict is the structured answer the validator oracle must return.
type Verdict struct {
	IsResume  bool   `json:"is_resume"`
	Reasoning string `json:"reasoning,omitempty"`
}

// verdictSchema constrains the model output before we trust it. Anything the
// model returns outside this shape is rejected.
const verdictSchema = `{
  "type": "object",
  "required": ["is_resume"],
  "properties": {
    "is_resume": {"type": "boolean"},
    "reasoning": {"type": "string"}
  }
}`

const validatePrompt = `Analyze the following text and determine if it is a resume/CV document.
Respond with ONLY a JSON object of the form {"is_resume": true|false, "reasoning": "<one sentence>"}.
Text:
{{.Text}}`

const summarizePrompt = `Create a single, concise paragraph that summarizes ALL key requirements and skills from this job description.
Focus on technical skills, qualifications, experience levels, and essential requirements.
Include specific technologies, tools, education, and experience requirements.
Return ONLY the summary paragraph.
Job Description:
{{.JobDescription}}`

// Oracle answers the two natural-language questions the pipeline needs:
// "is this a resume" and "what does this job actually require".
type Oracle struct {
	client *ollama.Client
	cfg    config.EngineConfig
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewOracle(client *ollama.Client, cfg config.EngineConfig, logger *slog.Logger) (*Oracle, error) {
	if client == nil {
		return nil, fmt.Errorf("ollama client is required")
	}
	if cfg.ChatModel == "" {
		return nil, fmt.Errorf("chat model is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	schema := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(verdictSchema), schema); err != nil {
		return nil, fmt.Errorf("parse verdict schema: %w", err)
	}

	return &Oracle{client: client, cfg: cfg, schema: schema, logger: logger}, nil
}

// IsResume asks the chat model whether the text reads like a resume. The
// verdict JSON is schema-validated; a malformed or failed verdict is an error
// so the caller can fail closed.
func (o *Oracle) IsResume(ctx context.Context, text string) (bool, error) {
	prompt, err := ollama.RenderTemplate(validatePrompt, map[string]any{"Text": text})
	if err != nil {
		return false, fmt.Errorf("render template: %w", err)
	}

	ctxReq, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	out, err := o.client.Generate(ctxReq, o.cfg.ChatModel, prompt)
	if err != nil {
		return false, fmt.Errorf("generate: %w", err)
	}

	j := extractJSON(out.Text)
	if j == "" {
		return false, errors.New("no JSON object found in verdict")
	}

	verrs, err := o.schema.ValidateBytes(ctxReq, []byte(j))
	if err != nil {
		return false, fmt.Errorf("schema validate: %w", err)
	}
	if len(verrs) > 0 {
		var sb strings.Builder
		for _, v := range verrs {
			sb.WriteString(v.Message)
			sb.WriteString("; ")
		}
		return false, fmt.Errorf("verdict does not match schema: %s", sb.String())
	}

	verdict, err := ParseVerdict(out.Text)
	if err != nil {
		return false, err
	}

	o.logger.Debug("resume verdict", slog.Bool("is_resume", verdict.IsResume), slog.String("reasoning", verdict.Reasoning))
	return verdict.IsResume, nil
}

// Summarize condenses a job description into a single requirements paragraph.
func (o *Oracle) Summarize(ctx context.Context, jobDescription string) (string, error) {
	prompt, err := ollama.RenderTemplate(summarizePrompt, map[string]any{"JobDescription": jobDescription})
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}

	ctxReq, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	out, err := o.client.Generate(ctxReq, o.cfg.ChatModel, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return strings.TrimSpace(out.Text), nil
}

// ParseVerdict extracts a JSON object from arbitrary model output and
// unmarshals it into a Verdict.
func ParseVerdict(s string) (*Verdict, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty response")
	}

	j := extractJSON(s)
	if j == "" {
		return nil, errors.New("no JSON object found in response")
	}

	var v Verdict
	if err := json.Unmarshal([]byte(j), &v); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return &v, nil
}

// extractJSON returns the substring from the first '{' to the last '}' in the
// input. This is a pragmatic approach to handle model outputs that wrap JSON
// in text or markdown.
func extractJSON(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return ""
	}
	return s[first : last+1]
}
