package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/bd-radar/internal/ai"
	"github.com/spigell/bd-radar/internal/enrich"
	"github.com/spigell/bd-radar/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Briefer drafts outreach briefs for enriched jobs through Gemini.
type Briefer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewBriefer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Briefer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Briefer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (b *Briefer) Brief(ctx context.Context, job *enrich.EnrichedJob) (*ai.OutreachBrief, error) {
	if job == nil {
		return nil, fmt.Errorf("enriched job is required")
	}

	opportunityJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal opportunity payload: %w", err)
	}

	prompt := buildPrompt(string(opportunityJSON))

	b.logger.Debug("gemini brief request",
		zap.String("job_id", job.Job.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, b.maxLogLen)),
	)

	raw, err := b.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("gemini brief response",
		zap.String("job_id", job.Job.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, b.maxLogLen)),
	)

	brief, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	brief.Raw = raw
	return brief, nil
}

func buildPrompt(opportunityJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Opportunity:\n{{OPPORTUNITY_JSON}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{OPPORTUNITY_JSON}}", opportunityJSON)
}

func parseResponse(raw string) (*ai.OutreachBrief, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = extractJSON(cleaned)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.OutreachBrief{
		Subject:   coerceString(data["subject"]),
		Message:   coerceString(data["message"]),
		Rationale: coerceString(data["rationale"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
