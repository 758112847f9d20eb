// Package llm turns section field data into academic prose via Gemini.
package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

// ErrGenerationFailed marks section text the model could not produce; callers
// substitute the templated placeholder.
var ErrGenerationFailed = errors.New("llm: generation failed")

const maxAttempts = 3

// Generator is a thin wrapper around the official genai client, one call per
// paper section.
type Generator struct {
	cli    *genai.Client
	model  string
	logger *zap.Logger
}

func NewGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Generator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{cli: cli, model: model, logger: logger}, nil
}

func (g *Generator) Name() string { return "Gemini:" + g.model }

// GenerateSection fills the section's prompt template with the field data and
// asks the model for the section text. Retries with backoff; a final failure
// wraps ErrGenerationFailed.
func (g *Generator) GenerateSection(ctx context.Context, section string, fields map[string]string) (string, error) {
	prompt := SectionPrompt(section)
	full := strings.ReplaceAll(prompt, "{data}", FormatFields(fields))

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
			nil,
		)
		if err != nil {
			lastErr = err
		} else if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("empty candidate for section %s", section)
		} else {
			text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
			if text != "" {
				return text, nil
			}
			lastErr = fmt.Errorf("blank text for section %s", section)
		}
		g.logger.Warn("section generation attempt failed",
			zap.String("section", section),
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr))
		time.Sleep(time.Duration(300*(1<<attempt)) * time.Millisecond)
	}
	return "", fmt.Errorf("%w: %s: %v", ErrGenerationFailed, section, lastErr)
}

// FormatFields renders a section mapping as "Key: value" lines for the
// {data} placeholder. Keys are humanized and sorted, empty values skipped.
func FormatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.TrimSpace(fields[k]) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(humanizeKey(k))
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(fields[k]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func humanizeKey(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
