package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// currentDate returns today's date in ISO 8601 format (UTC).
func currentDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// CallLLMWith sends a prompt with per-call chat options.
func CallLLMWith(ctx context.Context, prompt string, opts ...llm.ChatOption) (string, error) {
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt, opts...)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// PromptJSON sends a prompt and parses the response as JSON into T.
// If the response has prose around the JSON, attempts to extract the
// outermost JSON value before giving up.
func PromptJSON[T any](ctx context.Context, prompt string, opts ...llm.ChatOption) (*T, error) {
	raw, err := CallLLMWith(ctx, prompt, opts...)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return &out, nil
	}

	if extracted := ExtractJSONValue(raw); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &out); err == nil {
			return &out, nil
		}
	}
	return nil, fmt.Errorf("llm: parse failed on %q", TruncateRunes(raw, 200, "..."))
}

// ExtractJSONValue finds the outermost JSON object or array in raw text.
// LLMs sometimes wrap JSON in prose despite instructions not to. The value
// starts at whichever bracket opens first: an array of objects must extract
// as the array, not from the first object's brace to the last closing one.
func ExtractJSONValue(raw string) string {
	pairs := [][2]byte{{'{', '}'}, {'[', ']'}}
	objStart := strings.IndexByte(raw, '{')
	arrStart := strings.IndexByte(raw, '[')
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		pairs[0], pairs[1] = pairs[1], pairs[0]
	}
	for _, pair := range pairs {
		start := strings.IndexByte(raw, pair[0])
		end := strings.LastIndexByte(raw, pair[1])
		if start >= 0 && end > start {
			return raw[start : end+1]
		}
	}
	return ""
}
