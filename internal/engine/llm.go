package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"
)

// llmLimiter throttles outbound LLM calls; nil = unlimited.
var llmLimiter *rate.Limiter

func initLimiter(callsPerMinute int) {
	if callsPerMinute <= 0 {
		llmLimiter = nil
		return
	}
	llmLimiter = rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60.0), callsPerMinute)
}

// JSONFormatInstruction is appended to prompts that must return
// machine-readable JSON. CallLLMJSON appends it automatically; callers that
// decode a top-level array themselves append it to their own prompts.
const JSONFormatInstruction = "\n\nFormat your entire response as a valid JSON document without any markdown formatting or code blocks. Do not include ```json or ``` tags."

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt with an optional system prompt and returns the
// response text with code fences stripped. Per-call overrides (temperature,
// max tokens) go through opts; the client defaults come from Config.
func CallLLM(ctx context.Context, system, prompt string, opts ...llm.ChatOption) (string, error) {
	if llmLimiter != nil {
		if err := llmLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	IncrLLMCalls()
	resp, err := cfg.LLMClient.Complete(ctx, system, prompt, opts...)
	if err != nil {
		IncrLLMErrors()
		return "", err
	}
	return stripFences(resp), nil
}

// CallLLMJSON sends a prompt with a JSON response-format instruction and
// decodes the result into T. On decode failure it returns the raw text so
// callers can salvage or surface it.
func CallLLMJSON[T any](ctx context.Context, system, prompt string, opts ...llm.ChatOption) (*T, string, error) {
	raw, err := CallLLM(ctx, system, prompt+JSONFormatInstruction, opts...)
	if err != nil {
		return nil, "", err
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, raw, fmt.Errorf("decode LLM JSON: %w", err)
	}
	return &out, raw, nil
}

// ExtractJSONString extracts a top-level string field from malformed JSON
// where the value may contain unescaped newlines or special characters.
func ExtractJSONString(raw, field string) string {
	prefix := `"` + field + `"`
	idx := strings.Index(raw, prefix)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(raw[idx+len(prefix):])
	if len(rest) == 0 || rest[0] != ':' {
		return ""
	}
	rest = strings.TrimSpace(rest[1:])
	if len(rest) == 0 || rest[0] != '"' {
		return ""
	}
	rest = rest[1:] // skip opening quote

	var sb strings.Builder
	for i := 0; i < len(rest); i++ {
		if rest[i] == '\\' && i+1 < len(rest) {
			switch rest[i+1] {
			case '"':
				sb.WriteByte('"')
				i++
				continue
			case 'n':
				sb.WriteByte('\n')
				i++
				continue
			}
			sb.WriteByte(rest[i])
			continue
		}
		if rest[i] == '"' {
			return sb.String()
		}
		sb.WriteByte(rest[i])
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	return ""
}
