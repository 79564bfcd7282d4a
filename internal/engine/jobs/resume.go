package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// RewriteResume rewrites resume text for clarity and ATS friendliness.
// Text in, text out; the caller owns any document conversion.
func RewriteResume(ctx context.Context, resumeText string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("resume text is empty")
	}

	prompt := fmt.Sprintf(engine.PromptResumeRewrite, resumeText)
	rewritten, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("resume rewrite: %w", err)
	}
	return strings.TrimSpace(rewritten), nil
}
