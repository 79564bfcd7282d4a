package jobs

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// AggregatePayload carries the optional sections of an aggregate report.
// Maps are rendered as bullet lists; empty sections are allowed.
type AggregatePayload struct {
	ResumeSummary    string         `json:"resume_summary"`
	InterviewProfile map[string]any `json:"interview_profile"`
	GitHub           map[string]any `json:"github"`
	StackOverflow    map[string]any `json:"stackoverflow"`
	JobMarket        map[string]any `json:"job_market"`
}

// CreateReport generates a strategic development summary from resume text.
func CreateReport(ctx context.Context, resumeText string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("resume text is empty")
	}
	engine.IncrReportsGenerated()

	prompt := fmt.Sprintf(engine.PromptCareerReport, resumeText)
	report, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("career report: %w", err)
	}
	return report, nil
}

// CreateAggregateReport synthesizes a career insights report from resume,
// interview, footprint and job market sections.
func CreateAggregateReport(ctx context.Context, payload AggregatePayload) (string, error) {
	engine.IncrReportsGenerated()

	prompt := fmt.Sprintf(engine.PromptAggregateReport,
		payload.ResumeSummary,
		toBulleted(payload.InterviewProfile),
		toBulleted(payload.GitHub),
		toBulleted(payload.StackOverflow),
		toBulleted(payload.JobMarket),
	)
	report, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("aggregate report: %w", err)
	}
	return report, nil
}

// toBulleted renders a map as sorted "- key: value" lines for prompt context.
func toBulleted(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s: %v\n", k, m[k])
	}
	return strings.TrimRight(sb.String(), "\n")
}
