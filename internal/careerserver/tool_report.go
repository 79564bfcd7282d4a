package careerserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine"
	"github.com/anatolykoptev/go_career/internal/engine/jobs"
	"github.com/anatolykoptev/go_career/internal/toolutil"
)

// CareerReportInput is the career_report tool contract.
type CareerReportInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text to analyze"`
}

// ReportOutput carries a generated markdown report.
type ReportOutput struct {
	Report string `json:"report"`
}

// AggregateReportInput is the aggregate_report tool contract. All sections
// are optional; maps are rendered as bullet lists in the synthesis prompt.
type AggregateReportInput struct {
	ResumeSummary    string         `json:"resume_summary,omitempty" jsonschema:"Resume summary text"`
	InterviewProfile map[string]any `json:"interview_profile,omitempty" jsonschema:"interview_profile tool output"`
	GitHub           map[string]any `json:"github,omitempty" jsonschema:"github_footprint tool output"`
	StackOverflow    map[string]any `json:"stackoverflow,omitempty" jsonschema:"stackoverflow_footprint tool output"`
	JobMarket        map[string]any `json:"job_market,omitempty" jsonschema:"job_search tool output or market notes"`
}

func registerCareerReport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_report",
		Description: "Generate a strategic career development summary from resume text with three sections: Strengths, Areas for Growth, and Actionable Recommendations.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CareerReportInput) (*mcp.CallToolResult, ReportOutput, error) {
		cacheKey := engine.CacheKey("career_report", input.ResumeText)
		if out, ok := toolutil.CacheLoadJSON[ReportOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		report, err := jobs.CreateReport(ctx, input.ResumeText)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		out := ReportOutput{Report: report}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func registerAggregateReport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "aggregate_report",
		Description: "Synthesize a Career Insights Report from resume summary, interview profile, GitHub/StackOverflow footprints and job market data: Snapshot, Public Footprint Highlights, Strengths, Areas for Growth, Job Market Readiness and a 30-60 day Action Plan.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input AggregateReportInput) (*mcp.CallToolResult, ReportOutput, error) {
		report, err := jobs.CreateAggregateReport(ctx, jobs.AggregatePayload{
			ResumeSummary:    input.ResumeSummary,
			InterviewProfile: input.InterviewProfile,
			GitHub:           input.GitHub,
			StackOverflow:    input.StackOverflow,
			JobMarket:        input.JobMarket,
		})
		if err != nil {
			return nil, ReportOutput{}, err
		}
		return nil, ReportOutput{Report: report}, nil
	})
}
