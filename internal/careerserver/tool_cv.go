package careerserver

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine/jobs"
)

// CVAnalyzeInput is the cv_analyze tool contract.
type CVAnalyzeInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text to analyze"`
}

func registerCVAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cv_analyze",
		Description: "Analyze resume text: extract skills, years of experience, education, certifications, job categories, suggested roles and ready-to-use job search keywords. Deterministic keyword/regex analysis, no LLM.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CVAnalyzeInput) (*mcp.CallToolResult, jobs.CVAnalysis, error) {
		if strings.TrimSpace(input.ResumeText) == "" {
			return nil, jobs.CVAnalysis{}, errors.New("resume_text is required")
		}
		return nil, jobs.AnalyzeCV(input.ResumeText), nil
	})
}
