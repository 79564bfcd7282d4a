package careerserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine/jobs"
)

// ResumeRewriteInput is the resume_rewrite tool contract.
type ResumeRewriteInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text to rewrite"`
}

// ResumeRewriteOutput carries the rewritten resume text.
type ResumeRewriteOutput struct {
	RewrittenResume string `json:"rewritten_resume"`
}

func registerResumeRewrite(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_rewrite",
		Description: "Rewrite resume text for clarity, impact and ATS friendliness: strong action verbs, quantified achievements, consistent tense, natural keyword coverage. Returns the polished resume text only.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ResumeRewriteInput) (*mcp.CallToolResult, ResumeRewriteOutput, error) {
		rewritten, err := jobs.RewriteResume(ctx, input.ResumeText)
		if err != nil {
			return nil, ResumeRewriteOutput{}, err
		}
		return nil, ResumeRewriteOutput{RewrittenResume: rewritten}, nil
	})
}
