package careerserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine"
	"github.com/anatolykoptev/go_career/internal/engine/jobs"
	"github.com/anatolykoptev/go_career/internal/toolutil"
)

// InterviewQuestionsInput is the interview_questions tool contract.
type InterviewQuestionsInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description text to generate questions for"`
	InterviewType  string `json:"interview_type,omitempty" jsonschema:"Interview type: behavioral, technical, situational, mixed (default: mixed)"`
	NumQuestions   int    `json:"num_questions,omitempty" jsonschema:"Number of questions to generate (default: 8)"`
}

// InterviewQuestionsOutput wraps the generated question list.
type InterviewQuestionsOutput struct {
	Questions []jobs.InterviewQuestion `json:"questions"`
}

// InterviewAnalyzeInput is the interview_analyze tool contract.
type InterviewAnalyzeInput struct {
	Question     string `json:"question" jsonschema:"The interview question that was asked"`
	Response     string `json:"response" jsonschema:"The candidate's answer"`
	QuestionType string `json:"question_type,omitempty" jsonschema:"Question type: behavioral, technical, situational, general (default: general)"`
}

// InterviewProfileInput is the interview_profile tool contract.
type InterviewProfileInput struct {
	Responses []jobs.ResponseAnalysis `json:"responses" jsonschema:"Per-question analyses from interview_analyze to aggregate"`
}

func registerInterviewQuestions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_questions",
		Description: "Generate role-specific interview questions from a job description with competencies, difficulty (1-5), suggested response time and what the interviewer looks for. Falls back to a curated generic set when generation fails.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input InterviewQuestionsInput) (*mcp.CallToolResult, InterviewQuestionsOutput, error) {
		if strings.TrimSpace(input.JobDescription) == "" {
			return nil, InterviewQuestionsOutput{}, errors.New("job_description is required")
		}

		cacheKey := engine.CacheKey("interview_questions", input.JobDescription, input.InterviewType,
			fmt.Sprintf("n_%d", input.NumQuestions))
		if out, ok := toolutil.CacheLoadJSON[InterviewQuestionsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		out := InterviewQuestionsOutput{
			Questions: jobs.GenerateQuestions(ctx, input.JobDescription, input.InterviewType, input.NumQuestions),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func registerInterviewAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_analyze",
		Description: "Score a candidate's answer to an interview question on six 1-10 axes (content, structure, relevance, specificity, confidence, overall) with strengths, weaknesses, feedback and follow-up questions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input InterviewAnalyzeInput) (*mcp.CallToolResult, jobs.ResponseAnalysis, error) {
		if strings.TrimSpace(input.Question) == "" {
			return nil, jobs.ResponseAnalysis{}, errors.New("question is required")
		}
		if strings.TrimSpace(input.Response) == "" {
			return nil, jobs.ResponseAnalysis{}, errors.New("response is required")
		}
		return nil, jobs.AnalyzeResponse(ctx, input.Question, input.Response, input.QuestionType), nil
	})
}

func registerInterviewProfile(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "interview_profile",
		Description: "Aggregate per-question interview analyses into a session profile: average scores, performance level, most common strengths/weaknesses, recommendations and next steps. Computed deterministically.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input InterviewProfileInput) (*mcp.CallToolResult, jobs.InterviewProfile, error) {
		profile, err := jobs.GenerateInterviewProfile(input.Responses)
		if err != nil {
			return nil, jobs.InterviewProfile{}, err
		}
		return nil, profile, nil
	})
}
