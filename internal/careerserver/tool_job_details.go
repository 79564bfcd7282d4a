package careerserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine/jobs"
)

// JobDetailsInput is the job_details tool contract.
type JobDetailsInput struct {
	JobURL string `json:"job_url" jsonschema:"LinkedIn job posting URL, e.g. an apply link returned by job_search"`
}

// JobDetailsOutput carries the extracted posting details.
type JobDetailsOutput struct {
	JobID   string `json:"job_id"`
	Details string `json:"details"`
}

func registerJobDetails(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_details",
		Description: "Fetch the full description of a single LinkedIn job posting by URL: title, description, company, location, employment type and salary when published. Results are cached by URL.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobDetailsInput) (*mcp.CallToolResult, JobDetailsOutput, error) {
		if input.JobURL == "" {
			return nil, JobDetailsOutput{}, fmt.Errorf("job_url is required")
		}
		jobID := jobs.ExtractJobID(input.JobURL)
		if jobID == "" {
			return nil, JobDetailsOutput{}, fmt.Errorf("job_url does not look like a LinkedIn job posting URL")
		}

		details, err := jobs.FetchJobDetails(ctx, input.JobURL)
		if err != nil {
			return nil, JobDetailsOutput{}, fmt.Errorf("fetch job details: %w", err)
		}
		return nil, JobDetailsOutput{JobID: jobID, Details: details}, nil
	})
}
