package careerserver

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/engine"
	"github.com/anatolykoptev/go_career/internal/engine/jobs"
	"github.com/anatolykoptev/go_career/internal/engine/sources"
	"github.com/anatolykoptev/go_career/internal/toolutil"
)

// GitHubFootprintInput is the github_footprint tool contract.
type GitHubFootprintInput struct {
	Username string `json:"username" jsonschema:"GitHub username to analyze"`
}

// StackOverflowFootprintInput is the stackoverflow_footprint tool contract.
type StackOverflowFootprintInput struct {
	UserID string `json:"user_id" jsonschema:"Numeric Stack Overflow user ID"`
}

// RegionalInsightsInput is the regional_insights tool contract.
type RegionalInsightsInput struct {
	Region     string `json:"region" jsonschema:"Region or country to analyze: europe, mena, north africa, sub-saharan africa, asia, north america"`
	TargetRole string `json:"target_role,omitempty" jsonschema:"Role to contextualize the market brief for (default: Software Developer)"`
}

func registerGitHubFootprint(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "github_footprint",
		Description: "Analyze a GitHub user's public footprint: profile, repositories, language byte histogram, top repos by stars, recent activity, organizations, and bounded profile/collaboration scores.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GitHubFootprintInput) (*mcp.CallToolResult, sources.GitHubProfile, error) {
		if strings.TrimSpace(input.Username) == "" {
			return nil, sources.GitHubProfile{}, errors.New("username is required")
		}

		cacheKey := engine.CacheKey("github_footprint", input.Username)
		if out, ok := toolutil.CacheLoadJSON[sources.GitHubProfile](ctx, cacheKey); ok {
			return nil, out, nil
		}

		profile, err := sources.AnalyzeGitHubProfile(ctx, input.Username)
		if err != nil {
			return nil, sources.GitHubProfile{}, err
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, *profile)
		return nil, *profile, nil
	})
}

func registerStackOverflowFootprint(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "stackoverflow_footprint",
		Description: "Analyze a Stack Overflow user's public footprint: reputation, badges, answer/question counts, accepted-answer rate, top answer/question tags and recent posts with links.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input StackOverflowFootprintInput) (*mcp.CallToolResult, sources.StackOverflowProfile, error) {
		if strings.TrimSpace(input.UserID) == "" {
			return nil, sources.StackOverflowProfile{}, errors.New("user_id is required")
		}

		cacheKey := engine.CacheKey("stackoverflow_footprint", input.UserID)
		if out, ok := toolutil.CacheLoadJSON[sources.StackOverflowProfile](ctx, cacheKey); ok {
			return nil, out, nil
		}

		profile, err := sources.AnalyzeStackOverflowProfile(ctx, input.UserID)
		if err != nil {
			return nil, sources.StackOverflowProfile{}, err
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, *profile)
		return nil, *profile, nil
	})
}

func registerRegionalInsights(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "regional_insights",
		Description: "Regional tech job market insights: in-demand technologies, estimated remote-work share, preferred hiring hub, member countries and an LLM market brief for a target role.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input RegionalInsightsInput) (*mcp.CallToolResult, jobs.RegionalInsights, error) {
		if strings.TrimSpace(input.Region) == "" {
			return nil, jobs.RegionalInsights{}, errors.New("region is required")
		}

		cacheKey := engine.CacheKey("regional_insights", input.Region, input.TargetRole)
		if out, ok := toolutil.CacheLoadJSON[jobs.RegionalInsights](ctx, cacheKey); ok {
			return nil, out, nil
		}

		out := jobs.GetRegionalInsights(ctx, input.Region, input.TargetRole)
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
