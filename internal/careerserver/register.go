// Package careerserver registers the career-tooling MCP surface: job
// search, CV analysis, mock interviews, resume rewriting, reports and
// public footprint scanners.
package careerserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all career tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerJobSearch(server)
	registerJobDetails(server)
	registerCVAnalyze(server)
	registerInterviewQuestions(server)
	registerInterviewAnalyze(server)
	registerInterviewProfile(server)
	registerResumeRewrite(server)
	registerCareerReport(server)
	registerAggregateReport(server)
	registerGitHubFootprint(server)
	registerStackOverflowFootprint(server)
	registerRegionalInsights(server)
}
