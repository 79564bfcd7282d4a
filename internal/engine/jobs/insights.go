package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// RegionalInsights describes a regional tech job market for a target role.
type RegionalInsights struct {
	Region       string   `json:"region"`
	TargetRole   string   `json:"target_role"`
	InDemandTech []string `json:"in_demand_tech"`
	RemoteShare  int      `json:"remote_share_percent"`
	PreferredHub string   `json:"preferred_hub"`
	Countries    []string `json:"countries,omitempty"`
	Brief        string   `json:"brief,omitempty"`
}

// GetRegionalInsights combines the static region catalog with an LLM market
// brief. The catalog part always succeeds; a failed LLM call only costs the
// narrative.
func GetRegionalInsights(ctx context.Context, region, targetRole string) RegionalInsights {
	region = NormalizeTerm(region)
	if targetRole == "" {
		targetRole = "Software Developer"
	}

	priors := PriorsFor(region)
	out := RegionalInsights{
		Region:       region,
		TargetRole:   targetRole,
		InDemandTech: priors.Tech,
		RemoteShare:  int(priors.Remote * 100),
		PreferredHub: PreferredDefault(region),
		Countries:    CountriesFor(region),
	}

	prompt := fmt.Sprintf(engine.PromptRegionalInsights,
		time.Now().UTC().Format("2006-01-02"),
		region,
		strings.Join(priors.Tech, ", "),
		out.RemoteShare,
		targetRole,
	)
	brief, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		slog.Warn("insights: llm brief failed", slog.String("region", region), slog.Any("error", err))
	} else {
		out.Brief = brief
	}
	return out
}
